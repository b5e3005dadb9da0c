package modkit

import (
	"findstrings/internal/platform/config"
	"findstrings/internal/platform/logger"
)

// Deps holds the shared dependencies passed to every module.
// The zero value is usable in tests: a nil Log falls back to logger.Get
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log or the process root logger
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
