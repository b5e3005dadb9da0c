package module

import (
	"time"

	"findstrings/internal/output"
	"findstrings/internal/platform/config"
	"findstrings/internal/services/scan/domain"
)

// Options holds scan defaults plus the API limits, read from env
type Options struct {
	Scan      domain.Options
	TableFile string
	Encoding  string

	MaxBody int64
	Timeout time.Duration
}

// FromConfig reads Options from cfg, which is expected to carry the
// FINDSTRINGS_ prefix already
func FromConfig(cfg config.Conf) Options {
	return Options{
		Scan: domain.Options{
			MinLength:   cfg.MayInt("MIN_LENGTH", domain.DefaultMinLength),
			MaxRepeat:   cfg.MayInt("MAX_REPEAT", domain.DefaultMaxRepeat),
			MinDistinct: cfg.MayInt("MIN_DISTINCT", domain.DefaultMinDistinct),
			Format:      cfg.MayEnum("FORMAT", domain.DefaultFormat, output.Formats()...),
			ChunkSize:   cfg.MayInt("CHUNK_SIZE", 0),
			Unique:      cfg.MayBool("UNIQUE", false),
		},
		TableFile: cfg.MayString("TABLE_FILE", ""),
		Encoding:  cfg.MayString("ENCODING", ""),
		MaxBody:   cfg.MayInt64("API_MAX_BODY", 64<<20),
		Timeout:   cfg.MayDuration("API_TIMEOUT", 30*time.Second),
	}
}
