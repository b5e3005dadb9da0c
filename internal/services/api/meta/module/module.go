// Package module wires meta endpoints into the API
package module

import (
	"time"

	"findstrings/internal/modkit"
	"findstrings/internal/modkit/httpkit"
	metahttp "findstrings/internal/services/api/meta/http"
)

// Module implements modkit.Module
type Module struct {
	b            modkit.Built
	startedAt    time.Time
	defaultTable string
}

// New constructs a meta module. defaultTable is reported by /meta/tables
func New(_ modkit.Deps, defaultTable string, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)
	return &Module{b: b, startedAt: time.Now(), defaultTable: defaultTable}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		metahttp.Register(sub, metahttp.Deps{
			StartedAt:    m.startedAt,
			DefaultTable: m.defaultTable,
		})
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports implements modkit.Module
func (m *Module) Ports() any { return nil }
