// Package module wires the scan service and its HTTP endpoint
package module

import (
	"findstrings/internal/core/table"
	"findstrings/internal/modkit"
	"findstrings/internal/modkit/httpkit"
	"findstrings/internal/platform/net/middleware"
	"findstrings/internal/services/scan/domain"
	scanhttp "findstrings/internal/services/scan/http"
	"findstrings/internal/services/scan/service"
)

// Ports exposed by the scan module
type Ports struct {
	Scanner domain.ScannerPort
}

// Module implements modkit.Module
type Module struct {
	b     modkit.Built
	opts  Options
	table *table.Table
	ports Ports
}

var _ modkit.Module = (*Module)(nil)

// New builds the scan module. overrides replaces the env derived options when
// non-nil. The default table is resolved here; a bad table file fails New
func New(deps modkit.Deps, overrides *Options, opts ...modkit.Option) (*Module, error) {
	cfg := FromConfig(deps.Cfg)
	if overrides != nil {
		cfg = *overrides
	}

	tbl, err := service.ResolveTable(cfg.TableFile, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("scan"),
		modkit.WithPrefix("/scan"),
		modkit.WithMiddlewares(middleware.MaxBody(cfg.MaxBody)),
	}, opts...)...)

	deps.Logger().Info().
		Str("table", tbl.Name()).
		Int("table_size", tbl.Len()).
		Int64("max_body", cfg.MaxBody).
		Msg("scan module ready")

	return &Module{
		b:     b,
		opts:  cfg,
		table: tbl,
		ports: Ports{Scanner: service.New()},
	}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the effective options
func (m *Module) Options() Options { return m.opts }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		scanhttp.Register(sub, scanhttp.Deps{
			Scanner:  m.ports.Scanner,
			Defaults: m.opts.Scan,
			Table:    m.table,
		})
	})
}

// DefaultTable names the table used when a request picks no encoding
func (m *Module) DefaultTable() string { return m.table.Name() }
