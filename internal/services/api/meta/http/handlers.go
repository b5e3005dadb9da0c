// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"findstrings/internal/core/table"
	"findstrings/internal/core/version"
	"findstrings/internal/modkit/httpkit"
	"findstrings/internal/output"
)

// Deps are the handler dependencies
type Deps struct {
	StartedAt    time.Time
	DefaultTable string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/tables", h.tables)
}

// ServiceResponse describes the running service
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// TablesResponse lists what a scan request may choose from
type TablesResponse struct {
	Default   string   `json:"default"`
	Encodings []string `json:"encodings"`
	Formats   []string `json:"formats"`
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    version.Info().Name,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}, nil
}

func (h *handlers) tables(_ *http.Request) (any, error) {
	return TablesResponse{
		Default:   h.deps.DefaultTable,
		Encodings: table.Encodings(),
		Formats:   output.Formats(),
	}, nil
}
