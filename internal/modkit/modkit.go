// Package modkit provides module wiring for the HTTP API: shared deps,
// functional build options and the Module contract
package modkit

import "findstrings/internal/modkit/httpkit"

// Module is the surface the API mounts. Keep it tiny so modules stay decoupled
type Module interface {
	// Name is used in logs
	Name() string
	// Ports returns the module's port set for cross wiring, or nil
	Ports() any
	// MountRoutes mounts the module under its prefix on r
	MountRoutes(r httpkit.Router)
}
