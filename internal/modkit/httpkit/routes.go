package httpkit

import (
	"net/http"
	"strings"
)

// MountUnder gives mount a subrouter at prefix with mw applied to it alone.
// An empty or "/" prefix mounts in a group at the current level
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	with := func(sub Router) {
		sub.Use(mw...)
		mount(sub)
	}
	p := strings.Trim(prefix, "/")
	if p == "" {
		r.Group(with)
		return
	}
	r.Route("/"+p, with)
}
