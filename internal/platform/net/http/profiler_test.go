package http_test

import (
	"net/http"
	"testing"

	phttp "findstrings/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMountProfiler_Enabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r, "/debug", true)

	if rec := serve(r, http.MethodGet, "/debug/pprof/"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/, got %d", rec.Code)
	}
	if rec := serve(r, http.MethodGet, "/debug/pprof/cmdline"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/cmdline, got %d", rec.Code)
	}
}

func TestMountProfiler_Disabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(r, "/debug", false)
	if rec := serve(r, http.MethodGet, "/debug/pprof/"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", rec.Code)
	}
}
