package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"findstrings/internal/platform/config"
	phttp "findstrings/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_DefaultsAndMux(t *testing.T) {
	srv := phttp.NewServer(config.New())
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr got %q want :4000", srv.Addr())
	}
	r := srv.Router()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewServer_PortFromEnv(t *testing.T) {
	t.Setenv("FINDSTRINGS_API_PORT", "8088")
	srv := phttp.NewServer(config.New().Prefix("FINDSTRINGS_"))
	if srv.Addr() != ":8088" {
		t.Fatalf("addr got %q want :8088", srv.Addr())
	}
}

func TestNewServer_OptionHook(t *testing.T) {
	called := false
	_ = phttp.NewServer(config.New(), func(*chi.Mux) { called = true })
	if !called {
		t.Fatalf("expected option hook to run")
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()
	return "127.0.0.1:" + strconv.Itoa(port)
}

func TestServer_RunStopsWithContext(t *testing.T) {
	addr := freePort(t)
	t.Setenv("API_PORT", addr)

	srv := phttp.NewServer(config.New())
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, time.Second) }()

	// wait for the listener
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/ping")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never came up: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("body got %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
