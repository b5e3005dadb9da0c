package middleware

import (
	"net/http"
	"time"

	"findstrings/internal/platform/logger"
	pnet "findstrings/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests taking >= Slow at warn level; 0 disables it
	Slow time.Duration
}

// AccessLogZerolog logs method, path, status, elapsed and bytes written.
// The wrapped writer keeps http.Flusher so streamed scans still flush
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log := logger.Named("http")
			evt := log.Info()
			switch {
			case status >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn()
			}
			evt.Str("request_id", pnet.RequestID(r.Context())).
				Int("status", status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int64("bytes_in", r.ContentLength).
				Int("bytes_out", ww.BytesWritten()).
				Msg("request done")
		})
	}
}
