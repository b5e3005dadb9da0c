package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "findstrings/internal/platform/errors"
	"findstrings/internal/platform/logger"
	pnet "findstrings/internal/platform/net"
	phttp "findstrings/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 JSON envelope and logs the stack
// with the request id. http.ErrAbortHandler is re-panicked
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.Named("http").Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
