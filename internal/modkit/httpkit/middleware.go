package httpkit

import (
	"net/http"
	"time"

	"findstrings/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout time.Duration // request deadline; 0 disables
	Slow    time.Duration // access log warn threshold
	Origins []string      // CORS origins; empty allows any
}

// CommonStack returns the baseline API middleware in order
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability, outside recovery so panics are logged with their 500
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,

		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.StripSlashes(),
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}
