// Package httpkit re-exports the platform HTTP seam for modules so they do
// not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "findstrings/internal/platform/net/http"
)

type (
	// Envelope is the JSON response body
	Envelope = phttp.Envelope

	// Response is the return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response whose status comes from the error code
func Error(err error) Response { return phttp.Error(err) }

// RespondError writes an error envelope from a classic handler
func RespondError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }

// Call adapts a body-less handler returning (data, error) to the envelope
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Get mounts a body-less JSON handler under GET
func Get(r Router, path string, fn func(*http.Request) (any, error)) { r.Get(path, Call(fn)) }
