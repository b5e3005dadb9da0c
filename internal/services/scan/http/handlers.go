// Package http exposes the scan service over HTTP
package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"findstrings/internal/core/table"
	"findstrings/internal/modkit/httpkit"
	"findstrings/internal/output"
	perr "findstrings/internal/platform/errors"
	"findstrings/internal/platform/logger"
	pnet "findstrings/internal/platform/net"
	pstrings "findstrings/internal/platform/strings"
	"findstrings/internal/services/scan/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Scanner  domain.ScannerPort
	Defaults domain.Options
	Table    *table.Table // used when the request names no encoding
}

type handlers struct {
	deps Deps
}

// Register mounts the scan routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	r.Post("/", h.scan)
}

// scan reads the request body as the input file and streams hits back in
// the requested format. Query parameters override the server defaults:
//
//	format, min_length, max_repeat, min_distinct, unique, encoding
func (h *handlers) scan(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options(r.URL.Query())
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}

	tbl := h.deps.Table
	if enc := r.URL.Query().Get("encoding"); enc != "" {
		if tbl, err = table.FromEncoding(enc); err != nil {
			httpkit.RespondError(w, r, perr.WithField(err, "encoding"))
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			err = perr.Newf(perr.ErrorCodeTooLarge, "request body exceeds %d bytes", mbe.Limit)
		} else {
			err = perr.ReadFailure(err, "read request body")
		}
		httpkit.RespondError(w, r, err)
		return
	}

	cw := &commitWriter{w: w}
	out, err := output.New(opts.Format, cw)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", output.ContentType(opts.Format))
	w.Header().Set("Trailer", "X-Scan-Emitted")

	st, err := h.deps.Scanner.Scan(r.Context(), bytes.NewReader(body), tbl, opts, out)
	if err != nil {
		if cw.n == 0 {
			w.Header().Del("Trailer")
			httpkit.RespondError(w, r, err)
			return
		}
		// status is already on the wire; the truncated body is all we can do
		logger.Named("http").Warn().Err(err).
			Str("request_id", pnet.RequestID(r.Context())).
			Msg("scan failed after streaming began")
		return
	}
	if cw.n == 0 {
		w.WriteHeader(http.StatusOK)
	}
	w.Header().Set("X-Scan-Emitted", strconv.Itoa(st.Emitted))
}

func (h *handlers) options(q url.Values) (domain.Options, error) {
	o := h.deps.Defaults
	o.Format = pstrings.Lower(pstrings.FirstNonBlank(q.Get("format"), o.Format))
	for _, p := range []struct {
		key string
		dst *int
	}{
		{"min_length", &o.MinLength},
		{"max_repeat", &o.MaxRepeat},
		{"min_distinct", &o.MinDistinct},
	} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return o, perr.WithField(perr.InvalidConfigf("%s must be an integer", p.key), p.key)
		}
		*p.dst = n
	}
	if v := q.Get("unique"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return o, perr.WithField(perr.InvalidConfigf("unique must be a boolean"), "unique")
		}
		o.Unique = b
	}
	return o, nil
}

// commitWriter counts bytes handed to the response so a late failure can tell
// whether headers are already sent
type commitWriter struct {
	w http.ResponseWriter
	n int
}

func (c *commitWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
