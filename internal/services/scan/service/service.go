// Package service implements the scan service
package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"findstrings/internal/core/chunk"
	"findstrings/internal/core/extract"
	"findstrings/internal/core/table"
	"findstrings/internal/output"
	perr "findstrings/internal/platform/errors"
	"findstrings/internal/platform/logger"
	"findstrings/internal/platform/validate"
	"findstrings/internal/services/scan/domain"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// openFile is a seam for tests
var openFile = func(path string) (*os.File, error) { return os.Open(path) }

// Service implements domain.ScannerPort
type Service struct{}

var _ domain.ScannerPort = (*Service)(nil)

// New constructs a scan service
func New() *Service { return &Service{} }

// ScanFile opens path and scans it. A missing file is NotFound
func (s *Service) ScanFile(ctx context.Context, path string, tbl *table.Table, opts domain.Options, w output.Writer) (domain.Stats, error) {
	f, err := openFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Stats{}, perr.NotFoundf("input file not found: %s", path)
		}
		return domain.Stats{}, perr.ReadFailure(err, "open input %s", path)
	}
	defer func() { _ = f.Close() }()

	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		return domain.Stats{}, perr.Usagef("input is a directory: %s", path)
	}

	st, err := s.Scan(ctx, f, tbl, opts, w)
	return st, perr.WithOp(err, path)
}

// Scan pages src, extracts runs, filters them and writes the survivors to w.
// w is flushed before returning, also when the scan fails part way
func (s *Service) Scan(ctx context.Context, src chunk.Source, tbl *table.Table, opts domain.Options, w output.Writer) (st domain.Stats, err error) {
	if err := validate.Struct(opts); err != nil {
		return st, err
	}
	if tbl == nil {
		tbl = table.ASCII()
	}

	ctx = logger.WithScan(ctx, uuid.NewString())
	log := logger.C(ctx)
	start := time.Now()

	rd, err := chunk.NewReader(src, opts.ChunkSize)
	if err != nil {
		return st, err
	}
	x, err := extract.New(rd, tbl.Set(), opts.MaxRepeat)
	if err != nil {
		return st, err
	}

	log.Debug().
		Str("table", tbl.Name()).
		Int("table_size", tbl.Len()).
		Int64("input_size", rd.Size()).
		Interface("options", opts).
		Msg("scan started")

	var seen map[uint64]struct{}
	if opts.Unique {
		seen = make(map[uint64]struct{})
	}

	err = x.ForEach(func(r extract.Run) error {
		if err := ctx.Err(); err != nil {
			return perr.Wrap(err, perr.ErrorCodeCanceled, "scan canceled")
		}
		st.Runs++
		if r.Len() < opts.MinLength || !hasDistinct(r.Bytes, opts.MinDistinct) {
			st.Filtered++
			return nil
		}
		text := tbl.Decode(r.Bytes)
		if seen != nil {
			h := xxh3.HashString(text)
			if _, dup := seen[h]; dup {
				st.Duplicates++
				return nil
			}
			seen[h] = struct{}{}
		}
		if err := w.Write(output.Hit{Offset: r.Offset, Len: r.Len(), Text: text}); err != nil {
			return err
		}
		st.Emitted++
		return nil
	})
	st.Bytes = rd.Offset()

	if ferr := w.Flush(); err == nil {
		err = ferr
	}

	evt := log.Debug()
	if err != nil && !output.IsBrokenPipe(err) {
		evt = log.Warn().Err(err)
	}
	evt.Int("runs", st.Runs).
		Int("emitted", st.Emitted).
		Int("filtered", st.Filtered).
		Int("duplicates", st.Duplicates).
		Int64("bytes", st.Bytes).
		Dur("elapsed", time.Since(start)).
		Msg("scan done")

	return st, err
}

// hasDistinct reports whether bs holds at least n different byte values
func hasDistinct(bs []byte, n int) bool {
	if n <= 1 {
		return len(bs) > 0
	}
	var seen [256]bool
	count := 0
	for _, b := range bs {
		if !seen[b] {
			seen[b] = true
			if count++; count >= n {
				return true
			}
		}
	}
	return false
}
