// Package extract turns a chunk sequence into runs of interesting bytes.
//
// A run is a maximal stretch of bytes from the interesting set, further split
// whenever the same byte would repeat more than the configured limit. Runs are
// produced lazily, one per call, and state carries across chunk boundaries so
// chunking is never observable in the output
package extract

import (
	"errors"
	"io"
	"iter"

	"findstrings/internal/core/chunk"
	"findstrings/internal/core/table"
	perr "findstrings/internal/platform/errors"
)

// Run is one emitted record. Bytes is owned by the caller
type Run struct {
	Offset int64
	Bytes  []byte
}

// Len returns the number of bytes in the run
func (r Run) Len() int { return len(r.Bytes) }

// End returns the absolute offset of the last byte in the run
func (r Run) End() int64 { return r.Offset + int64(len(r.Bytes)) - 1 }

// ChunkSource yields chunks in order and io.EOF after the last one.
// *chunk.Reader satisfies it
type ChunkSource interface {
	Next() (chunk.Chunk, error)
}

// Extractor is a pull-based cursor over the runs of a source.
// It is single-use and not safe for concurrent use
type Extractor struct {
	src ChunkSource
	set table.ByteSet
	max int

	// current chunk
	data []byte
	base int64
	idx  int
	eof  bool
	err  error

	// open run
	open  bool
	start int64
	last  byte
	rep   int
	buf   []byte
}

// New returns an extractor reading from src. maxRepeat must be at least 1
func New(src ChunkSource, set table.ByteSet, maxRepeat int) (*Extractor, error) {
	if maxRepeat < 1 {
		return nil, perr.WithField(perr.InvalidConfigf("maximum repeat must be at least 1, got %d", maxRepeat), "maximum-repeat")
	}
	if src == nil {
		return nil, perr.InvalidConfigf("nil chunk source")
	}
	return &Extractor{src: src, set: set, max: maxRepeat, buf: make([]byte, 0, 256)}, nil
}

// Next returns the next run, or io.EOF when the source is exhausted.
// A read failure is returned as is and repeated on every later call
func (e *Extractor) Next() (Run, error) {
	if e.err != nil {
		return Run{}, e.err
	}
	for {
		if e.idx >= len(e.data) {
			if e.eof {
				if e.open {
					return e.emit(), nil
				}
				return Run{}, io.EOF
			}
			if err := e.fill(); err != nil {
				e.err = err
				return Run{}, err
			}
			continue
		}

		b := e.data[e.idx]
		pos := e.base + int64(e.idx)
		e.idx++

		switch {
		case !e.set[b]:
			if e.open {
				return e.emit(), nil
			}
		case !e.open:
			e.begin(pos, b)
		case b != e.last:
			e.buf = append(e.buf, b)
			e.last = b
			e.rep = 1
		case e.rep < e.max:
			e.buf = append(e.buf, b)
			e.rep++
		default:
			r := e.emit()
			e.begin(pos, b)
			return r, nil
		}
	}
}

// ForEach calls fn for every run in order. It stops at the first error from
// fn or from the source; reaching the end of the source is not an error
func (e *Extractor) ForEach(fn func(Run) error) error {
	for {
		r, err := e.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
	}
}

// All adapts the extractor to range-over-func. A failure is yielded once as
// the final element
func (e *Extractor) All() iter.Seq2[Run, error] {
	return func(yield func(Run, error) bool) {
		for {
			r, err := e.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(r, err) || err != nil {
				return
			}
		}
	}
}

func (e *Extractor) fill() error {
	c, err := e.src.Next()
	if errors.Is(err, io.EOF) {
		e.eof = true
		e.data, e.idx = nil, 0
		return nil
	}
	if err != nil {
		return err
	}
	e.data, e.base, e.idx = c.Data, c.Base, 0
	return nil
}

func (e *Extractor) begin(pos int64, b byte) {
	e.open = true
	e.start = pos
	e.last = b
	e.rep = 1
	e.buf = append(e.buf[:0], b)
}

// emit hands out a copy of the open run and clears the accumulator
func (e *Extractor) emit() Run {
	r := Run{Offset: e.start, Bytes: append([]byte(nil), e.buf...)}
	e.open = false
	e.buf = e.buf[:0]
	return r
}
