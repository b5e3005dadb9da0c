// Package chunk pages a seekable, finite byte source into fixed-maximum-size
// chunks that cover it exactly once, in order, with no gaps or overlap
package chunk

import (
	"errors"
	"io"

	perr "findstrings/internal/platform/errors"
)

// DefaultSize is the maximum chunk length used when none is given (1 MiB)
const DefaultSize = 1 << 20

// Source is what the reader pages through: it must know its length by seeking
type Source interface {
	io.Reader
	io.Seeker
}

// Chunk is one contiguous slice of the source.
// Base is the absolute offset of Data[0] (sum of all previous chunk lengths)
type Chunk struct {
	Base int64
	Data []byte
}

// End returns the absolute offset one past the last byte of the chunk
func (c Chunk) End() int64 { return c.Base + int64(len(c.Data)) }

// Reader yields chunks lazily. It owns the source cursor while in use and is
// not restartable; do not share the source with another reader
type Reader struct {
	src  Source
	size int64
	off  int64
	buf  []byte
}

// NewReader measures src by seeking to its end, rewinds it and returns a reader
// producing chunks of at most size bytes. size <= 0 selects DefaultSize
func NewReader(src Source, size int) (*Reader, error) {
	if size <= 0 {
		size = DefaultSize
	}
	total, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, perr.ReadFailure(err, "measure input")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, perr.ReadFailure(err, "rewind input")
	}
	n := int64(size)
	if total < n {
		n = total
	}
	return &Reader{src: src, size: total, buf: make([]byte, n)}, nil
}

// Size returns the total length of the source
func (r *Reader) Size() int64 { return r.size }

// Offset returns the absolute offset of the next chunk
func (r *Reader) Offset() int64 { return r.off }

// Next returns the next chunk or io.EOF once the source is exhausted.
// Chunk.Data aliases an internal buffer and is only valid until the next call
func (r *Reader) Next() (Chunk, error) {
	left := r.size - r.off
	if left <= 0 {
		return Chunk{}, io.EOF
	}
	n := int64(len(r.buf))
	if left < n {
		n = left
	}
	data := r.buf[:n]
	if _, err := io.ReadFull(r.src, data); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.ErrUnexpectedEOF
		}
		return Chunk{}, perr.ReadFailure(err, "read input at offset %d", r.off)
	}
	c := Chunk{Base: r.off, Data: data}
	r.off += n
	return c, nil
}
