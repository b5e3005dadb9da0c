// Package output formats scan hits for humans and machines.
//
// Writers buffer internally; callers must Flush once the scan is done
package output

import (
	"bufio"
	"io"
	"sort"
	"strings"

	perr "findstrings/internal/platform/errors"
	pstrings "findstrings/internal/platform/strings"
)

// Hit is one run that passed the scan filters, already decoded
type Hit struct {
	Offset int64
	Len    int
	Text   string
}

// End returns the absolute offset of the last byte of the hit
func (h Hit) End() int64 { return h.Offset + int64(h.Len) - 1 }

// Writer is implemented by every output format
type Writer interface {
	Write(Hit) error
	Flush() error
}

type format struct {
	ctype string
	make  func(*bufio.Writer) Writer
}

// registry of format name -> constructor; filled by init in each format file
var formats = map[string]format{}

func register(name, ctype string, fn func(*bufio.Writer) Writer) {
	formats[name] = format{ctype: ctype, make: fn}
}

// New returns a buffered writer for the named format
func New(name string, w io.Writer) (Writer, error) {
	f, ok := formats[pstrings.Lower(name)]
	if !ok {
		return nil, perr.WithField(
			perr.InvalidConfigf("unknown output format %q (want one of %s)", name, strings.Join(Formats(), ", ")),
			"format",
		)
	}
	return f.make(bufio.NewWriter(w)), nil
}

// Formats lists the registered format names, sorted
func Formats() []string {
	out := make([]string, 0, len(formats))
	for k := range formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ContentType returns the HTTP media type for a format, or "" if unknown
func ContentType(name string) string { return formats[pstrings.Lower(name)].ctype }

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	return perr.Wrap(err, perr.ErrorCodeWriteFailure, "write output")
}
