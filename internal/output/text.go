package output

import (
	"bufio"
	"fmt"
)

func init() { register("text", "text/plain; charset=utf-8", newText) }

// text prints `0x0000-0x0007: "decoded"` per hit
type text struct{ w *bufio.Writer }

func newText(w *bufio.Writer) Writer { return &text{w: w} }

func (t *text) Write(h Hit) error {
	_, err := fmt.Fprintf(t.w, "0x%04x-0x%04x: \"%s\"\n", h.Offset, h.End(), h.Text)
	return writeErr(err)
}

func (t *text) Flush() error { return writeErr(t.w.Flush()) }
