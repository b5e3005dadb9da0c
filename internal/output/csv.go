package output

import (
	"bufio"
	"strconv"
	"strings"
)

func init() { register("csv", "text/csv; charset=utf-8", newCSV) }

// csv prints `offset,length,"text"`; the text column is always quoted and
// embedded quotes are doubled
type csv struct{ w *bufio.Writer }

func newCSV(w *bufio.Writer) Writer { return &csv{w: w} }

func (c *csv) Write(h Hit) error {
	var b strings.Builder
	b.Grow(len(h.Text) + 24)
	b.WriteString(strconv.FormatInt(h.Offset, 10))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(h.Len))
	b.WriteString(`,"`)
	b.WriteString(strings.ReplaceAll(h.Text, `"`, `""`))
	b.WriteString("\"\n")
	_, err := c.w.WriteString(b.String())
	return writeErr(err)
}

func (c *csv) Flush() error { return writeErr(c.w.Flush()) }
