// Package table holds the byte to character translation table that decides
// which bytes are interesting to the scanner and how a run is decoded
package table

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	perr "findstrings/internal/platform/errors"
)

// ByteSet is the set of interesting byte values with O(1) membership
type ByteSet [256]bool

// Has reports whether b is in the set
func (s *ByteSet) Has(b byte) bool { return s[b] }

// Len returns the number of bytes in the set
func (s *ByteSet) Len() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

// Table maps byte values to single characters. It is immutable once built
type Table struct {
	runes [256]rune
	set   ByteSet
	name  string
}

func newTable(name string) *Table { return &Table{name: name} }

// put records b -> r; a later entry for the same byte wins
func (t *Table) put(b byte, r rune) {
	t.runes[b] = r
	t.set[b] = true
}

// Name describes where the table came from (file path, encoding or "ascii")
func (t *Table) Name() string { return t.name }

// Lookup returns the character for b and whether b is mapped
func (t *Table) Lookup(b byte) (rune, bool) {
	if !t.set[b] {
		return 0, false
	}
	return t.runes[b], true
}

// Set returns a copy of the interesting-byte set
func (t *Table) Set() ByteSet { return t.set }

// Len returns the number of mapped bytes
func (t *Table) Len() int { return t.set.Len() }

// Decode maps every byte of bs through the table. Unmapped bytes are skipped
func (t *Table) Decode(bs []byte) string {
	var b strings.Builder
	b.Grow(len(bs))
	for _, c := range bs {
		if t.set[c] {
			b.WriteRune(t.runes[c])
		}
	}
	return b.String()
}

// ASCII returns the default table: printable ASCII 0x20..0x7e mapped to itself
func ASCII() *Table {
	t := newTable("ascii")
	for b := 0x20; b <= 0x7e; b++ {
		t.put(byte(b), rune(b))
	}
	return t
}

// Load reads and parses a table file
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perr.NotFoundf("table file not found: %s", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeReadFailure, "open table file %s", path)
	}
	defer func() { _ = f.Close() }()

	t, err := Parse(f)
	if err != nil {
		return nil, perr.WithOp(err, path)
	}
	t.name = path
	return t, nil
}

// Parse reads a table from r.
//
// The format is UTF-8 text. Empty lines and lines starting with "#" are ignored.
// Every other line is "<byte> <char>": a hexadecimal byte 00..ff, one space,
// then either a single character or a hexadecimal code point of two or more
// digits. The same character may be used for several bytes
func Parse(r io.Reader) (*Table, error) {
	t := newTable("")
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if !utf8.ValidString(text) {
			return nil, lineErr(line, "invalid UTF-8")
		}
		b, ch, err := parseLine(text)
		if err != nil {
			return nil, lineErr(line, err.Error())
		}
		t.put(b, ch)
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeReadFailure, "read table file")
	}
	return t, nil
}

func lineErr(line int, msg string) error {
	return perr.WithField(perr.TableSyntaxf("table line %d: %s", line, msg), "line "+strconv.Itoa(line))
}

func parseLine(text string) (byte, rune, error) {
	parts := strings.Split(text, " ")
	if len(parts) != 2 {
		return 0, 0, errors.New("invalid number of space-separated parts")
	}

	b, err := parseHex(parts[0], 0xff)
	if err != nil {
		return 0, 0, err
	}

	char := parts[1]
	if char == "" {
		return 0, 0, errors.New("no target character")
	}
	if utf8.RuneCountInString(char) == 1 {
		r, _ := utf8.DecodeRuneInString(char)
		return byte(b), r, nil
	}

	cp, err := parseHex(char, utf8.MaxRune)
	if err != nil {
		return 0, 0, err
	}
	if !utf8.ValidRune(rune(cp)) {
		return 0, 0, errors.New("code point is not a valid character")
	}
	return byte(b), rune(cp), nil
}

func parseHex(s string, max uint64) (uint64, error) {
	v := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil || v == "" || n > max {
		return 0, errors.New("invalid hexadecimal integer " + strconv.Quote(s))
	}
	return n, nil
}
