package table

import (
	"strings"
	"testing"

	perr "findstrings/internal/platform/errors"
	kit "findstrings/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCII(t *testing.T) {
	tb := ASCII()
	assert.Equal(t, 95, tb.Len())
	assert.Equal(t, "ascii", tb.Name())

	set := tb.Set()
	assert.True(t, set.Has(' '))
	assert.True(t, set.Has('~'))
	assert.False(t, set.Has(0x1f))
	assert.False(t, set.Has(0x7f))

	r, ok := tb.Lookup('A')
	assert.True(t, ok)
	assert.Equal(t, 'A', r)
	_, ok = tb.Lookup(0x00)
	assert.False(t, ok)
}

func TestParse_FileFormat(t *testing.T) {
	src := strings.Join([]string{
		"# comment line",
		"",
		"41 A",
		"42 0x263a",
		"43 e9",
		"0x44 D",
		"c4 Ä",
		"46 7",
		"41 Z", // later line wins for the same byte
		"",
	}, "\r\n")

	tb, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 6, tb.Len())

	cases := map[byte]rune{
		0x41: 'Z',
		0x42: '☺',
		0x43: 'é',
		0x44: 'D',
		0xc4: 'Ä',
		0x46: '7',
	}
	for b, want := range cases {
		got, ok := tb.Lookup(b)
		require.True(t, ok, "byte %#x", b)
		assert.Equal(t, want, got, "byte %#x", b)
	}
}

func TestParse_DuplicateCharactersAreLegal(t *testing.T) {
	tb, err := Parse(strings.NewReader("61 a\n41 a\n"))
	require.NoError(t, err)
	assert.Equal(t, "aa", tb.Decode([]byte{0x61, 0x41}))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		msg  string
	}{
		{"too many parts", "41 A B", "invalid number of space-separated parts"},
		{"one part", "41", "invalid number of space-separated parts"},
		{"double space", "41  A", "invalid number of space-separated parts"},
		{"empty char", "41 ", "no target character"},
		{"bad byte", "zz A", "invalid hexadecimal integer"},
		{"byte out of range", "100 A", "invalid hexadecimal integer"},
		{"code point out of range", "41 110000", "invalid hexadecimal integer"},
		{"surrogate", "41 d800", "not a valid character"},
		{"bad code point", "41 xyz", "invalid hexadecimal integer"},
		{"decomposed sequence", "41 e\u0301", "invalid hexadecimal integer"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader("# header\n" + c.in + "\n"))
			require.Error(t, err)
			assert.True(t, perr.IsCode(err, perr.ErrorCodeTableSyntax))
			assert.Contains(t, err.Error(), c.msg)
			assert.Contains(t, err.Error(), "table line 2")
			e, _ := perr.As(err)
			assert.Equal(t, "line 2", e.Field())
		})
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := Parse(strings.NewReader("41 \xff\xfe\n"))
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeTableSyntax))
}

func TestParse_EmptyTable(t *testing.T) {
	tb, err := Parse(strings.NewReader("# nothing here\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Len())
}

func TestLoad(t *testing.T) {
	p := kit.WriteFile(t, "table.txt", []byte("# cp437 box drawing\nc4 2500\nb3 2502\n"))
	tb, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, p, tb.Name())
	assert.Equal(t, "─│", tb.Decode([]byte{0xc4, 0xb3}))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("/definitely/not/here.txt")
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestLoad_SyntaxErrorCarriesPath(t *testing.T) {
	p := kit.WriteFile(t, "bad.txt", []byte("41 A B\n"))
	_, err := Load(p)
	require.Error(t, err)
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, p, e.Op())
	assert.Equal(t, perr.ErrorCodeTableSyntax, e.Code())
}

func TestDecode_SkipsUnmapped(t *testing.T) {
	assert.Equal(t, "AB", ASCII().Decode([]byte{'A', 0x00, 'B'}))
}
