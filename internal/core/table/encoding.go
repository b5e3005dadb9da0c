package table

import (
	"sort"
	"unicode"
	"unicode/utf8"

	perr "findstrings/internal/platform/errors"
	pstrings "findstrings/internal/platform/strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// builtin short names; anything else is looked up in the IANA index
var builtin = map[string]*charmap.Charmap{
	"cp037":        charmap.CodePage037,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"cp866":        charmap.CodePage866,
	"latin1":       charmap.ISO8859_1,
	"latin2":       charmap.ISO8859_2,
	"latin9":       charmap.ISO8859_15,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-7":   charmap.ISO8859_7,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"macintosh":    charmap.Macintosh,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
}

// Encodings lists the built-in encoding names plus "ascii", sorted
func Encodings() []string {
	out := make([]string, 0, len(builtin)+1)
	out = append(out, "ascii")
	for k := range builtin {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FromEncoding builds a table from a single-byte character set. Only bytes
// whose decoded character is graphic (a plain space included) are mapped
func FromEncoding(name string) (*Table, error) {
	key := pstrings.Lower(name)
	if key == "ascii" || key == "us-ascii" {
		return ASCII(), nil
	}

	cm, ok := builtin[key]
	if !ok {
		enc, err := ianaindex.IANA.Encoding(key)
		if err != nil || enc == nil {
			return nil, perr.InvalidConfigf("unknown encoding %q", name)
		}
		if cm, ok = enc.(*charmap.Charmap); !ok {
			return nil, perr.InvalidConfigf("encoding %q is not a single-byte character set", name)
		}
	}

	t := newTable(key)
	for b := 0; b < 256; b++ {
		r := cm.DecodeByte(byte(b))
		if r == utf8.RuneError || !unicode.IsGraphic(r) {
			continue
		}
		if unicode.IsSpace(r) && r != ' ' {
			continue
		}
		t.put(byte(b), r)
	}
	return t, nil
}
