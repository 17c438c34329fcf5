package bitfont

import (
	"io"
	"strconv"
	"strings"
)

// FontMap is the ordered set of glyphs read from a dump. It implements the
// encoding.TextMarshaler and io.WriterTo interfaces.
type FontMap struct {
	Layout Layout
	Glyphs []Glyph
}

// Len returns the number of glyphs
func (fm *FontMap) Len() int {
	return len(fm.Glyphs)
}

// Keys returns the character of each glyph in order
func (fm *FontMap) Keys() string {
	var b strings.Builder
	for _, g := range fm.Glyphs {
		b.WriteByte(g.Char)
	}
	return b.String()
}

// MarshalText encodes the font map in the editor's import format:
//
//	{"a":[0,0,0,r0,r1,r2,r3,r4,0,0,0],"b":[...],...}
//
// Keys are wrapped in double quotes but are otherwise written as is.
func (fm *FontMap) MarshalText() ([]byte, error) {
	entries := make([]string, len(fm.Glyphs))
	for i, g := range fm.Glyphs {
		cells := make([]string, len(g.Cells))
		for j, v := range g.Cells {
			cells[j] = strconv.Itoa(v)
		}
		entries[i] = `"` + fm.Layout.key(g.Char) + `":[` + strings.Join(cells, ",") + "]"
	}
	return []byte("{" + strings.Join(entries, ",") + "}"), nil
}

// WriteTo writes the encoded font map to w
func (fm *FontMap) WriteTo(w io.Writer) (int64, error) {
	b, err := fm.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
