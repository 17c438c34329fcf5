// Package preview renders font map glyphs as text art for checking a dump
// by eye.
package preview

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/bodgit/bitfont"
	"github.com/bodgit/bitfont/bits"
)

const (
	// DefaultWidth is used when the output width is unknown
	DefaultWidth = 80

	on     = '*'
	off    = ' '
	gutter = 2
	cell   = bitfont.RowsPerGlyph + gutter
)

// label quotes c in ASCII so every label is one column per byte
func label(c byte) []byte {
	l := []byte(strconv.QuoteRuneToASCII(rune(c)))
	return append(l, bytes.Repeat([]byte{off}, cell-len(l))...)
}

// Write draws the glyphs of fm to w in bands as wide as will fit in width
// columns, each glyph under its quoted character. The leftmost pixel is
// bit 0 of each row unless flip is set, in which case it is bit 7.
func Write(w io.Writer, fm *bitfont.FontMap, width int, flip bool) error {
	perBand := width / cell
	if perBand < 1 {
		perBand = 1
	}

	bw := bufio.NewWriter(w)

	for start := 0; start < fm.Len(); start += perBand {
		end := start + perBand
		if end > fm.Len() {
			end = fm.Len()
		}
		band := fm.Glyphs[start:end]

		if start > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}

		var line []byte
		for _, g := range band {
			line = append(line, label(g.Char)...)
		}
		if err := writeLine(bw, line); err != nil {
			return err
		}

		for y := 0; y < bitfont.RowsPerGlyph; y++ {
			line = line[:0]
			for _, g := range band {
				row := g.Source[y]
				if flip {
					row = bits.Reverse(row)
				}
				for x := 0; x < bitfont.RowsPerGlyph; x++ {
					if row>>uint(x)&1 != 0 {
						line = append(line, on)
					} else {
						line = append(line, off)
					}
				}
				line = append(line, bytes.Repeat([]byte{off}, gutter)...)
			}
			if err := writeLine(bw, line); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func writeLine(w *bufio.Writer, line []byte) error {
	if _, err := w.Write(bytes.TrimRight(line, string(off))); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
