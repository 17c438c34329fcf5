/*
Package bitfont is a library for converting the font ROM dump from the
original Taipan game into the glyph map imported by the BitFontMaker2 web
font editor.

The dump holds one 8 by 8 monochrome glyph per character slot, eight rows
per glyph, in the slot order given by Catalog. Each row is transformed into
the editor's row representation and padded to the editor's cell height.
*/
package bitfont

import (
	"io"
	"log"
)

const (
	// RowsPerGlyph is the number of source rows read for each glyph
	RowsPerGlyph = 8

	// Catalog lists the characters in the order their glyphs appear in
	// the dump: '`' through '~', a space, '@' through '_' and then '!'
	// through '?'.
	Catalog = "`abcdefghijklmnopqrstuvwxyz{|}~ @ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_!\"#$%&'()*+,-./0123456789:;<=>?"

	// SlotCatalog lists every slot of the ROM dump in order, 0x60-0x7f,
	// 0x40-0x5f then 0x20-0x3f. Slots holding Skip are read but produce
	// no glyph.
	SlotCatalog = "`abcdefghijklmnopqrstuvwxyz{|}~\x7f@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_ !\"#$%&'()*+,-./0123456789:;<=>?"

	// Skip marks a catalog slot whose glyph is discarded
	Skip = '\x7f'

	// DefaultInput is the dump filename used when none is given
	DefaultInput = "taipan.font.bin"
)

// BuildFontMap reads a dump from r and returns the glyphs for each
// character in catalog using the Compact layout.
func BuildFontMap(r io.Reader, catalog string) (*FontMap, error) {
	return New(catalog, Compact, log.New(io.Discard, "", 0)).Transcode(r)
}
