package bitfont

// Glyph is a single character from the font
type Glyph struct {
	Char byte
	// Cells holds the padded row values written for the editor
	Cells []int
	// Source holds the decoded row bytes, top row first and with the
	// leftmost pixel in bit 0
	Source [RowsPerGlyph]byte
}

// DeriveRowValue converts a decoded row word into the editor's row value.
// The bytes of w are swapped and the result shifted right by 6, which for
// a valid row places the eight pixels two columns in from the left of the
// editor's sixteen column cell.
func DeriveRowValue(w uint16) int {
	return int(w>>8|w<<8) >> 6
}

// BuildGlyph returns the Compact glyph for key from its five rows.
func BuildGlyph(key byte, rows [5]int) Glyph {
	return Compact.BuildGlyph(key, rows[:])
}
