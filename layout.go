package bitfont

import (
	"errors"
	"fmt"
	"strconv"
)

var errUnknownLayout = errors.New("bitfont: unknown layout")

// Layout describes how the source rows of a glyph are placed in the
// editor's fixed height cell and how each glyph is keyed.
type Layout struct {
	Name string
	// Top and Bottom are the number of blank rows above and below
	Top, Bottom int
	// Rows is the number of source rows kept, starting from the first
	Rows int
	// NumericKeys writes the decimal character code as the key rather
	// than the character itself
	NumericKeys bool
	// Catalog is the slot order of dumps read with this layout
	Catalog string
}

var (
	// Compact keeps the first five rows of each glyph padded with three
	// blank rows either side and keys each glyph by its character.
	Compact = Layout{
		Name:    "compact",
		Top:     3,
		Rows:    5,
		Bottom:  3,
		Catalog: Catalog,
	}

	// BitFontMaker keeps all eight rows in the editor's sixteen row cell
	// and keys each glyph by its character code, which is the editor's
	// own export format. It reads the full 96 slot dump so the space
	// comes from the slot before '!'.
	BitFontMaker = Layout{
		Name:        "bitfontmaker",
		Top:         5,
		Rows:        RowsPerGlyph,
		Bottom:      3,
		NumericKeys: true,
		Catalog:     SlotCatalog,
	}

	layouts = []Layout{Compact, BitFontMaker}
)

// LayoutByName returns the predefined layout with the given name.
func LayoutByName(name string) (Layout, error) {
	for _, l := range layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %q", errUnknownLayout, name)
}

// LayoutNames returns the names of the predefined layouts.
func LayoutNames() []string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name
	}
	return names
}

// Cells returns the number of elements in each glyph
func (l Layout) Cells() int {
	return l.Top + l.Rows + l.Bottom
}

// BuildGlyph pads rows into a glyph for key. Only the first l.Rows rows are
// used and any missing rows are left blank.
func (l Layout) BuildGlyph(key byte, rows []int) Glyph {
	cells := make([]int, l.Cells())
	copy(cells[l.Top:l.Top+l.Rows], rows)
	return Glyph{
		Char:  key,
		Cells: cells,
	}
}

func (l Layout) key(c byte) string {
	if l.NumericKeys {
		return strconv.Itoa(int(c))
	}
	return string(c)
}
