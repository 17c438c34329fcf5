/*
Package sheet renders a font map as a contact sheet image.

Each glyph occupies one 8 by 8 tile and tiles are laid out sixteen to a row
in catalog order, so a complete 95 glyph font produces a 128 by 48 pixel
image before scaling. Set pixels are black on a white background.
*/
package sheet

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/bodgit/bitfont"
	"golang.org/x/image/draw"
)

const (
	tileWidth  = bitfont.RowsPerGlyph
	tileHeight = tileWidth
	tileX      = 16

	// Index of black in palette
	black = 1
)

var (
	errNoGlyphs = errors.New("sheet: no glyphs")
	errBadScale = errors.New("sheet: scale must be at least 1")

	palette = color.Palette{color.White, color.Black}
)

func tiles(n int) (int, int) {
	if n < tileX {
		return n, 1
	}
	return tileX, (n + tileX - 1) / tileX
}

// Image returns the contact sheet for fm at its natural size.
func Image(fm *bitfont.FontMap) *image.Paletted {
	tx, ty := tiles(fm.Len())
	m := image.NewPaletted(image.Rect(0, 0, tx*tileWidth, ty*tileHeight), palette)

	for i, g := range fm.Glyphs {
		ox, oy := i%tileX*tileWidth, i/tileX*tileHeight
		for y := 0; y < tileHeight; y++ {
			for x := 0; x < tileWidth; x++ {
				if g.Source[y]>>uint(x)&1 != 0 {
					m.SetColorIndex(ox+x, oy+y, black)
				}
			}
		}
	}

	return m
}

// Encode writes the contact sheet for fm to w as a PNG, with each pixel
// enlarged to a scale by scale square.
func Encode(w io.Writer, fm *bitfont.FontMap, scale int) error {
	if scale < 1 {
		return errBadScale
	}
	if fm.Len() == 0 {
		return errNoGlyphs
	}

	m := Image(fm)
	if scale == 1 {
		return png.Encode(w, m)
	}

	b := m.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)

	return png.Encode(w, dst)
}
