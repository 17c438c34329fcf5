package bitfont

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/bitfont/hexdump"
)

// InvalidInputError is returned alongside a complete FontMap when the dump
// contained characters that are not hex digits. The affected rows hold the
// values the bad digits decode to.
type InvalidInputError struct {
	Errs []error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("bitfont: %d invalid hex digits, first: %v", len(e.Errs), e.Errs[0])
}

func (e *InvalidInputError) Unwrap() []error {
	return e.Errs
}

// Transcoder converts dumps into font maps
type Transcoder struct {
	catalog string
	layout  Layout
	logger  *log.Logger
}

// New returns a Transcoder that reads a glyph for each character in
// catalog and arranges it according to layout. Usually catalog is
// layout.Catalog.
func New(catalog string, layout Layout, logger *log.Logger) *Transcoder {
	return &Transcoder{
		catalog: catalog,
		layout:  layout,
		logger:  logger,
	}
}

// Transcode reads the dump from r. If the dump ends early the glyphs read
// so far are returned without error; a partial glyph at the end is dropped.
func (t *Transcoder) Transcode(r io.Reader) (*FontMap, error) {
	hr := hexdump.NewReader(r)

	fm := &FontMap{
		Layout: t.layout,
		Glyphs: make([]Glyph, 0, len(t.catalog)),
	}

	var invalid []error
	var rows [RowsPerGlyph]int

glyphs:
	for i := 0; i < len(t.catalog); i++ {
		var source [RowsPerGlyph]byte
		for y := range rows {
			w, err := hr.ReadRow()
			switch {
			case err == io.EOF || err == io.ErrUnexpectedEOF:
				t.logger.Printf("Input ended after %d of %d slots at offset %d\n", i, len(t.catalog), hr.Offset())
				break glyphs
			case errors.Is(err, hexdump.ErrInvalidHexDigit):
				t.logger.Printf("Glyph %q row %d: %v\n", t.catalog[i], y, err)
				invalid = append(invalid, err)
			case err != nil:
				return nil, err
			}
			source[y] = byte(w)
			rows[y] = DeriveRowValue(w)
		}

		if t.catalog[i] == Skip {
			continue
		}

		g := t.layout.BuildGlyph(t.catalog[i], rows[:])
		g.Source = source
		fm.Glyphs = append(fm.Glyphs, g)
	}

	t.logger.Printf("Read %d glyphs using %s layout\n", fm.Len(), t.layout.Name)

	if len(invalid) > 0 {
		return fm, &InvalidInputError{Errs: invalid}
	}
	return fm, nil
}

// TranscodeFile opens file and transcodes it. The file is always closed
// before returning.
func (t *Transcoder) TranscodeFile(file string) (*FontMap, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("bitfont: %w", err)
	}
	defer f.Close()

	t.logger.Printf("Reading \"%s\"\n", file)

	return t.Transcode(f)
}
