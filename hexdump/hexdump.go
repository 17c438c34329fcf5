/*
Package hexdump implements a reader for the text hex dumps taken from the
Taipan font ROM.

Each source byte is written as two uppercase hexadecimal digits followed by
a single delimiter character whose value is ignored, so a dump of n bytes is
3n characters long. The delimiter after the final byte may be missing.
*/
package hexdump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	digitsPerByte = 2
	charsPerByte  = digitsPerByte + 1
	invalid       = -1
)

// ErrInvalidHexDigit is wrapped by every DigitError
var ErrInvalidHexDigit = errors.New("hexdump: invalid hex digit")

// DigitError records a character outside of 0-9 and A-F and where in the
// stream it was found.
type DigitError struct {
	Offset int64
	Char   byte
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("hexdump: invalid hex digit %q at offset %d", e.Char, e.Offset)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidHexDigit
}

// Nibble returns the value of the uppercase hex digit c, or -1 if c is not
// a hex digit.
func Nibble(c byte) int {
	switch {
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= '0' && c <= '9':
		return int(c - '0')
	}
	return invalid
}

// DecodeByte decodes the digit pair hi, lo into a 16-bit word. For valid
// digits the high byte is always zero. An invalid digit contributes -1 to
// the arithmetic, which sets bits in the high byte, and a *DigitError is
// returned alongside the word. The offset in the error is relative to hi.
func DecodeByte(hi, lo byte) (uint16, error) {
	w := uint16(Nibble(hi)<<4 | Nibble(lo))
	for i, c := range [...]byte{hi, lo} {
		if Nibble(c) == invalid {
			return w, &DigitError{Offset: int64(i), Char: c}
		}
	}
	return w, nil
}

// Reader reads rows from a hex dump one byte at a time.
type Reader struct {
	r      *bufio.Reader
	offset int64

	tmp [charsPerByte]byte
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: bufio.NewReader(r),
	}
}

// Offset returns the number of characters consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadRow consumes two hex digits and the delimiter that follows them and
// returns the decoded word. It returns io.EOF if the stream is exhausted
// and io.ErrUnexpectedEOF if it ends part way through a digit pair.
func (r *Reader) ReadRow() (uint16, error) {
	n, err := io.ReadFull(r.r, r.tmp[:])
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, err
	}

	start := r.offset
	r.offset += int64(n)

	if n < digitsPerByte {
		return 0, io.ErrUnexpectedEOF
	}

	w, err := DecodeByte(r.tmp[0], r.tmp[1])
	if de, ok := err.(*DigitError); ok {
		de.Offset += start
	}
	return w, err
}
