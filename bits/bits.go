// Package bits provides bit manipulation for 8 pixel wide font rows.
package bits

// Reverse mirrors the bit order of b, so bit 0 swaps with bit 7, bit 1 with
// bit 6 and so on.
//
//	*... ...*
//	.*.. ..*.
//	..*. .*..
func Reverse(b byte) byte {
	return b&0x01<<7 |
		b&0x02<<5 |
		b&0x04<<3 |
		b&0x08<<1 |
		b&0x10>>1 |
		b&0x20>>3 |
		b&0x40>>5 |
		b&0x80>>7
}
