// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Format information.
const (
	FormatData = 0b01000           // level L, mask pattern 0
	formatPoly = 0b10100110111     // BCH(15,5) generator
	formatMask = 0b101010000010010 // XORed with the code word
)

var formatBits = FormatInfo(FormatData)

// bchRemainder returns the remainder of dividing v by formatPoly.
func bchRemainder(v uint16) uint16 {
	for i := 14; i >= 10; i-- {
		if v>>i&1 != 0 {
			v ^= formatPoly << (i - 10)
		}
	}
	return v
}

// FormatInfo returns the masked 15 bit format information
// for the 5 bit value data.
func FormatInfo(data uint16) uint16 {
	fb := (data & 0x1f) << 10
	return (fb | bchRemainder(fb)) ^ formatMask
}

// CheckFormat removes the mask from the format information v and
// returns the 5 bit value and the BCH syndrome, which is 0 for a
// valid code word.
func CheckFormat(v uint16) (data, syndrome uint16) {
	v ^= formatMask
	return v >> 10 & 0x1f, bchRemainder(v&0x7fff)
}
