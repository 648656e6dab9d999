// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level coding details of a version 3-L
// QR code: the byte mode bit stream, Reed-Solomon check bytes, module
// placement, masking and format information.
//
// The symbol configuration is fixed: 29×29 modules, 55 data and 15
// check bytes in a single block, byte mode, mask pattern 0.
package coding // import "github.com/unixdj/qrsvg/coding"

import (
	"errors"
	"fmt"

	"github.com/unixdj/qrsvg/gf256"
)

// Symbol configuration.
const (
	Version    = 3                      // QR version
	Size       = Version*4 + 17         // pixels on a side
	DataBytes  = 55                     // data codewords
	CheckBytes = 15                     // error correction codewords
	DataBits   = DataBytes * 8          // data capacity in bits
	MaxText    = (DataBits - 4 - 8) / 8 // longest byte mode payload

	ModeByte   = 0b0100 // byte mode indicator
	countBits  = 8      // character count field width
	terminator = 4      // maximum terminator length
)

// ErrCapacity is matched by CapacityError.
var ErrCapacity = errors.New("qr: data exceeds symbol capacity")

// CapacityError reports data too long for the symbol.
type CapacityError struct {
	Bits int // encoded length including the header
	Max  int // capacity
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Max)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// InvariantError describes a module addressed outside the symbol or
// left unset.  The matrix builder panics with an InvariantError, as it
// can only happen if the layout constants are wrong.
type InvariantError struct {
	Op       string // placement phase
	Row, Col int
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("qr: internal error: %s: module (%d, %d) "+
		"in %d×%d symbol", e.Op, e.Row, e.Col, Size, Size)
}

// Bits is a buffer of bits, most significant bit of each byte first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the data and check
// bytes of the symbol.
func NewBits() *Bits {
	return &Bits{b: make([]byte, 0, DataBytes+CheckBytes)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the buffer.  b must hold a whole number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant first.
// nbit must be at most 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadTo adds up to t zero terminator bits to b, zero fills the last
// byte and pads it to n bits with alternating 0xec and 0x11 bytes.
// n must be a multiple of 8 no less than b.Bits().
func (b *Bits) PadTo(t, n int) {
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// EncodeBytes returns the DataBytes data codewords for a byte mode
// segment holding data: mode indicator, character count, data,
// terminator and padding.
func EncodeBytes(data []byte) ([]byte, error) {
	if n := 4 + countBits + 8*len(data); n > DataBits {
		return nil, &CapacityError{Bits: n, Max: DataBits}
	}
	b := NewBits()
	b.Write(ModeByte, 4)
	b.Write(uint32(len(data)), countBits)
	for _, v := range data {
		b.Write(uint32(v), 8)
	}
	b.PadTo(terminator, DataBits)
	return b.Bytes(), nil
}

// EncodeText returns the data codewords for text in byte mode.
func EncodeText(text string) ([]byte, error) {
	return EncodeBytes([]byte(text))
}

var rs = gf256.NewRSEncoder(gf256.QR, CheckBytes)

// Check returns the CheckBytes error correction codewords for data.
func Check(data []byte) []byte {
	check := make([]byte, CheckBytes)
	rs.ECC(data, check)
	return check
}

// Encode returns a QR code holding data in byte mode.
func Encode(data []byte) (*Code, error) {
	dat, err := EncodeBytes(data)
	if err != nil {
		return nil, err
	}
	return Build(dat, Check(dat)).Code(), nil
}

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row
}

// Black reports whether the pixel at (x, y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}
