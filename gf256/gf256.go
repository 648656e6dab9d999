// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed-Solomon error correction coding.
package gf256 // import "github.com/unixdj/qrsvg/gf256"

import "fmt"

// A Field represents an instance of GF(256) defined by a specific
// polynomial, with 2 as the primitive element.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // doubled to avoid reducing exponents mod 255
}

// QR is the field used by QR error correction,
// x⁸ + x⁴ + x³ + x² + 1.
var QR = NewField(0x11d)

// NewField returns a new field corresponding to the polynomial poly.
// NewField panics if 2 does not generate all 255 nonzero elements.
func NewField(poly int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic(fmt.Sprintf("gf256: invalid polynomial %#x", poly))
	}
	var f Field
	var seen [256]bool
	x := 1
	for i := 0; i < 255; i++ {
		if seen[x] {
			panic(fmt.Sprintf("gf256: polynomial %#x: element %#02x "+
				"repeats at step %d", poly, x, i))
		}
		seen[x] = true
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		if x <<= 1; x&0x100 != 0 {
			x ^= poly
		}
	}
	if x != 1 {
		panic(fmt.Sprintf("gf256: polynomial %#x: cycle ends at %#02x",
			poly, x))
	}
	return &f
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Exp returns the base 2 exponential of e in the field.
// e may be negative.
func (f *Field) Exp(e int) byte {
	if e %= 255; e < 0 {
		e += 255
	}
	return f.exp[e]
}

// Log returns the base 2 logarithm of x in the field.
// Log panics if x is 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log of zero")
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// Inv panics if x is 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		panic("gf256: inverse of zero")
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// PolyMul returns the product of polynomials p and q, coefficients
// listed from the highest power.  The result has len(p)+len(q)-1
// coefficients.
func (f *Field) PolyMul(p, q []byte) []byte {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		la := int(f.log[a])
		for j, b := range q {
			if b != 0 {
				r[i+j] ^= f.exp[la+int(f.log[b])]
			}
		}
	}
	return r
}
