// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// Gen returns the Reed-Solomon generator polynomial of the given
// degree, the product of (x + 2ⁱ) for i from 0 to degree-1.
func (f *Field) Gen(degree int) []byte {
	if degree < 0 {
		panic("gf256: negative degree")
	}
	g := []byte{1}
	for i := 0; i < degree; i++ {
		g = f.PolyMul(g, []byte{1, f.exp[i]})
	}
	return g
}

// Remainder returns the remainder of dividing data·x^degree by the
// generator polynomial of the given degree: the degree check bytes
// for data.
func (f *Field) Remainder(data []byte, degree int) []byte {
	check := make([]byte, degree)
	f.remainder(data, f.Gen(degree), check)
	return check
}

// remainder divides data·x^len(check) by gen, which has
// len(check)+1 coefficients, and writes the remainder to check.
func (f *Field) remainder(data, gen, check []byte) {
	n := len(check)
	res := make([]byte, len(data)+n)
	copy(res, data)
	for i := range data {
		c := res[i]
		if c == 0 {
			continue
		}
		lc := int(f.log[c])
		for j, g := range gen {
			if g != 0 {
				res[i+j] ^= f.exp[lc+int(f.log[g])]
			}
		}
	}
	copy(check, res[len(data):])
}

// An RSEncoder computes Reed-Solomon check bytes with a fixed
// generator polynomial.  It is safe for concurrent use.
type RSEncoder struct {
	f   *Field
	gen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given field
// producing c check bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, gen: f.Gen(c)}
}

// ECC writes to check the error correcting code bytes for data.
// len(check) must equal the encoder's check byte count.
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) != len(rs.gen)-1 {
		panic("gf256: invalid check byte length")
	}
	rs.f.remainder(data, rs.gen, check)
}
