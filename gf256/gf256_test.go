// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField(t *testing.T) {
	var seen [256]bool
	for i := 0; i < 255; i++ {
		x := QR.Exp(i)
		require.NotZero(t, x, "2^%d", i)
		require.False(t, seen[x], "2^%d = %#02x repeats", i, x)
		seen[x] = true
		assert.Equal(t, i, QR.Log(x))
	}
	assert.Equal(t, byte(1), QR.Exp(0))
	assert.Equal(t, byte(1), QR.Exp(255))
	assert.Equal(t, byte(0x1d), QR.Exp(8))
	assert.Equal(t, QR.Exp(254), QR.Exp(-1))
}

func TestNewFieldPanics(t *testing.T) {
	// 2 is not primitive for x⁸ + x⁴ + x³ + x + 1.
	assert.Panics(t, func() { NewField(0x11b) })
	assert.PanicsWithValue(t, "gf256: invalid polynomial 0xff",
		func() { NewField(0xff) })
	assert.PanicsWithValue(t, "gf256: invalid polynomial 0x200",
		func() { NewField(0x200) })
	assert.NotPanics(t, func() { NewField(0x11d) })
}

func TestArith(t *testing.T) {
	for x := 0; x < 256; x++ {
		a := byte(x)
		assert.Equal(t, a, QR.Mul(a, 1))
		assert.Zero(t, QR.Mul(a, 0))
		assert.Zero(t, QR.Add(a, a))
		if a != 0 {
			assert.Equal(t, byte(1), QR.Mul(a, QR.Inv(a)), "%#02x", a)
		}
		for _, b := range []byte{2, 3, 0x53, 0x8e, 0xff} {
			assert.Equal(t, QR.Mul(a, b), QR.Mul(b, a))
		}
	}
	assert.Equal(t, byte(0x1d), QR.Mul(0x80, 2))
	assert.PanicsWithValue(t, "gf256: log of zero", func() { QR.Log(0) })
	assert.PanicsWithValue(t, "gf256: inverse of zero", func() { QR.Inv(0) })
}

func TestPolyMul(t *testing.T) {
	assert.Nil(t, QR.PolyMul(nil, []byte{1}))
	assert.Equal(t, []byte{1, 3, 2}, QR.PolyMul([]byte{1, 1}, []byte{1, 2}))
	assert.Equal(t, []byte{0, 5, 0}, QR.PolyMul([]byte{0, 5}, []byte{1, 0}))
}

func TestGen(t *testing.T) {
	assert.Equal(t, []byte{1}, QR.Gen(0))
	assert.Equal(t, []byte{1, 127, 122, 154, 164, 11, 68, 117}, QR.Gen(7))
	assert.Equal(t, []byte{
		1, 29, 196, 111, 163, 112, 74, 10,
		105, 105, 139, 132, 151, 32, 134, 26,
	}, QR.Gen(15))
	assert.Panics(t, func() { QR.Gen(-1) })
}

func TestRemainder(t *testing.T) {
	data := []byte{0x40, 0x14, 0x10}
	for len(data) < 55 {
		data = append(data, 0xec, 0x11)
	}
	data = data[:55]
	check := QR.Remainder(data, 15)
	assert.Equal(t, []byte{
		0x93, 0xf8, 0x12, 0x41, 0x05, 0x0b, 0x86, 0x6f,
		0xab, 0xfa, 0xc5, 0x34, 0x0e, 0x2c, 0x19,
	}, check)

	// The code word is divisible by the generator.
	for _, k := range []int{1, 7, 15, 30} {
		msg := []byte("The quick brown fox")
		cw := append(msg, QR.Remainder(msg, k)...)
		assert.Equal(t, make([]byte, k), QR.Remainder(cw, k), "degree %d", k)
	}
}

func TestRSEncoder(t *testing.T) {
	rs := NewRSEncoder(QR, 15)
	for _, s := range []string{"", "A", "hello, world", "咨询师宁馨"} {
		check := make([]byte, 15)
		rs.ECC([]byte(s), check)
		assert.Equal(t, QR.Remainder([]byte(s), 15), check, "%q", s)
	}
	assert.PanicsWithValue(t, "gf256: invalid check byte length",
		func() { rs.ECC([]byte("A"), make([]byte, 14)) })
}

func ExampleField_Remainder() {
	fmt.Printf("% x\n", QR.Remainder([]byte{0x40, 0x14, 0x10}, 7))
	fmt.Println(QR.Gen(2))
	// Output:
	// 69 14 9d 79 45 47 df
	// [1 3 2]
}
