// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/skip2/go-qrcode/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsWrite(t *testing.T) {
	tests := []struct {
		w    [][2]int // value, width
		want []byte
		nbit int
	}{
		{nil, []byte{}, 0},
		{[][2]int{{0b0100, 4}, {1, 8}, {'A', 8}}, []byte{0x40, 0x14, 0x10}, 20},
		{[][2]int{{1, 1}, {0, 1}, {1, 1}}, []byte{0xa0}, 3},
		{[][2]int{{0xabc, 12}, {0x123456, 24}}, []byte{0xab, 0xc1, 0x23, 0x45, 0x60}, 36},
		{[][2]int{{0xffffffff, 32}}, []byte{0xff, 0xff, 0xff, 0xff}, 32},
		{[][2]int{{0x7, 3}, {0, 0}, {0x1f, 5}}, []byte{0xff}, 8},
	}
	for _, tt := range tests {
		b := NewBits()
		for _, w := range tt.w {
			b.Write(uint32(w[0]), w[1])
		}
		assert.Equal(t, tt.nbit, b.Bits())
		assert.Equal(t, tt.want, b.b, "writes %v", tt.w)
	}
}

func TestBitsPadTo(t *testing.T) {
	b := NewBits()
	b.Write(0b0100, 4)
	b.Write(1, 8)
	b.Write('A', 8)
	b.PadTo(4, 64)
	assert.Equal(t, []byte{0x40, 0x14, 0x10, 0xec, 0x11, 0xec, 0x11, 0xec}, b.Bytes())

	// Terminator is cut short at capacity.
	b.Reset()
	b.Write(0x3f, 6)
	b.PadTo(4, 8)
	assert.Equal(t, []byte{0xfc}, b.Bytes())
}

func TestBitsFractionalPanics(t *testing.T) {
	b := NewBits()
	b.Write(1, 3)
	assert.PanicsWithValue(t, "qr: fractional byte", func() { b.Bytes() })
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa5})
	var got []byte
	for i := 0; i < 10; i++ {
		got = append(got, s.Next())
	}
	assert.Equal(t, []byte{1, 0, 1, 0, 0, 1, 0, 1, 0, 0}, got)
}

func TestEncodeTextA(t *testing.T) {
	data, err := EncodeText("A")
	require.NoError(t, err)
	require.Len(t, data, DataBytes)
	assert.Equal(t, []byte{0x40, 0x14, 0x10}, data[:3])
	for i, v := range data[3:] {
		want := byte(0xec)
		if i%2 != 0 {
			want = 0x11
		}
		require.Equal(t, want, v, "pad byte %d", i)
	}
}

// oracle builds the expected bit stream with an independent bit set.
func oracle(data []byte) []byte {
	b := bitset.New()
	b.AppendUint32(ModeByte, 4)
	b.AppendUint32(uint32(len(data)), 8)
	b.AppendBytes(data)
	b.AppendNumBools(min(4, DataBits-b.Len()), false)
	if r := b.Len() % 8; r != 0 {
		b.AppendNumBools(8-r, false)
	}
	var out []byte
	for i := 0; i < b.Len(); i += 8 {
		out = append(out, b.ByteAt(i))
	}
	pad := []byte{0xec, 0x11}
	for i := 0; len(out) < DataBytes; i++ {
		out = append(out, pad[i%2])
	}
	return out
}

func TestEncodeTextOracle(t *testing.T) {
	for _, text := range []string{
		"",
		"A",
		"hello, world",
		"咨询师宁馨",
		strings.Repeat("x", 52),
		strings.Repeat("y", MaxText),
	} {
		data, err := EncodeText(text)
		require.NoError(t, err, "%q", text)
		assert.Equal(t, oracle([]byte(text)), data, "%q", text)
	}
}

func TestEncodeCapacity(t *testing.T) {
	for _, n := range []int{MaxText + 1, 100, 255, 256, 1000} {
		data, err := EncodeBytes(bytes.Repeat([]byte{'z'}, n))
		require.Error(t, err, "%d bytes", n)
		assert.Nil(t, data)
		assert.True(t, errors.Is(err, ErrCapacity))
		var ce *CapacityError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 12+8*n, ce.Bits)
		assert.Equal(t, DataBits, ce.Max)
	}
	assert.EqualError(t, &CapacityError{Bits: 444, Max: 440},
		"qr: cannot encode 444 bits into 440-bit code")
}

func TestCheck(t *testing.T) {
	data, err := EncodeText("A")
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x93, 0xf8, 0x12, 0x41, 0x05, 0x0b, 0x86, 0x6f,
		0xab, 0xfa, 0xc5, 0x34, 0x0e, 0x2c, 0x19,
	}, Check(data))
}

func TestEncode(t *testing.T) {
	c, err := Encode([]byte("A"))
	require.NoError(t, err)
	assert.Equal(t, Size, c.Size)
	assert.Equal(t, 4, c.Stride)
	assert.Len(t, c.Bitmap, Size*4)
	assert.True(t, c.Black(0, 0))
	assert.False(t, c.Black(1, 1))
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(Size, 0))

	_, err = Encode(bytes.Repeat([]byte{0}, MaxText+1))
	assert.ErrorIs(t, err, ErrCapacity)
}
