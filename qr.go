// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes short texts as version 3-L QR codes and renders them
as SVG images.

Every code is 29×29 modules with low error correction, holding at most
53 bytes of text in byte mode under mask pattern 0.
*/
package qr // import "github.com/unixdj/qrsvg"

import (
	"errors"
	"unicode/utf8"

	"github.com/unixdj/qrsvg/coding"

	"golang.org/x/text/encoding/charmap"
)

// Default rendering parameters.
const (
	DefaultScale  = 8 // image pixels per module
	DefaultBorder = 8 // quiet zone in image pixels
)

var (
	ErrText      = errors.New("qr: text cannot be encoded")
	ErrDimension = errors.New("qr: invalid dimensions")
)

// Encode returns an encoding of text in byte mode.  The UTF-8 bytes
// of text are stored as they are.
func Encode(text string) (*Code, error) {
	if !utf8.ValidString(text) {
		return nil, ErrText
	}
	return encode([]byte(text))
}

// EncodeLatin1 returns an encoding of text converted to ISO 8859-1,
// the default character set of byte mode.  It fails with ErrText if
// text has runes outside Latin-1.
func EncodeLatin1(text string) (*Code, error) {
	if !utf8.ValidString(text) {
		return nil, ErrText
	}
	s, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return nil, ErrText
	}
	return encode([]byte(s))
}

func encode(b []byte) (*Code, error) {
	cc, err := coding.Encode(b)
	if err != nil {
		return nil, err
	}
	return &Code{cc.Bitmap, cc.Size, cc.Stride, DefaultScale, DefaultBorder}, nil
}

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row
	Scale  int    // number of image pixels per QR pixel
	Border int    // quiet zone width in image pixels
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

func (c *Code) isValid() bool {
	return c.Scale > 0 && c.Border >= 0 && c.Size > 0 &&
		c.Stride >= (c.Size+7)/8 && len(c.Bitmap) >= c.Size*c.Stride
}

// Dimension returns the width and height of the image in pixels.
func (c *Code) Dimension() int {
	return c.Scale*c.Size + 2*c.Border
}
