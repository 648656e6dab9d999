// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
)

const (
	svgHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	svgNS     = "http://www.w3.org/2000/svg"
	svgWhite  = `<rect width="100%" height="100%" fill="#ffffff"/>` + "\n"
	svgFooter = "</svg>\n"
)

// EncodeSVG writes an SVG image displaying the code to w: a white
// background covering the canvas and a black square of c.Scale pixels
// for each black module, offset by c.Border pixels of quiet zone.
// It returns ErrDimension if c.Scale is not positive or c.Border is
// negative.
func (c *Code) EncodeSVG(w io.Writer) error {
	if !c.isValid() {
		return ErrDimension
	}
	b := bufio.NewWriter(w)
	dim := strconv.Itoa(c.Dimension())
	b.WriteString(svgHeader)
	b.WriteString(`<svg xmlns="` + svgNS + `" width="` + dim +
		`" height="` + dim + `" viewBox="0 0 ` + dim + " " + dim + `">` + "\n")
	b.WriteString(svgWhite)
	scale := strconv.Itoa(c.Scale)
	for y := 0; y < c.Size; y++ {
		ys := strconv.Itoa(c.Border + y*c.Scale)
		for x := 0; x < c.Size; x++ {
			if !c.Black(x, y) {
				continue
			}
			b.WriteString(`<rect x="` + strconv.Itoa(c.Border+x*c.Scale) +
				`" y="` + ys + `" width="` + scale + `" height="` + scale +
				`" fill="#000000"/>` + "\n")
		}
	}
	b.WriteString(svgFooter)
	return b.Flush()
}

// SVG returns an SVG image displaying the code, or nil if the
// dimensions are invalid.
func (c *Code) SVG() []byte {
	var b bytes.Buffer
	if c.EncodeSVG(&b) != nil {
		return nil
	}
	return b.Bytes()
}

// WriteFile writes an SVG image displaying the code to the named
// file, creating or truncating it.  Nothing is created if the
// dimensions are invalid.
func (c *Code) WriteFile(name string) error {
	if !c.isValid() {
		return ErrDimension
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := c.EncodeSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
