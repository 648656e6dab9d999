// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// TextBorder is the quiet zone of text renderings in modules.
const TextBorder = 4

var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// text renders c with Unicode half blocks, two modules per line.
// Black modules are drawn as ink, or white ones if rev is set.
func (c *Code) text(rev bool) string {
	pix := c.Size + 2*TextBorder
	ink := func(x, y int) int {
		if y >= c.Size+TextBorder || c.Black(x, y) == rev {
			return 0
		}
		return 1
	}
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	for y := -TextBorder; y < c.Size+TextBorder; y += 2 {
		for x := -TextBorder; x < c.Size+TextBorder; x++ {
			b.WriteString(halfBlocks[ink(x, y)|ink(x, y+1)<<1])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the code drawn with Unicode half blocks for display
// on a terminal with a light background.
func (c *Code) String() string { return c.text(false) }

// EncodeText writes the code to w drawn with Unicode half blocks.
// If rev is set, colours are inverted for terminals with a dark
// background.
func (c *Code) EncodeText(w io.Writer, rev bool) error {
	_, err := io.WriteString(w, c.text(rev))
	return err
}
