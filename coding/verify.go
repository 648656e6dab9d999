// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrCorrupt is returned by Verify for a matrix that does not hold
// a valid symbol.
var ErrCorrupt = errors.New("qr: corrupt symbol")

// Verify reads the symbol in m back and returns its payload.  Both
// copies of the format information, the check bytes and the byte mode
// header must be intact; no error correction is attempted.
func Verify(m *Matrix) ([]byte, error) {
	p, s := m.Format()
	for _, v := range [2]uint16{p, s} {
		if data, syn := CheckFormat(v); syn != 0 || data != FormatData {
			return nil, fmt.Errorf("%w: format information %#04x",
				ErrCorrupt, v)
		}
	}
	cw := ReadCodewords(m)
	data := cw[:DataBytes]
	if !bytes.Equal(Check(data), cw[DataBytes:]) {
		return nil, fmt.Errorf("%w: check bytes", ErrCorrupt)
	}
	if mode := data[0] >> 4; mode != ModeByte {
		return nil, fmt.Errorf("%w: mode %#04b", ErrCorrupt, mode)
	}
	n := int(data[0]&0xf)<<4 | int(data[1]>>4)
	if n > MaxText {
		return nil, fmt.Errorf("%w: length %d", ErrCorrupt, n)
	}
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = data[1+i]<<4 | data[2+i]>>4
	}
	return payload, nil
}
