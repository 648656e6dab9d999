// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is the state of a matrix cell.
type Module byte

const (
	Unset Module = iota
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "unset"
}

// Layout constants.
var (
	// Top left corners of position boxes.
	finderPos = [3][2]int{{0, 0}, {0, Size - 7}, {Size - 7, 0}}

	// Alignment box centres are all combinations of these.
	alignPos = [2]int{6, 22}

	// Format information cells, most significant bit first.
	formatPrimary = [15][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
		{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	}
	formatSecondary = [15][2]int{
		{Size - 1, 8}, {Size - 2, 8}, {Size - 3, 8}, {Size - 4, 8},
		{Size - 5, 8}, {Size - 6, 8}, {Size - 7, 8},
		{8, Size - 8}, {8, Size - 7}, {8, Size - 6}, {8, Size - 5},
		{8, Size - 4}, {8, Size - 3}, {8, Size - 2}, {8, Size - 1},
	}
)

// A Matrix is a QR code under construction.  Each cell holds a Module
// and a flag marking function patterns: position, alignment and
// timing patterns, format information and the dark module.
type Matrix struct {
	mod [Size * Size]Module
	fn  [Size * Size]bool
}

// NewMatrix returns a matrix with all cells unset.
func NewMatrix() *Matrix { return new(Matrix) }

// Size returns the number of modules on a side.
func (m *Matrix) Size() int { return Size }

// At returns the module at row, col.
func (m *Matrix) At(row, col int) Module {
	return m.mod[m.index("At", row, col)]
}

// IsFunction reports whether the module at row, col belongs to
// a function pattern.
func (m *Matrix) IsFunction(row, col int) bool {
	return m.fn[m.index("IsFunction", row, col)]
}

func (m *Matrix) index(op string, row, col int) int {
	if uint(row) >= Size || uint(col) >= Size {
		panic(InvariantError{op, row, col})
	}
	return row*Size + col
}

func (m *Matrix) set(op string, row, col int, v Module, fn bool) {
	i := m.index(op, row, col)
	m.mod[i] = v
	m.fn[i] = fn
}

func dark(b bool) Module {
	if b {
		return Dark
	}
	return Light
}

func inside(row, col int) bool {
	return uint(row) < Size && uint(col) < Size
}

// Build returns the complete matrix for data and check bytes.
func Build(data, check []byte) *Matrix {
	m := NewMatrix()
	m.finders()
	m.timing()
	m.alignment()
	m.reserve()
	bits := make([]byte, 0, len(data)+len(check))
	m.Serialise(NewBitStream(append(append(bits, data...), check...)))
	m.mask()
	m.format(formatBits)
	return m
}

// finders draws position boxes with their light separators.
func (m *Matrix) finders() {
	for _, p := range finderPos {
		for i := -1; i <= 7; i++ {
			for j := -1; j <= 7; j++ {
				r, c := p[0]+i, p[1]+j
				if !inside(r, c) {
					continue
				}
				v := Light
				if 0 <= i && i <= 6 && 0 <= j && j <= 6 &&
					(i == 0 || i == 6 || j == 0 || j == 6 ||
						2 <= i && i <= 4 && 2 <= j && j <= 4) {
					v = Dark
				}
				m.set("finder", r, c, v, true)
			}
		}
	}
}

// timing draws timing strips on row and column 6 between the
// separators.
func (m *Matrix) timing() {
	for i := 8; i < Size-8; i++ {
		if m.At(6, i) == Unset {
			m.set("timing", 6, i, dark(i%2 == 0), true)
		}
		if m.At(i, 6) == Unset {
			m.set("timing", i, 6, dark(i%2 == 0), true)
		}
	}
}

// alignment draws alignment boxes where the centre is free.
func (m *Matrix) alignment() {
	for _, r := range alignPos {
		for _, c := range alignPos {
			if m.At(r, c) != Unset {
				continue
			}
			for i := -2; i <= 2; i++ {
				for j := -2; j <= 2; j++ {
					if !inside(r+i, c+j) || m.At(r+i, c+j) != Unset {
						continue
					}
					d := max(abs(i), abs(j))
					m.set("alignment", r+i, c+j,
						dark(d != 1), true)
				}
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// reserve clears format information bands next to position boxes and
// draws the dark module and separator marks.
func (m *Matrix) reserve() {
	for i := 0; i <= 8; i++ {
		if i == 6 {
			continue
		}
		m.set("reserve", 8, i, Unset, true)
		m.set("reserve", i, 8, Unset, true)
	}
	for i := Size - 8; i < Size; i++ {
		m.set("reserve", 8, i, Unset, true)
		m.set("reserve", i, 8, Unset, true)
	}
	m.set("dark module", Size-8, 8, Dark, true)
	m.set("separator", 7, 8, Dark, true)
	m.set("separator", 8, 7, Dark, true)
}

// Serialise writes bits from s to unset data cells in zigzag scan
// order: pairs of columns right to left, skipping the vertical timing
// strip, alternately upwards and downwards starting at the bottom
// right.  Cells left after s is exhausted are light.
func (m *Matrix) Serialise(s BitStream) {
	up := true
	for x := Size - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for n := 0; n < Size; n++ {
			y := n
			if up {
				y = Size - 1 - n
			}
			for _, c := range [2]int{x, x - 1} {
				i := m.index("data", y, c)
				if m.mod[i] == Unset && !m.fn[i] {
					m.mod[i] = dark(s.Next() != 0)
				}
			}
		}
		up = !up
	}
}

// masked reports whether mask pattern 0 inverts the module at row, col.
func masked(row, col int) bool { return (row+col)%2 == 0 }

// mask applies mask pattern 0 to data cells.
func (m *Matrix) mask() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if i := r*Size + c; !m.fn[i] && masked(r, c) {
				m.mod[i] ^= Light ^ Dark
			}
		}
	}
}

// format writes both copies of the 15 bit format information v.
func (m *Matrix) format(v uint16) {
	for i := 0; i < 15; i++ {
		bit := dark(v>>(14-i)&1 != 0)
		p, s := formatPrimary[i], formatSecondary[i]
		m.set("format", p[0], p[1], bit, true)
		m.set("format", s[0], s[1], bit, true)
	}
}

// Format returns the 15 bit format information read from the primary
// and secondary copies in m.
func (m *Matrix) Format() (primary, secondary uint16) {
	bit := func(p [2]int) uint16 {
		if m.At(p[0], p[1]) == Dark {
			return 1
		}
		return 0
	}
	for i := 0; i < 15; i++ {
		primary = primary<<1 | bit(formatPrimary[i])
		secondary = secondary<<1 | bit(formatSecondary[i])
	}
	return primary, secondary
}

// Code returns the finished matrix as a bitmap.
// Code panics if any cell is unset.
func (m *Matrix) Code() *Code {
	stride := (Size + 7) >> 3
	c := &Code{
		Bitmap: make([]byte, Size*stride),
		Size:   Size,
		Stride: stride,
	}
	for r := 0; r < Size; r++ {
		for x := 0; x < Size; x++ {
			switch m.mod[r*Size+x] {
			case Unset:
				panic(InvariantError{"unset module", r, x})
			case Dark:
				c.Bitmap[r*stride+x/8] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// ReadCodewords returns the data and check bytes stored in m,
// removing the mask and reading cells in zigzag scan order.
// Trailing remainder bits are dropped.
func ReadCodewords(m *Matrix) []byte {
	b := NewBits()
	up := true
	for x := Size - 1; x > 0; x -= 2 {
		if x == 6 {
			x--
		}
		for n := 0; n < Size; n++ {
			y := n
			if up {
				y = Size - 1 - n
			}
			for _, c := range [2]int{x, x - 1} {
				if m.IsFunction(y, c) {
					continue
				}
				v := m.At(y, c) == Dark
				if masked(y, c) {
					v = !v
				}
				var bit uint32
				if v {
					bit = 1
				}
				b.Write(bit, 1)
			}
		}
		up = !up
	}
	n := b.Bits() / 8
	return b.b[:n]
}
