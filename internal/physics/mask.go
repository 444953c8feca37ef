package physics

// Mask is a per-pixel opacity bitmap used for pixel-accurate collisions.
// Rows are packed into 64-bit words so overlap tests compare 64 pixels at once.
type Mask struct {
	w, h  int
	words int // uint64 words per row
	bits  []uint64
}

// NewMask builds a w x h mask, setting every pixel for which opaque returns true.
func NewMask(w, h int, opaque func(x, y int) bool) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	words := (w + 63) / 64
	m := &Mask{w: w, h: h, words: words, bits: make([]uint64, words*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if opaque(x, y) {
				m.bits[y*words+x/64] |= 1 << uint(x%64)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Get reports whether the pixel at (x, y) is set. Out of range is unset.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.words+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}

// Overlap reports whether any set pixel of m coincides with a set pixel of
// other when other's top-left corner is placed at (offX, offY) in m's space.
func (m *Mask) Overlap(other *Mask, offX, offY int) bool {
	if other == nil {
		return false
	}
	x0 := max(0, offX)
	y0 := max(0, offY)
	x1 := min(m.w, offX+other.w)
	y1 := min(m.h, offY+other.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		oy := y - offY
		for x := x0; x < x1; {
			// Take up to one word from m starting at x, aligned to m's words.
			bit := x % 64
			n := min(64-bit, x1-x)
			chunk := m.bits[y*m.words+x/64] >> uint(bit)
			if n < 64 {
				chunk &= (1 << uint(n)) - 1
			}
			if chunk != 0 && chunk&other.row(oy, x-offX, n) != 0 {
				return true
			}
			x += n
		}
	}
	return false
}

// row extracts n (<= 64) bits of row y starting at column x.
func (m *Mask) row(y, x, n int) uint64 {
	base := y * m.words
	bit := x % 64
	word := x / 64
	v := m.bits[base+word] >> uint(bit)
	if bit != 0 && bit+n > 64 && word+1 < m.words {
		v |= m.bits[base+word+1] << uint(64-bit)
	}
	if n < 64 {
		v &= (1 << uint(n)) - 1
	}
	return v
}
