package physics

import "testing"

func solid(x, y int) bool { return true }

// ring returns a mask that is opaque only on its border.
func ring(w, h int) *Mask {
	return NewMask(w, h, func(x, y int) bool {
		return x == 0 || y == 0 || x == w-1 || y == h-1
	})
}

func TestMaskOverlapSolid(t *testing.T) {
	a := NewMask(10, 10, solid)
	b := NewMask(4, 4, solid)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 9, true},
		{10, 0, false},
		{-4, 0, false},
		{-3, -3, true},
		{0, 10, false},
	}
	for _, c := range cases {
		if got := a.Overlap(b, c.x, c.y); got != c.want {
			t.Errorf("Overlap at (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestMaskOverlapHollow(t *testing.T) {
	// A small solid square sitting inside a hollow ring overlaps its bounds
	// but not its pixels.
	outer := ring(20, 20)
	inner := NewMask(4, 4, solid)
	if outer.Overlap(inner, 8, 8) {
		t.Fatal("solid square inside hollow ring reported overlap")
	}
	if !outer.Overlap(inner, 17, 8) {
		t.Fatal("square touching ring border not reported")
	}
}

func TestMaskOverlapAcrossWordBoundary(t *testing.T) {
	// Wide masks exercise the packed-word path with unaligned offsets.
	a := NewMask(200, 1, func(x, y int) bool { return x == 130 })
	b := NewMask(100, 1, func(x, y int) bool { return x == 67 })
	if !a.Overlap(b, 63, 0) {
		t.Fatal("expected overlap at column 130")
	}
	if a.Overlap(b, 62, 0) {
		t.Fatal("unexpected overlap one pixel off")
	}
	if !b.Overlap(a, -63, 0) {
		t.Fatal("overlap should be symmetric under negated offset")
	}
}

func TestMaskCountAndGet(t *testing.T) {
	m := ring(5, 5)
	if got := m.Count(); got != 16 {
		t.Fatalf("ring count = %d, want 16", got)
	}
	if m.Get(2, 2) || !m.Get(0, 2) || m.Get(-1, 0) || m.Get(5, 0) {
		t.Fatal("Get returned unexpected values")
	}
}

type box struct {
	r Rect
	m *Mask
}

func (b box) Bounds() Rect { return b.r }
func (b box) Mask() *Mask  { return b.m }

func TestCollide(t *testing.T) {
	a := box{Rect{X: 0, Y: 0, W: 10, H: 10}, NewMask(10, 10, solid)}
	b := box{Rect{X: 9.5, Y: 9.5, W: 4, H: 4}, NewMask(4, 4, solid)}
	if !Collide(a, b) {
		t.Fatal("expected collision for overlapping boxes")
	}
	b.r.X = 10
	if Collide(a, b) {
		t.Fatal("boxes touching at the edge must not collide")
	}
	if Collide(a, box{r: Rect{W: 1, H: 1}}) {
		t.Fatal("nil mask must not collide")
	}
}

func TestCollideUsesDrawnPixelOffsets(t *testing.T) {
	// a only covers its left pixel; b snaps one column right of it.
	a := box{Rect{X: 0.6, Y: 0, W: 2, H: 1}, NewMask(2, 1, func(x, _ int) bool { return x == 0 })}
	b := box{Rect{X: 1.4, Y: 0, W: 1, H: 1}, NewMask(1, 1, solid)}
	if Collide(a, b) || Collide(b, a) {
		t.Fatal("masks drawn in different columns must not collide")
	}
	b.r.X = 0.9
	if !Collide(a, b) || !Collide(b, a) {
		t.Fatal("masks drawn in the same column must collide")
	}
}
