// Package physics provides geometry, pixel masks and collision detection.
package physics

import "math"

// Collidable is anything with bounds and an opacity mask aligned to them.
type Collidable interface {
	Bounds() Rect
	Mask() *Mask
}

// Collide reports whether a and b overlap. Bounding boxes are compared first,
// then the masks are tested at the offset between the two top-left corners.
func Collide(a, b Collidable) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Intersects(rb) {
		return false
	}
	ma, mb := a.Mask(), b.Mask()
	if ma == nil || mb == nil {
		return false
	}
	// Offsets come from the pixel each corner snaps to when drawn.
	offX := int(math.Floor(rb.X)) - int(math.Floor(ra.X))
	offY := int(math.Floor(rb.Y)) - int(math.Floor(ra.Y))
	return ma.Overlap(mb, offX, offY)
}
