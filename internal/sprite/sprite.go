// Package sprite provides monochrome opacity images used as entity visuals.
package sprite

import (
	"math"
	"sort"

	"github.com/tomz197/meteors/internal/physics"
)

// Image is an opaque visual handle: a w x h grid of opaque/transparent pixels.
// Images are treated as immutable once built; transforms return new images.
type Image struct {
	w, h int
	pix  []bool
	mask *physics.Mask // built lazily
}

// New returns a fully transparent w x h image.
func New(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{w: w, h: h, pix: make([]bool, w*h)}
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.w }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.h }

// Size returns the image size as floats, convenient for rect construction.
func (img *Image) Size() (w, h float64) { return float64(img.w), float64(img.h) }

// Set marks the pixel at (x, y) opaque. Out of range writes are ignored.
func (img *Image) Set(x, y int) {
	if x >= 0 && y >= 0 && x < img.w && y < img.h {
		img.pix[y*img.w+x] = true
		img.mask = nil
	}
}

// Opaque reports whether the pixel at (x, y) is opaque.
func (img *Image) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= img.w || y >= img.h {
		return false
	}
	return img.pix[y*img.w+x]
}

// Mask returns the collision mask of the image.
func (img *Image) Mask() *physics.Mask {
	if img.mask == nil {
		img.mask = physics.NewMask(img.w, img.h, img.Opaque)
	}
	return img.mask
}

// Rotate returns a new image holding img rotated counter-clockwise (as seen
// on screen) by deg degrees. The result is sized to contain the whole rotated
// footprint, so width and height change with the angle. Sampling is
// nearest-neighbour from the source, so callers should always rotate the
// original image rather than an already rotated one.
func (img *Image) Rotate(deg float64) *Image {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)

	fw, fh := float64(img.w), float64(img.h)
	nw := int(math.Ceil(math.Abs(fw*cos) + math.Abs(fh*sin) - 1e-9))
	nh := int(math.Ceil(math.Abs(fw*sin) + math.Abs(fh*cos) - 1e-9))
	out := New(nw, nh)

	scx, scy := fw/2, fh/2
	dcx, dcy := float64(nw)/2, float64(nh)/2
	for y := 0; y < nh; y++ {
		dy := float64(y) + 0.5 - dcy
		for x := 0; x < nw; x++ {
			dx := float64(x) + 0.5 - dcx
			// Inverse of the on-screen counter-clockwise rotation (y points down).
			sx := dx*cos - dy*sin + scx
			sy := dx*sin + dy*cos + scy
			if img.Opaque(int(math.Floor(sx)), int(math.Floor(sy))) {
				out.pix[y*nw+x] = true
			}
		}
	}
	return out
}

// Polygon returns a w x h image with the polygon described by points filled.
// Uses a scanline fill sampling at pixel centres.
func Polygon(w, h int, points []physics.Vector2) *Image {
	img := New(w, h)
	if len(points) < 3 {
		return img
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), h-1)

	var intersections []float64
	n := len(points)
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections = intersections[:0]

		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				img.Set(x, y)
			}
		}
	}
	return img
}

// Disc returns a filled circle of the given radius centred in a square image.
func Disc(radius float64) *Image {
	return Ring(radius, 0)
}

// Ring returns a circle annulus between inner and outer radius, centred in a
// square image just large enough to hold it.
func Ring(outer, inner float64) *Image {
	size := int(math.Ceil(outer * 2))
	img := New(size, size)
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			if d <= outer && d >= inner {
				img.pix[y*size+x] = true
			}
		}
	}
	return img
}
