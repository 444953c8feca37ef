package object

import (
	"math/rand"

	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/sprite"
)

// Star is a static background decoration.
type Star struct {
	Base
}

// NewStar creates a star centred on center.
func NewStar(img *sprite.Image, center physics.Vector2) *Star {
	w, h := img.Size()
	return &Star{Base: newBase(img, physics.RectFromCenter(center, w, h))}
}

// NewRandomStar creates a star at a random position inside the area.
func NewRandomStar(img *sprite.Image, screen Screen, rng *rand.Rand) *Star {
	x := float64(rng.Intn(int(screen.Width) + 1))
	y := float64(rng.Intn(int(screen.Height) + 1))
	return NewStar(img, physics.Vec(x, y))
}

// Update is a no-op; stars never move.
func (s *Star) Update(UpdateContext) {}
