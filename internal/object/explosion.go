package object

import (
	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/sprite"
)

// ExplosionFrameRate is how many animation frames play per second.
const ExplosionFrameRate = 20.0

// Explosion plays a frame sequence once, then removes itself.
type Explosion struct {
	Base
	Frames     []*sprite.Image
	FrameIndex float64 // Fractional frame position
}

// NewExplosion creates an explosion centred on center. frames must not be empty.
func NewExplosion(frames []*sprite.Image, center physics.Vector2) *Explosion {
	w, h := frames[0].Size()
	return &Explosion{
		Base:   newBase(frames[0], physics.RectFromCenter(center, w, h)),
		Frames: frames,
	}
}

// Update advances the animation.
func (e *Explosion) Update(ctx UpdateContext) {
	e.FrameIndex += ExplosionFrameRate * ctx.Seconds()
	frame := int(e.FrameIndex)
	if frame >= len(e.Frames) {
		e.MarkDestroyed()
		return
	}
	if img := e.Frames[frame]; img != e.Image {
		e.Image = img
		e.Rect.Resize(img.Size())
	}
}
