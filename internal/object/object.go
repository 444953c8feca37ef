// Package object defines the game entities and their per-tick behaviour.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/sprite"
)

// Group names a registry collection an object can belong to.
// Every object is in GroupAll; the others are opt-in.
type Group int

const (
	GroupAll Group = iota
	GroupMeteors
	GroupLasers

	NumGroups
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object, groups ...Group)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration // Tick length, already clamped by the loop
	Now     time.Duration // Session time (since session start)
	Input   Input
	Screen  Screen
	Spawner Spawner
	Rand    *rand.Rand
}

// Seconds returns Delta in seconds.
func (ctx UpdateContext) Seconds() float64 {
	return ctx.Delta.Seconds()
}

// Screen is the play area, with the origin at the top-left corner.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the play area.
func (s Screen) Center() physics.Vector2 {
	return physics.Vec(s.Width/2, s.Height/2)
}

// Clamp moves r the minimum distance needed to lie fully inside the area.
// Each edge is handled independently. A rect larger than the area is pinned
// to the left/top edge.
func (s Screen) Clamp(r physics.Rect) physics.Rect {
	if r.Right() > s.Width {
		r.X = s.Width - r.W
	}
	if r.Bottom() > s.Height {
		r.Y = s.Height - r.H
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// Object is an entity living in the registry.
type Object interface {
	// Update advances the object by one tick.
	Update(ctx UpdateContext)

	// Bounds is the object's current rectangle.
	Bounds() physics.Rect

	// Visual is the image the renderer draws at Bounds.
	Visual() *sprite.Image

	Destructible
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal by the next sweep.
	// Marking an already marked object is a no-op.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Sweepable is implemented by objects that record their eviction from the
// registry, so late use can be detected.
type Sweepable interface {
	MarkSwept()
	Swept() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Base carries the state shared by every entity. Embed it by value.
type Base struct {
	Rect  physics.Rect
	Image *sprite.Image

	destroyed bool
	swept     bool
}

func newBase(img *sprite.Image, r physics.Rect) Base {
	return Base{Rect: r, Image: img}
}

// Bounds returns the entity rectangle.
func (b *Base) Bounds() physics.Rect { return b.Rect }

// Visual returns the current image.
func (b *Base) Visual() *sprite.Image { return b.Image }

// Mask returns the collision mask of the current image.
func (b *Base) Mask() *physics.Mask {
	if b.Image == nil {
		return nil
	}
	return b.Image.Mask()
}

// MarkDestroyed implements Destructible.
func (b *Base) MarkDestroyed() { b.destroyed = true }

// IsDestroyed implements Destructible.
func (b *Base) IsDestroyed() bool { return b.destroyed }

// MarkSwept implements Sweepable.
func (b *Base) MarkSwept() { b.swept = true }

// Swept implements Sweepable.
func (b *Base) Swept() bool { return b.swept }
