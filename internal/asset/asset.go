// Package asset supplies the visual handles used by the game entities.
package asset

import (
	"math"
	"math/rand"

	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/sprite"
)

// ExplosionFrames is the length of the explosion animation.
const ExplosionFrames = 21

// Set holds every image the simulation needs.
type Set struct {
	Player    *sprite.Image
	Star      *sprite.Image
	Laser     *sprite.Image
	Meteor    *sprite.Image
	Explosion []*sprite.Image
}

// shapeSeed fixes the meteor outline so every session draws the same rock.
const shapeSeed = 197

// Generate builds the image set procedurally. The result is deterministic.
func Generate() *Set {
	frames := make([]*sprite.Image, ExplosionFrames)
	for i := range frames {
		frames[i] = explosionFrame(i)
	}
	return &Set{
		Player:    ship(),
		Star:      sprite.Disc(3),
		Laser:     laser(),
		Meteor:    meteor(rand.New(rand.NewSource(shapeSeed))),
		Explosion: frames,
	}
}

// ship is an arrowhead pointing up with a notched tail.
func ship() *sprite.Image {
	return sprite.Polygon(56, 64, []physics.Vector2{
		{X: 28, Y: 0},
		{X: 56, Y: 64},
		{X: 28, Y: 48},
		{X: 0, Y: 64},
	})
}

func laser() *sprite.Image {
	return sprite.Polygon(8, 48, []physics.Vector2{
		{X: 4, Y: 0},
		{X: 8, Y: 6},
		{X: 8, Y: 48},
		{X: 0, Y: 48},
		{X: 0, Y: 6},
	})
}

// meteor is an irregular polygon (10-13 vertices, radius varied by ±25%).
func meteor(rng *rand.Rand) *sprite.Image {
	const radius = 48.0
	numVerts := 10 + rng.Intn(4)
	points := make([]physics.Vector2, numVerts)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / float64(numVerts)
		dist := radius * (0.75 + rng.Float64()*0.25)
		points[i] = physics.Vector2{
			X: radius + math.Cos(angle)*dist,
			Y: radius + math.Sin(angle)*dist,
		}
	}
	return sprite.Polygon(int(radius*2), int(radius*2), points)
}

// explosionFrame is an expanding ring that thins out as it grows.
func explosionFrame(i int) *sprite.Image {
	t := float64(i) / float64(ExplosionFrames-1)
	outer := 12 + t*52
	thickness := math.Max(2, 14*(1-t))
	return sprite.Ring(outer, outer-thickness)
}
