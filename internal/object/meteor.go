package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/sprite"
)

// Meteor spawn ranges and lifetime.
const (
	MeteorMinSpeed         = 400
	MeteorMaxSpeed         = 500
	MeteorMinRotationSpeed = 40 // Degrees per second
	MeteorMaxRotationSpeed = 80
	MeteorMaxDrift         = 0.5 // Horizontal direction component range is [-drift, drift]
	MeteorSpawnMinY        = -200
	MeteorSpawnMaxY        = -100
	MeteorLifetime         = 3000 * time.Millisecond
)

// Meteor is a falling, spinning rock.
type Meteor struct {
	Base
	Direction     physics.Vector2 // Not normalized: diagonal meteors are faster
	Speed         float64
	Rotation      float64 // Degrees
	RotationSpeed float64 // Degrees per second
	CreatedAt     time.Duration
	Lifetime      time.Duration

	original *sprite.Image // Unrotated image, the source of every rotation
}

// NewMeteor creates a meteor centred on center.
func NewMeteor(img *sprite.Image, center, direction physics.Vector2, speed, rotationSpeed float64, createdAt time.Duration) *Meteor {
	w, h := img.Size()
	return &Meteor{
		Base:          newBase(img, physics.RectFromCenter(center, w, h)),
		Direction:     direction,
		Speed:         speed,
		RotationSpeed: rotationSpeed,
		CreatedAt:     createdAt,
		Lifetime:      MeteorLifetime,
		original:      img,
	}
}

// NewRandomMeteor creates a meteor above the visible area with randomized
// position, drift, speed and spin.
func NewRandomMeteor(img *sprite.Image, screen Screen, rng *rand.Rand, now time.Duration) *Meteor {
	x := float64(rng.Intn(int(screen.Width) + 1))
	y := float64(MeteorSpawnMinY + rng.Intn(MeteorSpawnMaxY-MeteorSpawnMinY+1))
	direction := physics.Vec((rng.Float64()*2-1)*MeteorMaxDrift, 1)
	speed := float64(MeteorMinSpeed + rng.Intn(MeteorMaxSpeed-MeteorMinSpeed+1))
	rotationSpeed := float64(MeteorMinRotationSpeed + rng.Intn(MeteorMaxRotationSpeed-MeteorMinRotationSpeed+1))
	return NewMeteor(img, physics.Vec(x, y), direction, speed, rotationSpeed, now)
}

// Age returns how long the meteor has existed at session time now.
func (m *Meteor) Age(now time.Duration) time.Duration {
	return now - m.CreatedAt
}

// Update moves and spins the meteor and expires it after its lifetime.
func (m *Meteor) Update(ctx UpdateContext) {
	dt := ctx.Seconds()

	m.Rect.Move(m.Direction.Scale(m.Speed * dt))

	if m.Age(ctx.Now) >= m.Lifetime {
		m.MarkDestroyed()
	}

	m.Rotation += m.RotationSpeed * dt
	m.Image = m.original.Rotate(m.Rotation)
	m.Rect.Resize(m.Image.Size())
}
