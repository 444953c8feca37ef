package object

import (
	"time"

	"github.com/tomz197/meteors/internal/sprite"
)

// MeteorSpawnInterval is the fixed period between meteor spawns.
const MeteorSpawnInterval = 500 * time.Millisecond

// MeteorSpawner creates meteors on a fixed period measured in session time,
// independent of the frame rate.
//
// At a healthy frame rate the schedule advances by exactly one interval per
// spawn, so it does not drift. A tick spanning several intervals still spawns
// a single meteor, and the schedule restarts from that tick; missed epochs
// are dropped rather than replayed as a burst.
type MeteorSpawner struct {
	Interval time.Duration
	image    *sprite.Image
	last     time.Duration // Session time of the current epoch start
}

// NewMeteorSpawner creates a spawner whose first meteor appears one interval
// after session start.
func NewMeteorSpawner(img *sprite.Image) *MeteorSpawner {
	return &MeteorSpawner{
		Interval: MeteorSpawnInterval,
		image:    img,
	}
}

// Update spawns at most one meteor. Returns true if one was spawned.
func (s *MeteorSpawner) Update(ctx UpdateContext) bool {
	if s.Interval <= 0 || ctx.Now-s.last < s.Interval {
		return false
	}

	s.last += s.Interval
	if ctx.Now-s.last >= s.Interval {
		s.last = ctx.Now
	}

	if ctx.Spawner != nil && ctx.Rand != nil {
		ctx.Spawner.Spawn(NewRandomMeteor(s.image, ctx.Screen, ctx.Rand, ctx.Now), GroupMeteors)
	}
	return true
}
