package object

import (
	"sync"

	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/sprite"
)

// LaserVelocityY is the vertical laser speed in pixels per second (upwards).
const LaserVelocityY = -400.0

// laserPool is a sync.Pool for reusing Laser objects to reduce allocations.
var laserPool = sync.Pool{
	New: func() any {
		return &Laser{}
	},
}

// Laser is a shot fired straight up by the player.
type Laser struct {
	Base
	VelocityY float64
}

// NewLaser takes a laser from the pool with its bottom edge centred on midBottom.
func NewLaser(img *sprite.Image, midBottom physics.Vector2) *Laser {
	w, h := img.Size()
	l := laserPool.Get().(*Laser)
	*l = Laser{
		Base:      newBase(img, physics.RectFromMidBottom(midBottom, w, h)),
		VelocityY: LaserVelocityY,
	}
	return l
}

// Release returns the laser to the pool for reuse.
// Called by the registry once the laser has been swept.
func (l *Laser) Release() {
	laserPool.Put(l)
}

// Update moves the laser and marks it once it has left the top of the area.
func (l *Laser) Update(ctx UpdateContext) {
	l.Rect.Y += l.VelocityY * ctx.Seconds()
	if l.Rect.Bottom() < 0 {
		l.MarkDestroyed()
	}
}
