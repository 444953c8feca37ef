package object

import (
	"time"

	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/sprite"
)

// Player tuning.
const (
	PlayerSpeed   = 300.0                  // Pixels per second
	LaserCooldown = 400 * time.Millisecond // Minimum time between shots
)

// Player is the player-controlled ship.
type Player struct {
	Base
	Direction physics.Vector2 // Unit vector (or zero) from the directional keys
	Speed     float64

	// Shooting
	CanShoot bool
	LastShot time.Duration // Session time of the last shot
	Cooldown time.Duration

	laserImage *sprite.Image
}

// NewPlayer creates the ship centred on center. Lasers it fires use laserImage.
func NewPlayer(img, laserImage *sprite.Image, center physics.Vector2) *Player {
	w, h := img.Size()
	return &Player{
		Base:       newBase(img, physics.RectFromCenter(center, w, h)),
		Speed:      PlayerSpeed,
		CanShoot:   true,
		Cooldown:   LaserCooldown,
		laserImage: laserImage,
	}
}

// Update handles movement, clamping to the play area and shooting.
func (p *Player) Update(ctx UpdateContext) {
	p.Direction = inputDirection(ctx.Input)
	p.Rect.Move(p.Direction.Scale(p.Speed * ctx.Seconds()))
	p.Rect = ctx.Screen.Clamp(p.Rect)

	// Cooldown runs every tick, before the fire check, so a press landing
	// exactly on the cooldown boundary is accepted.
	p.refreshCooldown(ctx.Now)

	if ctx.Input.FirePressed && p.CanShoot && ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewLaser(p.laserImage, p.Rect.MidTop()), GroupLasers)
		p.CanShoot = false
		p.LastShot = ctx.Now
	}
}

// refreshCooldown re-arms the gun once the cooldown has elapsed.
func (p *Player) refreshCooldown(now time.Duration) {
	if !p.CanShoot && now-p.LastShot >= p.Cooldown {
		p.CanShoot = true
	}
}

// inputDirection builds the movement direction from the four directional keys.
func inputDirection(in Input) physics.Vector2 {
	var d physics.Vector2
	if in.Right {
		d.X++
	}
	if in.Left {
		d.X--
	}
	if in.Down {
		d.Y++
	}
	if in.Up {
		d.Y--
	}
	return d.Normalize()
}
