package loop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/meteors/internal/asset"
	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/object"
	"github.com/tomz197/meteors/internal/physics"
)

var (
	epoch     = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gameAsset = asset.Generate()
)

const frame = 16 * time.Millisecond

func newTestState(t *testing.T, stars int) *State {
	t.Helper()
	cfg := config.DefaultGame()
	cfg.Stars = stars
	return NewState(cfg, gameAsset, rand.New(rand.NewSource(1)), epoch)
}

// addMeteor places a meteor falling straight down at 400 px/s.
func addMeteor(s *State, center physics.Vector2) *object.Meteor {
	m := object.NewMeteor(gameAsset.Meteor, center, physics.Vec(0, 1), 400, 40, s.Now)
	s.Registry.Add(m, object.GroupMeteors)
	return m
}

func addLaser(s *State, midBottom physics.Vector2) *object.Laser {
	l := object.NewLaser(gameAsset.Laser, midBottom)
	s.Registry.Add(l, object.GroupLasers)
	return l
}

func countExplosions(s *State) (n int, last *object.Explosion) {
	s.Registry.ForEach(object.GroupAll, func(obj object.Object) {
		if e, ok := obj.(*object.Explosion); ok {
			n++
			last = e
		}
	})
	return n, last
}
