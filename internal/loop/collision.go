package loop

import (
	"github.com/tomz197/meteors/internal/object"
	"github.com/tomz197/meteors/internal/physics"
)

// resolveCollisions runs the player and laser checks against live meteors.
// Objects destroyed earlier in the tick take no part.
func (s *State) resolveCollisions() {
	s.collectMeteors()
	if len(s.meteors) == 0 {
		return
	}

	s.grid.Clear()
	for i, m := range s.meteors {
		s.grid.InsertRect(m.Bounds(), i)
	}

	if s.playerHit() {
		s.endGame()
		return
	}
	s.checkLaserMeteorCollisions()
}

// collectMeteors fills the meteor scratch slice without reallocating.
func (s *State) collectMeteors() {
	s.meteors = s.meteors[:0]
	s.Registry.ForEach(object.GroupMeteors, func(obj object.Object) {
		if m, ok := obj.(*object.Meteor); ok && !m.IsDestroyed() {
			s.meteors = append(s.meteors, m)
		}
	})
}

// playerHit reports whether any live meteor overlaps the player.
// Meteors are not destroyed by the impact.
func (s *State) playerHit() bool {
	hit := false
	s.grid.QueryRect(s.Player.Bounds(), func(i int) bool {
		hit = physics.Collide(s.Player, s.meteors[i])
		return hit
	})
	return hit
}

// checkLaserMeteorCollisions destroys every live meteor a laser overlaps,
// along with the laser, and spawns one explosion per destroyed meteor at the
// laser's top centre. A meteor is destroyed at most once, so a second laser
// over it passes on.
func (s *State) checkLaserMeteorCollisions() {
	s.Registry.ForEach(object.GroupLasers, func(obj object.Object) {
		l, ok := obj.(*object.Laser)
		if !ok || l.IsDestroyed() {
			return
		}
		at := l.Bounds().MidTop()
		s.grid.QueryRect(l.Bounds(), func(i int) bool {
			m := s.meteors[i]
			if m.IsDestroyed() || !physics.Collide(l, m) {
				return false
			}
			m.MarkDestroyed()
			l.MarkDestroyed()
			s.Registry.Spawn(object.NewExplosion(s.Assets.Explosion, at))
			return false
		})
	})
}

func (s *State) endGame() {
	s.GameState = GameStateOver
	s.EndedAt = s.Now
	s.Logger.Info("game over", "score", FormatScore(ScoreAt(s.EndedAt)), "elapsed", s.EndedAt)
}
