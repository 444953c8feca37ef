package loop

import (
	"time"

	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/object"
)

// Step advances the session to wall time now. Once the game is over it does
// nothing.
//
// Order: clamp the tick, advance every object, resolve collisions, spawn
// (only while playing), sweep destroyed objects, recompute the score.
func Step(s *State, in input.Input, now time.Time) {
	if s.GameState == GameStateOver {
		return
	}

	elapsed := max(now.Sub(s.Start), s.Now)
	s.Delta = min(elapsed-s.Now, s.MaxDelta)
	s.Now = elapsed

	ctx := s.updateContext(in)
	s.Registry.ForEach(object.GroupAll, func(obj object.Object) {
		obj.Update(ctx)
	})

	s.resolveCollisions()

	if s.GameState == GameStatePlaying {
		s.Spawner.Update(ctx)
	}

	s.Registry.Sweep()

	if s.GameState == GameStatePlaying {
		s.Score = ScoreAt(s.Now)
	} else {
		s.Score = ScoreAt(s.EndedAt)
	}
}
