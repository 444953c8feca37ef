package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/meteors/internal/asset"
	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/object"
	"github.com/tomz197/meteors/internal/physics"
	"github.com/tomz197/meteors/internal/render"
	"github.com/tomz197/meteors/internal/world"
)

// GameState is the session phase. The only transition is Playing to Over.
type GameState int

const (
	GameStatePlaying GameState = iota // Simulation advancing
	GameStateOver                     // Player was hit, simulation frozen
)

func (g GameState) String() string {
	switch g {
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "over"
	}
	return "unknown"
}

// gridCellSize is the broad-phase cell edge, about one meteor across.
const gridCellSize = 128

// State is everything one session owns. It is mutated only by Step.
type State struct {
	Registry  *world.Registry
	Player    *object.Player
	Spawner   *object.MeteorSpawner
	Screen    object.Screen
	Assets    *asset.Set
	Rand      *rand.Rand
	GameState GameState
	Logger    *log.Logger

	Start    time.Time     // Wall time of session start
	Now      time.Duration // Session time of the latest step
	Delta    time.Duration // Clamped length of the latest step
	MaxDelta time.Duration
	Score    int           // Tenths of a second survived
	EndedAt  time.Duration // Session time of the game over

	// Collision scratch, reused every tick.
	grid    *physics.SpatialGrid
	meteors []*object.Meteor
}

// NewState creates a session with the player centred in the play area and
// cfg.Stars stars scattered across it.
func NewState(cfg config.Game, assets *asset.Set, rng *rand.Rand, start time.Time) *State {
	screen := object.Screen{Width: cfg.Width, Height: cfg.Height}
	s := &State{
		Registry: world.NewRegistry(),
		Spawner:  object.NewMeteorSpawner(assets.Meteor),
		Screen:   screen,
		Assets:   assets,
		Rand:     rng,
		Logger:   log.New(io.Discard),
		Start:    start,
		MaxDelta: cfg.MaxDelta,
		grid:     physics.NewSpatialGrid(screen.Width, screen.Height, gridCellSize),
	}

	// Stars go in first so everything else is drawn over them.
	for i := 0; i < cfg.Stars; i++ {
		s.Registry.Add(object.NewRandomStar(assets.Star, screen, rng))
	}
	s.Player = object.NewPlayer(assets.Player, assets.Laser, screen.Center())
	s.Registry.Add(s.Player)
	return s
}

// Frame returns the render view of the latest completed step.
func (s *State) Frame() render.Frame {
	return render.Frame{
		Objects:  s.Registry.Snapshot(object.GroupAll),
		Score:    FormatScore(s.Score),
		GameOver: s.GameState == GameStateOver,
		Area:     s.Screen,
	}
}

func (s *State) updateContext(in object.Input) object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Now:     s.Now,
		Input:   in,
		Screen:  s.Screen,
		Spawner: s.Registry,
		Rand:    s.Rand,
	}
}
