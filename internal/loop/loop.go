// Package loop runs a game session: the fixed-order simulation step and the
// frame-paced loop that feeds it input and hands completed frames to a sink.
package loop

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/meteors/internal/asset"
	"github.com/tomz197/meteors/internal/clock"
	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/render"
)

// Options wires a session to its collaborators. Input and Sink are required.
type Options struct {
	Input  input.Source
	Sink   render.Sink
	Clock  clock.Clock // Defaults to clock.System
	Config config.Game
	Assets *asset.Set  // Defaults to asset.Generate()
	Rand   *rand.Rand  // Defaults to a source seeded from Config.Seed
	Logger *log.Logger // Defaults to a discarding logger
}

func (o *Options) setDefaults() {
	if o.Clock == nil {
		o.Clock = clock.System{}
	}
	if o.Assets == nil {
		o.Assets = asset.Generate()
	}
	if o.Rand == nil {
		seed := o.Config.Seed
		if seed == 0 {
			seed = o.Clock.Now().UnixNano()
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Run plays one session until the player quits or ctx is cancelled. Each
// frame polls input, steps the simulation, renders the result and sleeps out
// the rest of the frame. Game over does not end the loop; the last frame
// stays on screen until quit.
func Run(ctx context.Context, opts Options) error {
	if opts.Input == nil || opts.Sink == nil {
		return fmt.Errorf("loop: input and sink are required")
	}
	if err := opts.Config.Validate(); err != nil {
		return fmt.Errorf("loop: %w", err)
	}
	opts.setDefaults()

	s := NewState(opts.Config, opts.Assets, opts.Rand, opts.Clock.Now())
	s.Logger = opts.Logger
	s.Logger.Info("session started",
		"area", fmt.Sprintf("%gx%g", s.Screen.Width, s.Screen.Height),
		"stars", opts.Config.Stars)

	frameTime := opts.Config.FrameTime()
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		if ctx.Err() != nil {
			s.Logger.Info("session shut down", "state", s.GameState, "score", FormatScore(s.Score))
			return nil
		}

		frameStart := opts.Clock.Now()
		in := opts.Input.Poll()
		if in.Quit {
			s.Logger.Info("player quit", "state", s.GameState, "score", FormatScore(s.Score))
			return nil
		}

		Step(s, in, frameStart)

		if err := opts.Sink.Render(s.Frame()); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		elapsed := opts.Clock.Now().Sub(frameStart)
		timer.Reset(max(frameTime-elapsed, 0))
	}
}
