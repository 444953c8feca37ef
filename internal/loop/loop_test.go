package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomz197/meteors/internal/clock"
	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/render"
)

// scripted advances the clock by one frame per poll and quits on poll quitAt.
type scripted struct {
	clk    *clock.Manual
	polls  int
	quitAt int
}

func (s *scripted) Poll() input.Input {
	s.polls++
	s.clk.Advance(frame)
	if s.quitAt > 0 && s.polls >= s.quitAt {
		return input.Input{Quit: true}
	}
	return input.Input{}
}

type recordingSink struct {
	frames  []render.Frame
	onFrame func(n int)
	err     error
}

func (r *recordingSink) Render(f render.Frame) error {
	r.frames = append(r.frames, f)
	if r.onFrame != nil {
		r.onFrame(len(r.frames))
	}
	return r.err
}

func testOptions(src input.Source, sink render.Sink, clk clock.Clock) Options {
	cfg := config.DefaultGame()
	cfg.Seed = 7
	cfg.TargetFPS = 1000
	return Options{Input: src, Sink: sink, Clock: clk, Config: cfg, Assets: gameAsset}
}

func TestRunQuitsOnInput(t *testing.T) {
	clk := clock.NewManual(epoch)
	src := &scripted{clk: clk, quitAt: 5}
	sink := &recordingSink{}

	if err := Run(context.Background(), testOptions(src, sink, clk)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.frames) != 4 {
		t.Fatalf("frames = %d, want 4 (quit frame is not rendered)", len(sink.frames))
	}
	if sink.frames[0].Area.Width != 1280 || sink.frames[0].GameOver {
		t.Fatalf("unexpected first frame: %+v", sink.frames[0])
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	clk := clock.NewManual(epoch)
	src := &scripted{clk: clk}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{onFrame: func(n int) {
		if n == 3 {
			cancel()
		}
	}}

	done := make(chan error, 1)
	go func() { done <- Run(ctx, testOptions(src, sink, clk)) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if len(sink.frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(sink.frames))
	}
}

func TestRunReturnsRenderError(t *testing.T) {
	clk := clock.NewManual(epoch)
	boom := errors.New("broken pipe")
	sink := &recordingSink{err: boom}

	err := Run(context.Background(), testOptions(&scripted{clk: clk}, sink, clk))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Fatal("expected error without input and sink")
	}

	clk := clock.NewManual(epoch)
	opts := testOptions(&scripted{clk: clk}, &recordingSink{}, clk)
	opts.Config.Width = 0
	if err := Run(context.Background(), opts); err == nil {
		t.Fatal("expected config validation error")
	}
}
