package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Terminal backends.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Game holds the tunable session parameters. Zero values in a config file
// keep the defaults.
type Game struct {
	Width     float64       `yaml:"width"`      // Play area width in pixels
	Height    float64       `yaml:"height"`     // Play area height in pixels
	Stars     int           `yaml:"stars"`      // Background stars per session
	TargetFPS int           `yaml:"target_fps"` // Frame pacing target
	MaxDelta  time.Duration `yaml:"max_delta"`  // Upper bound on a single tick
	Seed      int64         `yaml:"seed"`       // RNG seed, 0 picks one from the clock
	Backend   string        `yaml:"backend"`    // ansi or tcell (local play only)
}

// DefaultGame returns the stock configuration.
func DefaultGame() Game {
	return Game{
		Width:     1280,
		Height:    720,
		Stars:     20,
		TargetFPS: 60,
		MaxDelta:  100 * time.Millisecond,
		Backend:   BackendANSI,
	}
}

// FrameTime returns the target duration of one frame.
func (g Game) FrameTime() time.Duration {
	return time.Second / time.Duration(g.TargetFPS)
}

// LoadGame reads a YAML config file over the defaults. A missing file is not
// an error; the defaults are returned as is.
func LoadGame(path string) (Game, error) {
	cfg := DefaultGame()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Game
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

// merge copies every non-zero field of o into g.
func (g *Game) merge(o Game) {
	if o.Width != 0 {
		g.Width = o.Width
	}
	if o.Height != 0 {
		g.Height = o.Height
	}
	if o.Stars != 0 {
		g.Stars = o.Stars
	}
	if o.TargetFPS != 0 {
		g.TargetFPS = o.TargetFPS
	}
	if o.MaxDelta != 0 {
		g.MaxDelta = o.MaxDelta
	}
	if o.Seed != 0 {
		g.Seed = o.Seed
	}
	if o.Backend != "" {
		g.Backend = o.Backend
	}
}

// ApplyEnv overrides fields from GAME_* environment variables.
func (g *Game) ApplyEnv() error {
	var err error
	if g.Width, err = envFloat("GAME_WIDTH", g.Width); err != nil {
		return err
	}
	if g.Height, err = envFloat("GAME_HEIGHT", g.Height); err != nil {
		return err
	}
	if g.Stars, err = envInt("GAME_STARS", g.Stars); err != nil {
		return err
	}
	if g.TargetFPS, err = envInt("GAME_FPS", g.TargetFPS); err != nil {
		return err
	}
	seed, err := envInt("GAME_SEED", int(g.Seed))
	if err != nil {
		return err
	}
	g.Seed = int64(seed)
	g.Backend = GetEnv("GAME_BACKEND", g.Backend)
	return nil
}

// Validate reports the first invalid field.
func (g Game) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("play area must be positive, got %gx%g", g.Width, g.Height)
	case g.Stars < 0:
		return fmt.Errorf("stars must not be negative, got %d", g.Stars)
	case g.TargetFPS <= 0:
		return fmt.Errorf("target fps must be positive, got %d", g.TargetFPS)
	case g.MaxDelta <= 0:
		return fmt.Errorf("max delta must be positive, got %v", g.MaxDelta)
	case g.Backend != BackendANSI && g.Backend != BackendTcell:
		return fmt.Errorf("unknown backend %q", g.Backend)
	}
	return nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
