package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultGameIsValid(t *testing.T) {
	cfg := DefaultGame()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.FrameTime() != time.Second/60 {
		t.Fatalf("frame time = %v, want 1/60s", cfg.FrameTime())
	}
}

func TestLoadGameMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadGame(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != DefaultGame() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadGameMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := "width: 800\nheight: 600\nmax_delta: 50ms\nbackend: tcell\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Fatalf("area = %gx%g, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.MaxDelta != 50*time.Millisecond {
		t.Fatalf("max delta = %v, want 50ms", cfg.MaxDelta)
	}
	if cfg.Backend != BackendTcell {
		t.Fatalf("backend = %q, want tcell", cfg.Backend)
	}
	if cfg.Stars != DefaultGame().Stars {
		t.Fatalf("unset field changed: stars = %d", cfg.Stars)
	}
}

func TestLoadGameRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGame(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GAME_WIDTH", "640")
	t.Setenv("GAME_SEED", "99")
	t.Setenv("GAME_BACKEND", BackendTcell)

	cfg := DefaultGame()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Width != 640 || cfg.Seed != 99 || cfg.Backend != BackendTcell {
		t.Fatalf("env not applied: %+v", cfg)
	}

	t.Setenv("GAME_STARS", "many")
	if err := cfg.ApplyEnv(); err == nil {
		t.Fatal("expected error for non-numeric GAME_STARS")
	}
}

func TestValidate(t *testing.T) {
	cases := []func(*Game){
		func(g *Game) { g.Width = 0 },
		func(g *Game) { g.Stars = -1 },
		func(g *Game) { g.TargetFPS = 0 },
		func(g *Game) { g.MaxDelta = 0 },
		func(g *Game) { g.Backend = "opengl" },
	}
	for i, mutate := range cases {
		cfg := DefaultGame()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("METEORS_DOTENV_TEST=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("METEORS_DOTENV_TEST", "")
	os.Unsetenv("METEORS_DOTENV_TEST")

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := GetEnv("METEORS_DOTENV_TEST", "fallback"); got != "loaded" {
		t.Fatalf("GetEnv = %q, want loaded", got)
	}
}
