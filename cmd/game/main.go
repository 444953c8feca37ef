package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/loop"
	"github.com/tomz197/meteors/internal/render"
	"golang.org/x/term"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "meteors",
	})
	if err := run(logger); err != nil {
		logger.Error("game failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.LoadGame(config.GetEnv("GAME_CONFIG", "game.yaml"))
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("starting", "backend", cfg.Backend, "area", fmt.Sprintf("%gx%g", cfg.Width, cfg.Height), "fps", cfg.TargetFPS)

	// The terminal belongs to the game while it runs, so session logs go to
	// GAME_LOG or nowhere.
	sessionLog, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{Config: cfg, Logger: sessionLog}
	switch cfg.Backend {
	case config.BackendTcell:
		err = runTcell(ctx, opts)
	default:
		err = runANSI(ctx, opts)
	}
	if err != nil {
		return err
	}
	logger.Info("bye")
	return nil
}

func sessionLogger() (*log.Logger, func(), error) {
	path := config.GetEnv("GAME_LOG", "")
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Level: log.DebugLevel})
	return l, func() { f.Close() }, nil
}

func runANSI(ctx context.Context, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	sink := render.NewTerminal(os.Stdout, nil)
	defer sink.Close()

	keys := input.StartStream(bufio.NewReader(os.Stdin))
	defer keys.Stop()

	opts.Input = keys
	opts.Sink = sink
	return loop.Run(ctx, opts)
}

func runTcell(ctx context.Context, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	opts.Input = input.StartTcell(screen)
	opts.Sink = render.NewCells(screen)
	return loop.Run(ctx, opts)
}
