package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/logastroids/internal/audio"
	"github.com/tomz197/logastroids/internal/client"
	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/input"
	"github.com/tomz197/logastroids/internal/loop"
	"github.com/tomz197/logastroids/internal/object"
	"github.com/tomz197/logastroids/internal/render"
	"github.com/tomz197/logastroids/internal/score"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default tuning")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "logastroids: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closer, err := cfg.Log.NewLogger(io.Discard, "game")
	if err != nil {
		return err
	}
	defer closer.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := loop.NewGame(cfg, loop.Options{
		Logger: logger,
		Scores: score.NewFileStore(cfg.Scores.Path),
	})
	field := object.Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	opts := client.Options{FPS: cfg.Field.FPS, Logger: logger}
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	c := client.New(game, input.StartStream(os.Stdin), render.New(os.Stdout, nil, field), opts)
	if err := c.Run(ctx); err != nil && !errors.Is(err, client.ErrIdle) {
		logger.Error("game stopped", "err", err)
		return err
	}
	logger.Info("bye", "score", game.State().Score)
	return nil
}

