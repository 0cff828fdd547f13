// Package client drives one game session at a fixed tick rate: read input,
// advance the game, play sounds, draw.
package client

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/logastroids/internal/input"
	"github.com/tomz197/logastroids/internal/loop"
)

// ErrIdle is returned by Run when the player stopped pressing keys for too long.
var ErrIdle = errors.New("client idle")

// Renderer presents snapshots.
type Renderer interface {
	Begin() error
	Draw(snap loop.Snapshot) error
	End() error
}

// Sound plays the cues for a frame of events.
type Sound interface {
	Play(events []loop.Event)
}

// Options configures a Client.
type Options struct {
	// FPS is the tick rate. Zero means 60.
	FPS int
	// IdleTimeout disconnects an inactive player. Zero disables it.
	IdleTimeout time.Duration
	Sound       Sound
	Logger      *log.Logger
}

// Client couples a game with a terminal.
type Client struct {
	game      *loop.Game
	stream    *input.Stream
	render    Renderer
	sound     Sound
	log       *log.Logger
	frameTime time.Duration
	idle      time.Duration
	lastInput time.Time
}

// New creates a client.
func New(game *loop.Game, stream *input.Stream, r Renderer, opts Options) *Client {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Client{
		game:      game,
		stream:    stream,
		render:    r,
		sound:     opts.Sound,
		log:       opts.Logger,
		frameTime: time.Second / time.Duration(opts.FPS),
		idle:      opts.IdleTimeout,
	}
}

// Run ticks until the player quits, the context ends, drawing fails or the
// idle timeout passes. Quitting and cancellation return nil.
func (c *Client) Run(ctx context.Context) error {
	if err := c.render.Begin(); err != nil {
		return err
	}
	defer func() {
		if err := c.render.End(); err != nil {
			c.log.Debug("restoring terminal", "err", err)
		}
	}()

	c.lastInput = time.Now()
	for {
		frameStart := time.Now()

		snap, err := c.Step()
		if err != nil {
			return err
		}
		if snap.Quit {
			c.log.Info("player quit", "score", snap.Score, "level", snap.Level)
			return nil
		}
		if c.idle > 0 && frameStart.Sub(c.lastInput) > c.idle {
			c.log.Info("disconnecting idle player", "idle", c.idle)
			return ErrIdle
		}

		wait := c.frameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// Step runs exactly one frame.
func (c *Client) Step() (loop.Snapshot, error) {
	textMode := c.game.State().Mode == loop.ModeNameEntry
	in := input.ReadInput(c.stream, textMode)
	if active(in) {
		c.lastInput = time.Now()
	}
	snap := c.game.Tick(in)
	if c.sound != nil {
		c.sound.Play(snap.Events)
	}
	return snap, c.render.Draw(snap)
}

func active(in loop.Input) bool {
	return in.Left || in.Right || in.Thrust || in.Fire || in.Rocket ||
		in.Start || in.Pause || in.Confirm || in.Backspace || in.Quit || len(in.Text) > 0
}
