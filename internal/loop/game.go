// Package loop is the simulation core: the entity registry, collision
// passes, asteroid lifecycle, level director, power-up drops and the
// session state machine. It performs no terminal or file I/O itself.
package loop

import (
	"io"
	"math/rand"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/score"
)

// bannerFrames is how long a pickup banner stays up.
const bannerFrames = 120

// Options carries the collaborators a Game needs.
type Options struct {
	// Rng drives every random draw. Nil seeds from the clock.
	Rng *rand.Rand
	// Logger receives session transitions. Nil discards.
	Logger *log.Logger
	// Scores persists the high-score table. Nil keeps scores in memory.
	Scores score.Store
}

// Game is one single-player session: a Sim plus the start, pause, game over
// and name entry flow around it.
type Game struct {
	cfg    config.Config
	sim    *Sim
	state  SessionState
	scores score.Store
	table  score.Table
	log    *log.Logger

	banner       string
	bannerFrames int
	quit         bool
}

// NewGame prepares a session on the title screen. A failing score store is
// logged and replaced by an empty table.
func NewGame(cfg config.Config, opts Options) *Game {
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:    cfg,
		sim:    NewSim(cfg, opts.Rng, opts.Logger),
		state:  SessionState{Mode: ModeStart, Level: 1},
		scores: opts.Scores,
		log:    opts.Logger,
	}
	if g.scores != nil {
		t, err := g.scores.Load()
		if err != nil {
			g.log.Warn("high scores unavailable, starting empty", "err", err)
			t = score.Table{}
		}
		g.table = t
	}
	return g
}

// State returns a copy of the session state.
func (g *Game) State() SessionState {
	s := g.state
	s.NameBuffer = append([]rune(nil), g.state.NameBuffer...)
	return s
}

// Sim exposes the simulation, mainly for tests.
func (g *Game) Sim() *Sim { return g.sim }

// HighScores returns the current table.
func (g *Game) HighScores() score.Table { return g.table }

// Tick consumes one frame of input and returns the frame to present. At most
// one mode transition happens per tick.
func (g *Game) Tick(in Input) Snapshot {
	if in.Quit {
		g.quit = true
	}
	switch g.state.Mode {
	case ModeStart:
		if in.Start || in.Pause {
			g.restart()
		}
	case ModePlaying:
		if in.Pause {
			g.state.Mode = ModePaused
			break
		}
		g.tickPlaying(in.Intent)
	case ModePaused:
		if in.Pause {
			g.state.Mode = ModePlaying
		}
	case ModeGameOver:
		if in.Start || in.Pause {
			g.restart()
		}
	case ModeNameEntry:
		g.tickNameEntry(in)
	}
	return g.snapshot()
}

func (g *Game) restart() {
	g.state = g.sim.Reset()
	g.banner, g.bannerFrames = "", 0
	g.log.Info("session started")
}

func (g *Game) tickPlaying(in Intent) {
	next, shipRemoved := g.sim.Tick(g.state, in)
	g.state = next
	if g.bannerFrames > 0 {
		g.bannerFrames--
	}
	if shipRemoved {
		g.gameOver()
	}
}

// gameOver ends play and asks for a name when the score makes the table.
func (g *Game) gameOver() {
	s := &g.state
	s.Mode = ModeGameOver
	g.sim.emit(Event{Kind: EventGameOver, Score: s.Score})
	g.log.Info("game over", "score", s.Score, "level", s.Level)
	g.reloadScores()
	if g.table.Qualifies(s.Score) {
		s.Mode = ModeNameEntry
		s.NameBuffer = s.NameBuffer[:0]
		g.sim.emit(Event{Kind: EventHighScore, Score: s.Score})
	}
}

// reloadScores picks up entries other sessions saved since the last read.
// On failure the table in memory stays.
func (g *Game) reloadScores() {
	if g.scores == nil {
		return
	}
	t, err := g.scores.Load()
	if err != nil {
		g.log.Warn("reloading high scores", "err", err)
		return
	}
	g.table = t
}

func (g *Game) tickNameEntry(in Input) {
	s := &g.state
	switch {
	case in.Confirm:
		g.submitName(string(s.NameBuffer))
		s.NameBuffer = s.NameBuffer[:0]
		s.Mode = ModeGameOver
		return
	case in.Backspace:
		if n := len(s.NameBuffer); n > 0 {
			s.NameBuffer = s.NameBuffer[:n-1]
		}
	}
	for _, r := range in.Text {
		if len(s.NameBuffer) >= score.MaxNameLen {
			break
		}
		if unicode.IsPrint(r) {
			s.NameBuffer = append(s.NameBuffer, r)
		}
	}
}

// submitName records the score under name. Blank names are dropped.
func (g *Game) submitName(name string) {
	name = score.CleanName(name)
	if name == "" {
		return
	}
	entry := score.Entry{Name: name, Score: g.state.Score}
	if g.scores == nil {
		g.table = g.table.Insert(entry)
		return
	}
	t, err := g.scores.Add(entry)
	if err != nil {
		g.log.Error("saving high score", "err", err)
	}
	if t == nil {
		t = g.table.Insert(entry)
	}
	g.table = t
}

func (g *Game) snapshot() Snapshot {
	events := g.sim.DrainEvents()
	for _, e := range events {
		if e.Kind == EventPowerUp {
			g.banner = e.PowerUp.Description(g.cfg.PowerUps, g.cfg.Field.FPS)
			g.bannerFrames = bannerFrames
		}
	}

	w := g.sim.World()
	snap := Snapshot{
		Mode:       g.state.Mode,
		Frame:      g.state.Frame,
		Field:      w.Field,
		Score:      g.state.Score,
		Level:      g.state.Level,
		Entities:   w.Poses(),
		Events:     events,
		HighScores: g.table,
		NameBuffer: string(g.state.NameBuffer),
		Quit:       g.quit,
	}
	if ship := w.Ship; ship != nil {
		snap.Health = ship.Health
		snap.MaxHealth = ship.MaxHealth
		snap.Rockets = ship.Rockets
	} else {
		snap.MaxHealth = g.cfg.Ship.MaxHealth
	}
	if boss := w.Boss; boss != nil {
		snap.BossHealth = boss.Health
		snap.BossMaxHealth = boss.MaxHealth
	}
	if g.bannerFrames > 0 {
		snap.Banner = g.banner
	}
	return snap
}
