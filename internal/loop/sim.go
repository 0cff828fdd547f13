package loop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/invariant"
	"github.com/tomz197/logastroids/internal/object"
)

// Sim advances one world through playing ticks. It owns the world and
// performs no I/O; session bookkeeping travels in SessionState.
type Sim struct {
	cfg    config.Config
	rng    *rand.Rand
	world  *WorldState
	drops  DropTable
	params LevelParams
	events []Event
	log    *log.Logger
}

// NewSim creates a simulation over an empty world. A nil logger discards.
func NewSim(cfg config.Config, rng *rand.Rand, logger *log.Logger) *Sim {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sim{
		cfg:    cfg,
		rng:    rng,
		world:  NewWorldState(object.Field{Width: cfg.Field.Width, Height: cfg.Field.Height}),
		drops:  NewDropTable(cfg.PowerUps),
		params: ParamsFor(cfg, 1),
		log:    logger,
	}
}

// World exposes the entity registry.
func (sim *Sim) World() *WorldState { return sim.world }

// Params returns the current level plan.
func (sim *Sim) Params() LevelParams { return sim.params }

// Reset clears the world and starts a fresh session at level 1 with a new
// ship in the center.
func (sim *Sim) Reset() SessionState {
	sim.world.Clear()
	sim.events = sim.events[:0]
	s := SessionState{Mode: ModePlaying}
	x, y := sim.world.Field.Center()
	ship := object.NewShip(x, y, sim.cfg.Ship)
	ship.Rockets = sim.cfg.Weapons.StartingRockets
	sim.world.Spawn(ship)
	sim.startLevel(&s, 1)
	sim.world.FlushSpawned()
	return s
}

// Tick runs one playing frame and returns the updated session state along
// with whether the ship left the world this frame.
//
// Order: input, ship and entity motion, collision passes (bullets, rockets,
// ship, power-ups, boss), spawn flush and compaction, level check, periodic
// spawn timer.
func (sim *Sim) Tick(s SessionState, in Intent) (next SessionState, shipRemoved bool) {
	s.Frame++
	w := sim.world

	if ship := w.Ship; ship != nil {
		if in.Fire {
			if b := ship.Fire(sim.cfg.Weapons); b != nil {
				w.Spawn(b)
				sim.emit(Event{Kind: EventFire, X: b.X, Y: b.Y})
			}
		}
		if in.Rocket {
			if r := ship.FireRocket(sim.cfg.Weapons); r != nil {
				w.Spawn(r)
				sim.emit(Event{Kind: EventRocket, X: r.X, Y: r.Y})
			}
		}
		ship.Control(in)
	}

	w.Advance()
	if w.Boss != nil {
		for _, f := range w.Boss.FireVolley() {
			w.Spawn(f)
		}
	}

	sim.checkProjectileAsteroidCollisions(&s, w.Bullets)
	sim.checkProjectileAsteroidCollisions(&s, w.Rockets)
	sim.checkAsteroidShipCollisions()
	sim.checkPowerUpShipCollisions()
	sim.checkBossCollisions(&s)

	w.FlushSpawned()
	if shipRemoved = w.Compact(); shipRemoved {
		sim.emit(Event{Kind: EventShipDestroyed})
	}

	sim.checkLevel(&s)
	sim.tickSpawner(&s)
	w.FlushSpawned()

	sim.checkInvariants(&s)
	return s, shipRemoved
}

// DrainEvents returns and clears the events recorded since the last call.
func (sim *Sim) DrainEvents() []Event {
	if len(sim.events) == 0 {
		return nil
	}
	out := make([]Event, len(sim.events))
	copy(out, sim.events)
	sim.events = sim.events[:0]
	return out
}

func (sim *Sim) emit(e Event) {
	sim.events = append(sim.events, e)
}

func (sim *Sim) checkInvariants(s *SessionState) {
	if !invariant.Enabled {
		return
	}
	if ship := sim.world.Ship; ship != nil {
		invariant.Check(ship.Health >= 0 && ship.Health <= ship.MaxHealth,
			"ship health %d outside [0,%d]", ship.Health, ship.MaxHealth)
	}
	for _, a := range sim.world.Asteroids {
		invariant.Check(a.Stage >= 0 && a.Stage <= object.MaxStage, "asteroid stage %d out of range", a.Stage)
		invariant.Check(a.HitPoints > 0 && a.HitPoints <= object.AsteroidHitPoints,
			"live asteroid with %d hit points", a.HitPoints)
	}
	invariant.Check(s.Spawned <= sim.params.Total, "spawned %d exceeds level total %d", s.Spawned, sim.params.Total)
}
