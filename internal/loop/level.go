package loop

import (
	"math"

	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/object"
)

// LevelParams is the population plan for one level.
type LevelParams struct {
	Initial         int
	MaxOnScreen     int
	Total           int
	IntervalSeconds float64
	IntervalFrames  int
}

// ParamsFor evaluates the progression formula for level (1-based).
func ParamsFor(cfg config.Config, level int) LevelParams {
	l := cfg.Levels
	n := level - 1
	interval := math.Max(l.MinInterval, l.BaseInterval-float64(n)*l.IntervalReduce)
	return LevelParams{
		Initial:         l.BaseInitial + n*l.IncInitial,
		MaxOnScreen:     l.BaseMaxOnScreen + n*l.IncMaxOnScreen,
		Total:           l.BaseTotal + n*l.IncTotal,
		IntervalSeconds: interval,
		IntervalFrames:  cfg.SpawnIntervalFrames(interval),
	}
}

// startLevel resets the level counters and seeds the opening wave.
func (sim *Sim) startLevel(s *SessionState, level int) {
	s.Level = level
	s.Spawned = 0
	s.Destroyed = 0
	s.SpawnTimer = 0
	s.BossActive = false
	s.BossDefeated = false
	sim.params = ParamsFor(sim.cfg, level)
	for range sim.params.Initial {
		sim.spawnAsteroid(s)
	}
}

// spawnAsteroid queues one scheduled asteroid and counts it.
func (sim *Sim) spawnAsteroid(s *SessionState) {
	sim.world.Spawn(NewEdgeAsteroid(sim.rng, sim.world.Field, sim.cfg.Asteroids))
	s.Spawned++
}

// canSpawn reports whether the population and level budget allow another
// scheduled asteroid.
func (sim *Sim) canSpawn(s *SessionState) bool {
	return sim.world.AsteroidCount() < sim.params.MaxOnScreen && s.Spawned < sim.params.Total
}

// respawnOnDestroy replaces a destroyed asteroid immediately and restarts
// the spawn timer.
func (sim *Sim) respawnOnDestroy(s *SessionState) {
	if sim.canSpawn(s) {
		sim.spawnAsteroid(s)
		s.SpawnTimer = 0
	}
}

// tickSpawner advances the periodic spawn timer.
func (sim *Sim) tickSpawner(s *SessionState) {
	s.SpawnTimer++
	if s.SpawnTimer >= sim.params.IntervalFrames && sim.canSpawn(s) {
		sim.spawnAsteroid(s)
		s.SpawnTimer = 0
	}
}

// waveCleared reports whether the level's asteroids are all destroyed and
// their explosions have finished playing.
func (sim *Sim) waveCleared(s *SessionState) bool {
	return s.Destroyed >= sim.params.Total &&
		sim.world.AsteroidCount() == 0 &&
		sim.world.ExplosionCount() == 0
}

// LevelComplete reports whether the level may advance.
func (sim *Sim) LevelComplete(s *SessionState) bool {
	return sim.waveCleared(s) && !s.BossActive && sim.world.Boss == nil && !sim.bossDue(s)
}

func (sim *Sim) bossDue(s *SessionState) bool {
	b := sim.cfg.Boss
	return b.Enabled && b.Every > 0 && s.Level%b.Every == 0 && !s.BossDefeated
}

// checkLevel advances the level, or brings in the boss when the cleared
// wave is followed by one.
func (sim *Sim) checkLevel(s *SessionState) {
	if !sim.waveCleared(s) || s.BossActive {
		return
	}
	if sim.bossDue(s) {
		sim.spawnBoss(s)
		return
	}
	next := s.Level + 1
	sim.startLevel(s, next)
	sim.emit(Event{Kind: EventLevelUp, Level: next})
	sim.log.Info("level up", "level", next, "score", s.Score)
}

func (sim *Sim) spawnBoss(s *SessionState) {
	x, _ := sim.world.Field.Center()
	boss := object.NewBoss(x, sim.cfg.Boss.Margin, sim.cfg.Boss, sim.rng)
	sim.world.Spawn(boss)
	s.BossActive = true
	sim.emit(Event{Kind: EventBossSpawned, X: boss.X, Y: boss.Y, Level: s.Level})
	sim.log.Info("boss spawned", "level", s.Level)
}
