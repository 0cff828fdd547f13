package loop

import (
	"github.com/tomz197/logastroids/internal/object"
)

// hitAsteroid scores a hit and applies damage, destroying the asteroid when
// its hit points run out.
func (sim *Sim) hitAsteroid(s *SessionState, a *object.Asteroid, damage int) {
	s.Score += sim.cfg.Asteroids.ScorePerHit
	if !a.TakeDamage(damage) {
		sim.emit(Event{Kind: EventAsteroidHit, X: a.X, Y: a.Y})
		return
	}
	sim.destroyAsteroid(s, a)
}

// destroyAsteroid applies every destruction effect: score, explosion, drop
// roll, split and the immediate replacement.
func (sim *Sim) destroyAsteroid(s *SessionState, a *object.Asteroid) {
	ac := sim.cfg.Asteroids
	s.Score += ac.ScorePerDestroy
	s.Destroyed++
	boom := object.NewExplosion(&a.Body, a.RotationSpeed, a.Scale, ac.ExplosionStages, ac.ExplosionHold)
	boom.Entering = a.Entering
	sim.world.Spawn(boom)
	sim.emit(Event{Kind: EventAsteroidDestroyed, X: a.X, Y: a.Y})
	sim.rollDrop(a.X, a.Y)

	if a.IsParent() && s.Level >= ac.SplitLevel {
		for _, c := range Split(sim.rng, a, ac) {
			sim.world.Spawn(c)
		}
	}
	sim.respawnOnDestroy(s)
}

func (sim *Sim) rollDrop(x, y float64) {
	if t, ok := sim.drops.Roll(sim.rng); ok {
		sim.world.Spawn(object.NewPowerUp(t, x, y, sim.cfg.PowerUps))
	}
}

func (sim *Sim) hitBoss(s *SessionState, boss *object.Boss, damage int) {
	s.Score += sim.cfg.Asteroids.ScorePerHit
	if !boss.TakeDamage(damage) {
		sim.emit(Event{Kind: EventBossHit, X: boss.X, Y: boss.Y})
		return
	}
	s.Score += sim.cfg.Boss.Score
	s.BossActive = false
	s.BossDefeated = true
	ac := sim.cfg.Asteroids
	sim.world.Spawn(object.NewExplosion(&boss.Body, sim.cfg.Boss.Spin, 1, ac.ExplosionStages, ac.ExplosionHold))
	sim.rollDrop(boss.X, boss.Y)
	sim.emit(Event{Kind: EventBossDefeated, X: boss.X, Y: boss.Y, Level: s.Level})
	sim.log.Info("boss defeated", "level", s.Level, "score", s.Score)
}

// damageShip routes a collision to the ship and reports the outcome.
func (sim *Sim) damageShip(from *object.Body) {
	ship := sim.world.Ship
	switch ship.TakeDamage(from) {
	case object.HitShielded:
		sim.emit(Event{Kind: EventShieldHit, X: ship.X, Y: ship.Y})
	case object.HitLethal:
		sim.emit(Event{Kind: EventShipExploding, X: ship.X, Y: ship.Y})
	}
}
