package loop

import (
	"github.com/tomz197/logastroids/internal/object"
)

// checkProjectileAsteroidCollisions lets each live projectile hit at most
// one asteroid; the projectile is consumed and deals its damage.
func (sim *Sim) checkProjectileAsteroidCollisions(s *SessionState, projectiles []*object.Projectile) {
	for _, p := range projectiles {
		if !p.Alive() {
			continue
		}
		for _, a := range sim.world.Asteroids {
			if !a.Alive() {
				continue
			}
			if p.Overlaps(&a.Body) {
				p.Kill()
				sim.hitAsteroid(s, a, p.Damage)
				break
			}
		}
	}
}

// checkAsteroidShipCollisions damages and bounces the ship off every
// overlapping asteroid. Grace windows absorb repeat hits.
func (sim *Sim) checkAsteroidShipCollisions() {
	ship := sim.world.Ship
	if ship == nil || ship.Exploding || ship.SpawnShield > 0 {
		return
	}
	for _, a := range sim.world.Asteroids {
		if !a.Alive() || !ship.Overlaps(&a.Body) {
			continue
		}
		sim.damageShip(&a.Body)
	}
}

// checkPowerUpShipCollisions consumes overlapping power-ups.
func (sim *Sim) checkPowerUpShipCollisions() {
	ship := sim.world.Ship
	if ship == nil || ship.Exploding {
		return
	}
	for _, u := range sim.world.PowerUps {
		if !u.Alive() || !ship.Overlaps(&u.Body) {
			continue
		}
		u.Kill()
		ship.Apply(u.Type, sim.cfg.PowerUps)
		sim.emit(Event{Kind: EventPowerUp, X: u.X, Y: u.Y, PowerUp: u.Type})
	}
}

// checkBossCollisions runs the boss passes: player shots against the boss,
// then boss body and fireballs against the ship.
func (sim *Sim) checkBossCollisions(s *SessionState) {
	boss := sim.world.Boss
	if boss != nil && boss.Alive() {
		sim.checkProjectileBossCollisions(s, boss, sim.world.Bullets)
		sim.checkProjectileBossCollisions(s, boss, sim.world.Rockets)
	}

	ship := sim.world.Ship
	if ship == nil || ship.Exploding {
		return
	}
	if boss != nil && boss.Alive() && ship.Overlaps(&boss.Body) {
		sim.damageShip(nil)
	}
	for _, f := range sim.world.Fireballs {
		if !f.Alive() || !ship.Overlaps(&f.Body) {
			continue
		}
		f.Kill()
		sim.damageShip(nil)
	}
}

func (sim *Sim) checkProjectileBossCollisions(s *SessionState, boss *object.Boss, projectiles []*object.Projectile) {
	for _, p := range projectiles {
		if !boss.Alive() {
			return
		}
		if !p.Alive() || !p.Overlaps(&boss.Body) {
			continue
		}
		p.Kill()
		sim.hitBoss(s, boss, p.Damage)
	}
}
