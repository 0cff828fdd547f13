package object

import (
	"math"

	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/invariant"
	"github.com/tomz197/logastroids/internal/physics"
)

// Intent is the per-frame control set handed to the ship.
type Intent struct {
	Left, Right bool
	Thrust      bool
	Fire        bool
	Rocket      bool
}

// ShieldFrames is the number of frames in the shield-hit animation.
const ShieldFrames = 3

// shieldFrameHold is how long each shield frame is shown.
const shieldFrameHold = 10

// HitResult is the outcome of Ship.TakeDamage.
type HitResult int

const (
	HitIgnored  HitResult = iota // a grace window or the explosion absorbed it
	HitShielded                  // health dropped, ship survives
	HitLethal                    // health reached zero, explosion started
)

// Ship is the player-controlled body with inertial movement.
type Ship struct {
	Body

	Health    int
	MaxHealth int
	Rockets   int

	SpawnShield    int // frames of full invulnerability after spawn
	HitGrace       int // frames of invulnerability after absorbing a hit
	Invulnerable   int // frames of power-up invulnerability
	FireCooldown   int
	FiringTimer    int
	FireSide       Side
	ShieldTimer    int
	ShieldFrame    int
	Exploding      bool
	ExplosionFrame int
	explosionTick  int

	intent Intent
	cfg    config.ShipConfig
}

// NewShip places a ship at (x, y) pointing up, with a fresh spawn shield.
func NewShip(x, y float64, cfg config.ShipConfig) *Ship {
	return &Ship{
		Body:        Body{X: x, Y: y, Radius: cfg.Radius},
		Health:      cfg.MaxHealth,
		MaxHealth:   cfg.MaxHealth,
		SpawnShield: cfg.SpawnShield,
		cfg:         cfg,
	}
}

// Kind implements Entity.
func (s *Ship) Kind() Kind { return KindShip }

// Control latches this frame's intent and counts down the fire cooldown.
// An exploding ship ignores steering.
func (s *Ship) Control(in Intent) {
	if s.Exploding {
		in = Intent{}
	}
	s.intent = in
	if s.FireCooldown > 0 {
		s.FireCooldown--
	}
}

// Thrusting reports whether thrust was requested this frame.
func (s *Ship) Thrusting() bool { return s.intent.Thrust }

// Advance implements Entity.
func (s *Ship) Advance(f Field) {
	if s.Exploding {
		s.move(f)
		s.advanceExplosion()
		return
	}

	if s.intent.Left {
		s.spin(-s.cfg.RotationSpeed)
	}
	if s.intent.Right {
		s.spin(s.cfg.RotationSpeed)
	}

	if s.intent.Thrust {
		hx, hy := physics.Heading(s.Rotation)
		s.VX += hx * s.cfg.Acceleration
		s.VY += hy * s.cfg.Acceleration
		s.VX, s.VY = physics.ClampSpeed(s.VX, s.VY, s.cfg.MaxSpeed)
	} else {
		s.VX *= s.cfg.DriftDecay
		s.VY *= s.cfg.DriftDecay
	}
	s.move(f)

	if s.FiringTimer > 0 {
		s.FiringTimer--
	}
	if s.SpawnShield > 0 {
		s.SpawnShield--
	}
	if s.HitGrace > 0 {
		s.HitGrace--
	}
	if s.Invulnerable > 0 {
		s.Invulnerable--
	}
	if s.ShieldTimer > 0 {
		s.ShieldTimer--
		if s.ShieldTimer%shieldFrameHold == 0 {
			s.ShieldFrame = (s.ShieldFrame + 1) % ShieldFrames
		}
	}
}

func (s *Ship) advanceExplosion() {
	s.explosionTick++
	if s.explosionTick%s.cfg.ExplosionHold != 0 {
		return
	}
	s.ExplosionFrame++
	if s.ExplosionFrame >= s.cfg.ExplosionStages {
		s.ExplosionFrame = s.cfg.ExplosionStages - 1
		s.Kill()
	}
}

// Shielded reports whether any grace window currently blocks damage.
func (s *Ship) Shielded() bool {
	return s.SpawnShield > 0 || s.HitGrace > 0 || s.Invulnerable > 0
}

// Vulnerable reports whether a collision would currently hurt the ship.
func (s *Ship) Vulnerable() bool {
	return !s.Exploding && !s.Shielded()
}

// TakeDamage removes one point of health. When from is non-nil and the ship
// survives, both bodies receive an elastic bounce.
func (s *Ship) TakeDamage(from *Body) HitResult {
	if !s.Vulnerable() {
		return HitIgnored
	}
	s.Health--
	invariant.Check(s.Health >= 0, "ship health %d below zero", s.Health)
	if s.Health <= 0 {
		s.Exploding = true
		s.explosionTick = 0
		s.ExplosionFrame = 0
		s.ShieldTimer = 0
		return HitLethal
	}

	s.ShieldTimer = s.cfg.ShieldAnimation
	s.ShieldFrame = 0
	s.HitGrace = s.cfg.HitGrace
	if from != nil {
		s.bounce(from)
	}
	return HitShielded
}

func (s *Ship) bounce(o *Body) {
	dx, dy := s.X-o.X, s.Y-o.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	nx, ny := dx/dist, dy/dist
	impulse, ok := physics.ElasticImpulse(nx, ny, s.VX-o.VX, s.VY-o.VY, physics.Restitution)
	if !ok {
		return
	}
	s.VX += impulse * nx
	s.VY += impulse * ny
	o.VX -= impulse * nx
	o.VY -= impulse * ny
}

// CanFire reports whether the cooldown allows a shot.
func (s *Ship) CanFire() bool {
	return s.FireCooldown <= 0 && !s.Exploding
}

// Fire launches a bullet from the current gun, or returns nil while the
// cooldown runs.
func (s *Ship) Fire(w config.WeaponConfig) *Projectile {
	if !s.CanFire() {
		return nil
	}
	x, y, hx, hy := s.muzzle()
	return NewBullet(x, y, hx*w.BulletSpeed, hy*w.BulletSpeed, w)
}

// FireRocket launches a rocket, consuming a charge unless rockets are
// unlimited. Returns nil when nothing was fired.
func (s *Ship) FireRocket(w config.WeaponConfig) *Projectile {
	if !w.UnlimitedRockets && s.Rockets <= 0 {
		return nil
	}
	if !s.CanFire() {
		return nil
	}
	if !w.UnlimitedRockets {
		s.Rockets--
	}
	x, y, hx, hy := s.muzzle()
	speed := w.BulletSpeed * w.RocketSpeedScale
	return NewRocket(x, y, hx*speed, hy*speed, w)
}

// muzzle returns the active gun's position and the facing unit vector, then
// starts the cooldown and alternates guns.
func (s *Ship) muzzle() (x, y, hx, hy float64) {
	hx, hy = physics.Heading(s.Rotation)
	px, py := -hy, hx
	side := 1.0
	if s.FireSide == SideRight {
		side = -1
	}
	x = s.X + hx*s.cfg.GunForward + px*s.cfg.GunOffset*side
	y = s.Y + hy*s.cfg.GunForward + py*s.cfg.GunOffset*side

	s.FireCooldown = s.cfg.FireCooldown
	s.FiringTimer = s.cfg.FiringDuration
	if s.FireSide == SideLeft {
		s.FireSide = SideRight
	} else {
		s.FireSide = SideLeft
	}
	return x, y, hx, hy
}

// Apply grants a collected power-up.
func (s *Ship) Apply(t PowerUpType, p config.PowerUpConfig) {
	switch t {
	case PowerUpHealth:
		if s.MaxHealth < s.cfg.HealthCeiling {
			s.MaxHealth++
		}
		s.Health = s.MaxHealth
	case PowerUpShields:
		s.Health = s.MaxHealth
	case PowerUpInvulnerability:
		s.Invulnerable = p.InvulnerableDuration
	case PowerUpRockets:
		s.Rockets += p.RocketsPerPickup
	}
}

// Pose implements Entity.
func (s *Ship) Pose() Pose {
	return Pose{
		Kind:        KindShip,
		X:           s.X,
		Y:           s.Y,
		Rotation:    s.Rotation,
		Radius:      s.Radius,
		Scale:       1,
		Stage:       s.ExplosionFrame,
		Thrust:      s.intent.Thrust && !s.Exploding,
		Firing:      s.FiringTimer > 0,
		FireSide:    s.FireSide,
		Shield:      s.ShieldTimer > 0,
		ShieldFrame: s.ShieldFrame,
		Protected:   s.SpawnShield > 0 || s.Invulnerable > 0,
		Exploding:   s.Exploding,
		Health:      s.Health,
	}
}
