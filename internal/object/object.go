// Package object defines the simulated bodies: the ship, asteroids,
// projectiles, power-ups, explosions and the boss.
package object

import (
	"math"

	"github.com/tomz197/logastroids/internal/physics"
)

// Kind discriminates entity variants.
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindBullet
	KindRocket
	KindPowerUp
	KindExplosion
	KindBoss
	KindFireball
)

var kindNames = [...]string{
	KindShip:      "ship",
	KindAsteroid:  "asteroid",
	KindBullet:    "bullet",
	KindRocket:    "rocket",
	KindPowerUp:   "powerup",
	KindExplosion: "explosion",
	KindBoss:      "boss",
	KindFireball:  "fireball",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Field is the toroidal play area.
type Field struct {
	Width, Height float64
}

// Wrap maps (x, y) back into the field.
func (f Field) Wrap(x, y *float64) {
	*x = physics.Wrap(*x, f.Width)
	*y = physics.Wrap(*y, f.Height)
}

// Contains reports whether the circle at (x, y) with radius r lies fully
// inside the field.
func (f Field) Contains(x, y, r float64) bool {
	return x-r >= 0 && x+r <= f.Width && y-r >= 0 && y+r <= f.Height
}

// Center returns the middle of the field.
func (f Field) Center() (float64, float64) {
	return f.Width / 2, f.Height / 2
}

// Entity is the capability set shared by every body.
type Entity interface {
	Kind() Kind
	// Advance runs one frame: integration, wrap and timers.
	Advance(f Field)
	Alive() bool
	Kill()
	Pose() Pose
}

// Body is the kinematic state embedded in every entity.
type Body struct {
	X, Y     float64 // center
	VX, VY   float64 // pixels per frame
	Rotation float64 // degrees, 0 = up, clockwise
	Radius   float64
	dead     bool
}

// Position returns the body's center.
func (b *Body) Position() (float64, float64) {
	return b.X, b.Y
}

// Alive reports whether the body is still part of the world.
func (b *Body) Alive() bool { return !b.dead }

// Kill marks the body for removal at the end of the tick.
func (b *Body) Kill() { b.dead = true }

// Overlaps tests two bodies for circle intersection.
func (b *Body) Overlaps(o *Body) bool {
	return physics.CirclesOverlap(b.X, b.Y, b.Radius, o.X, o.Y, o.Radius)
}

func (b *Body) move(f Field) {
	b.X, b.Y = physics.Integrate(b.X, b.Y, b.VX, b.VY)
	f.Wrap(&b.X, &b.Y)
}

// enter integrates without wrapping while entering is set and reports
// whether the body is still entering. A body that stops closing on the field
// while across an edge resumes wrapping at once.
func (b *Body) enter(f Field, entering bool) bool {
	if entering && b.leaving(f) {
		entering = false
	}
	if !entering {
		b.move(f)
		return false
	}
	b.X, b.Y = physics.Integrate(b.X, b.Y, b.VX, b.VY)
	return !f.Contains(b.X, b.Y, b.Radius)
}

// leaving reports whether the body overlaps an edge and moves outward.
func (b *Body) leaving(f Field) bool {
	return (b.X < b.Radius && b.VX < 0) || (b.X > f.Width-b.Radius && b.VX > 0) ||
		(b.Y < b.Radius && b.VY < 0) || (b.Y > f.Height-b.Radius && b.VY > 0)
}

func (b *Body) spin(rate float64) {
	b.Rotation = physics.Wrap(b.Rotation+rate, 360)
}

// Side selects a ship gun.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Pose is the read-only render view of one entity: position, rotation and
// discrete state tags. Renderers never touch entities directly.
type Pose struct {
	Kind     Kind
	X, Y     float64
	Rotation float64
	Radius   float64
	Scale    float64

	// Stage is the asteroid damage stage, explosion frame or rocket
	// animation frame, depending on Kind.
	Stage int

	// Ship tags.
	Thrust      bool
	Firing      bool
	FireSide    Side
	Shield      bool
	ShieldFrame int
	Protected   bool
	Exploding   bool

	// Entering marks an asteroid or its debris still drifting in from
	// beyond the edge; it is drawn unwrapped.
	Entering bool

	PowerUp PowerUpType
	Health  int // ship or boss
}

// headingDegrees is the inverse of physics.Heading.
func headingDegrees(vx, vy float64) float64 {
	return physics.Wrap(math.Atan2(vx, -vy)*180/math.Pi, 360)
}
