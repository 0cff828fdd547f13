package object

import (
	"math"

	"github.com/tomz197/logastroids/internal/invariant"
)

// MaxStage is the last asteroid damage stage.
const MaxStage = 3

// AsteroidHitPoints is the health of a fresh asteroid.
const AsteroidHitPoints = 4

// radiusFactor turns a sprite width into a collision radius.
const radiusFactor = 0.4

// Asteroid is a destructible rock that advances one stage per damage point.
type Asteroid struct {
	Body

	Stage         int
	HitPoints     int
	Scale         float64 // 1 for parents, smaller for split children
	SpawnChildren bool
	RotationSpeed float64 // degrees per frame

	// Entering is set while an asteroid spawned beyond the edge drifts in;
	// it skips wrapping until it is fully inside the field or turns away.
	Entering bool
}

// NewAsteroid creates an asteroid at the given stage. spriteSize is the
// unscaled sprite width the collision radius derives from.
func NewAsteroid(x, y, vx, vy float64, stage int, scale, spriteSize float64, spawnChildren bool) *Asteroid {
	invariant.Check(stage >= 0 && stage <= MaxStage, "asteroid stage %d out of range", stage)
	return &Asteroid{
		Body: Body{
			X: x, Y: y, VX: vx, VY: vy,
			Radius: math.Floor(spriteSize * scale * radiusFactor),
		},
		Stage:         stage,
		HitPoints:     AsteroidHitPoints,
		Scale:         scale,
		SpawnChildren: spawnChildren,
	}
}

// Kind implements Entity.
func (a *Asteroid) Kind() Kind { return KindAsteroid }

// IsParent reports whether destroying the asteroid may split it.
func (a *Asteroid) IsParent() bool {
	return a.Scale == 1 && a.SpawnChildren
}

// TakeDamage applies amount points of damage and reports whether the
// asteroid was destroyed. Surviving asteroids advance amount stages, held at
// MaxStage.
func (a *Asteroid) TakeDamage(amount int) (destroyed bool) {
	invariant.Check(amount > 0, "asteroid damage %d must be positive", amount)
	a.HitPoints -= amount
	if a.HitPoints <= 0 {
		a.HitPoints = 0
		a.Kill()
		return true
	}
	a.Stage = min(a.Stage+amount, MaxStage)
	return false
}

// Advance implements Entity.
func (a *Asteroid) Advance(f Field) {
	a.spin(a.RotationSpeed)
	a.Entering = a.enter(f, a.Entering)
}

// Pose implements Entity.
func (a *Asteroid) Pose() Pose {
	return Pose{
		Kind:     KindAsteroid,
		X:        a.X,
		Y:        a.Y,
		Rotation: a.Rotation,
		Radius:   a.Radius,
		Scale:    a.Scale,
		Stage:    a.Stage,
		Entering: a.Entering,
	}
}
