package loop

import (
	"math"
	"math/rand"

	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/object"
)

// Edge is a side of the play field.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// NewEdgeAsteroid creates a parent asteroid just beyond a random edge,
// heading for the field center at a random speed with a visible spin.
func NewEdgeAsteroid(rng *rand.Rand, f object.Field, cfg config.AsteroidConfig) *object.Asteroid {
	m := cfg.SpawnMargin
	var x, y float64
	switch Edge(rng.Intn(4)) {
	case EdgeTop:
		x, y = rng.Float64()*f.Width, -m
	case EdgeBottom:
		x, y = rng.Float64()*f.Width, f.Height+m
	case EdgeLeft:
		x, y = -m, rng.Float64()*f.Height
	case EdgeRight:
		x, y = f.Width+m, rng.Float64()*f.Height
	}

	cx, cy := f.Center()
	dx, dy := cx-x, cy-y
	var dirX, dirY float64
	if dist := math.Hypot(dx, dy); dist > 0 {
		dirX, dirY = dx/dist, dy/dist
	}
	speed := uniform(rng, cfg.MinSpeed, cfg.MaxSpeed)

	a := object.NewAsteroid(x, y, dirX*speed, dirY*speed, 0, 1, cfg.SpriteSize, true)
	a.Rotation = rng.Float64() * 360
	a.RotationSpeed = minSpin(uniform(rng, cfg.MinRotation, cfg.MaxRotation), cfg.MinSpin)
	a.Entering = !f.Contains(x, y, a.Radius)
	return a
}

// Split creates the children of a destroyed parent: evenly spaced around
// the death position, each pushed outward from the parent's velocity.
func Split(rng *rand.Rand, parent *object.Asteroid, cfg config.AsteroidConfig) []*object.Asteroid {
	if cfg.ChildCount <= 0 {
		return nil
	}
	children := make([]*object.Asteroid, 0, cfg.ChildCount)
	step := 2 * math.Pi / float64(cfg.ChildCount)
	for i := range cfg.ChildCount {
		angle := float64(i) * step
		ux, uy := math.Cos(angle), math.Sin(angle)
		c := object.NewAsteroid(
			parent.X+ux*cfg.ChildOffset, parent.Y+uy*cfg.ChildOffset,
			parent.VX+ux*cfg.ChildSpeed, parent.VY+uy*cfg.ChildSpeed,
			cfg.ChildStage, cfg.ChildScale, cfg.SpriteSize, false,
		)
		c.Rotation = rng.Float64() * 360
		c.RotationSpeed = uniform(rng, cfg.MinRotation, cfg.MaxRotation)
		children = append(children, c)
	}
	return children
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// minSpin pushes a rotation speed away from zero, keeping its sign.
func minSpin(v, floor float64) float64 {
	if math.Abs(v) >= floor {
		return v
	}
	if v >= 0 {
		return floor
	}
	return -floor
}
