package object

// Explosion is the debris cloud left by a destroyed asteroid or boss. It
// drifts with the inherited velocity and spin and plays a fixed number of
// stages before removing itself.
type Explosion struct {
	Body

	Frame         int
	Stages        int
	Hold          int // frames per stage
	Scale         float64
	RotationSpeed float64
	Entering      bool // inherited from an asteroid destroyed beyond the edge
	tick          int
}

// NewExplosion creates an explosion inheriting the pose of src.
func NewExplosion(src *Body, spin, scale float64, stages, hold int) *Explosion {
	return &Explosion{
		Body: Body{
			X: src.X, Y: src.Y, VX: src.VX, VY: src.VY,
			Rotation: src.Rotation, Radius: src.Radius,
		},
		Stages:        stages,
		Hold:          hold,
		Scale:         scale,
		RotationSpeed: spin,
	}
}

// Kind implements Entity.
func (e *Explosion) Kind() Kind { return KindExplosion }

// Advance implements Entity.
func (e *Explosion) Advance(f Field) {
	e.Entering = e.enter(f, e.Entering)
	e.spin(e.RotationSpeed)
	e.tick++
	if e.tick%e.Hold == 0 {
		e.Frame++
		if e.Frame >= e.Stages {
			e.Frame = e.Stages - 1
			e.Kill()
		}
	}
}

// Pose implements Entity.
func (e *Explosion) Pose() Pose {
	return Pose{
		Kind:     KindExplosion,
		X:        e.X,
		Y:        e.Y,
		Rotation: e.Rotation,
		Radius:   e.Radius,
		Scale:    e.Scale,
		Stage:    e.Frame,
		Entering: e.Entering,
	}
}
