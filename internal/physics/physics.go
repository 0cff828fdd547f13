// Package physics provides integration, wrapping and collision utilities.
package physics

import "math"

// Restitution is the coefficient of restitution for ship/asteroid bounces.
const Restitution = 0.6

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
// Touching circles (distance == r1+r2) do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Wrap maps v into [0, size) toroidally. A non-positive size leaves v untouched.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// Integrate advances a position by one frame of velocity.
func Integrate(x, y, vx, vy float64) (float64, float64) {
	return x + vx, y + vy
}

// Magnitude returns the length of a vector.
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// ClampSpeed scales (vx, vy) down so its magnitude does not exceed max.
func ClampSpeed(vx, vy, max float64) (float64, float64) {
	speed := Magnitude(vx, vy)
	if speed > max && speed > 0 {
		scale := max / speed
		return vx * scale, vy * scale
	}
	return vx, vy
}

// Heading returns the unit vector for a rotation in degrees where 0 points up
// and angles grow clockwise in screen space (y down).
func Heading(rotation float64) (float64, float64) {
	rad := (rotation - 90) * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// ElasticImpulse computes the velocity change for two equal-mass bodies.
//
// (nx, ny) is the unit collision normal pointing from body B to body A and
// (dvx, dvy) is A's velocity minus B's. If the bodies are closing
// (relative velocity along the normal is negative) the returned impulse is
// -(1+restitution)*rel/2 and ok is true; A gains +impulse along the normal
// and B gains -impulse. Separating bodies yield ok == false.
func ElasticImpulse(nx, ny, dvx, dvy, restitution float64) (impulse float64, ok bool) {
	rel := dvx*nx + dvy*ny
	if rel >= 0 {
		return 0, false
	}
	return -(1 + restitution) * rel / 2, true
}
