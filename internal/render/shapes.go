package render

import (
	"math"

	"github.com/tomz197/logastroids/internal/draw"
	"github.com/tomz197/logastroids/internal/object"
	"github.com/tomz197/logastroids/internal/physics"
)

// place maps a point given relative to a body facing up onto the field,
// rotated clockwise by deg.
func place(cx, cy float64, local draw.Point, deg float64) draw.Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return draw.Point{
		X: cx + local.X*cos - local.Y*sin,
		Y: cy + local.X*sin + local.Y*cos,
	}
}

func (r *Renderer) shape(cx, cy float64, local []draw.Point, deg float64, filled bool) {
	pts := r.canvas.BorrowPoints(len(local))
	for i, p := range local {
		pts[i] = place(cx, cy, p, deg)
	}
	r.canvas.DrawPolygon(pts, filled)
}

// Ship hull and flame, in units of the ship radius.
var (
	shipHull  = []draw.Point{{X: 0, Y: -1}, {X: 0.7, Y: 0.75}, {X: 0, Y: 0.4}, {X: -0.7, Y: 0.75}}
	shipFlame = []draw.Point{{X: -0.25, Y: 0.6}, {X: 0.25, Y: 0.6}, {X: 0, Y: 1.1}}
)

func scaled(pts []draw.Point, k float64) []draw.Point {
	out := make([]draw.Point, len(pts))
	for i, p := range pts {
		out[i] = draw.Point{X: p.X * k, Y: p.Y * k}
	}
	return out
}

func (r *Renderer) drawShip(p object.Pose, frame uint64) {
	if p.Exploding {
		r.drawDebris(p.X, p.Y, p.Radius, p.Stage)
		return
	}
	deg := frameAngle(DirectionFrame(p.Rotation))
	// Spawn protection and invulnerability blink the hull.
	if !p.Protected || frame/6%2 == 0 {
		r.shape(p.X, p.Y, scaled(shipHull, p.Radius), deg, true)
	}
	if p.Thrust && frame%4 < 2 {
		r.shape(p.X, p.Y, scaled(shipFlame, p.Radius), deg, false)
	}
	if p.Firing {
		side := 1.0
		if p.FireSide == object.SideRight {
			side = -1
		}
		// FireSide names the gun that fires next, so the flash sits on the other one.
		muzzle := place(p.X, p.Y, draw.Point{X: -side * 0.52 * p.Radius, Y: -0.6 * p.Radius}, deg)
		r.canvas.DrawCircle(muzzle, p.Radius*0.12, true)
	}
	if p.Shield {
		r.canvas.DrawCircle(draw.Point{X: p.X, Y: p.Y}, p.Radius*(1.15+0.1*float64(p.ShieldFrame)), false)
	}
}

// drawDebris draws eight fragments flying outward with the stage.
func (r *Renderer) drawDebris(x, y, radius float64, stage int) {
	dist := radius * (0.3 + 0.12*float64(stage))
	for i := range 8 {
		hx, hy := physics.Heading(float64(i)*45 + float64(stage)*7)
		a := draw.Point{X: x + hx*dist, Y: y + hy*dist}
		b := draw.Point{X: a.X + hx*radius*0.25, Y: a.Y + hy*radius*0.25}
		r.canvas.DrawLine(a, b)
	}
}

// Rock outline radii, one per vertex. Damage stages pull in the dent vertices.
var (
	rockOutline = [...]float64{1, 0.86, 0.97, 0.8, 1, 0.9, 0.78, 0.95, 0.88, 1}
	rockDents   = [...]int{2, 6, 8}
)

func (r *Renderer) drawAsteroid(p object.Pose) {
	n := len(rockOutline)
	radii := rockOutline
	for i := 0; i < p.Stage && i < len(rockDents); i++ {
		radii[rockDents[i]] = 0.6
	}
	pts := r.canvas.BorrowPoints(n)
	for i, k := range radii {
		hx, hy := physics.Heading(p.Rotation + float64(i)*360/float64(n))
		pts[i] = draw.Point{X: p.X + hx*k*p.Radius, Y: p.Y + hy*k*p.Radius}
	}
	r.canvas.DrawPolygon(pts, false)
}

func (r *Renderer) drawBullet(p object.Pose) {
	r.canvas.DrawCircle(draw.Point{X: p.X, Y: p.Y}, max(p.Radius, 3), true)
}

var rocketBody = []draw.Point{{X: 0, Y: -1.4}, {X: 0.6, Y: 0.8}, {X: -0.6, Y: 0.8}}

func (r *Renderer) drawRocket(p object.Pose) {
	deg := frameAngle(DirectionFrame(p.Rotation))
	r.shape(p.X, p.Y, scaled(rocketBody, p.Radius), deg, true)
	if p.Stage%2 == 0 {
		tail := place(p.X, p.Y, draw.Point{Y: 1.4 * p.Radius}, deg)
		r.canvas.DrawCircle(tail, p.Radius*0.35, false)
	}
}

func (r *Renderer) drawPowerUp(p object.Pose, frame uint64) {
	c := draw.Point{X: p.X, Y: p.Y}
	r.canvas.DrawCircle(c, p.Radius, false)
	if frame/15%2 == 0 {
		r.canvas.DrawCircle(c, p.Radius*0.75, false)
	}
}

func (r *Renderer) drawExplosion(p object.Pose) {
	size := p.Radius * p.Scale
	r.drawDebris(p.X, p.Y, size, p.Stage)
	r.canvas.DrawCircle(draw.Point{X: p.X, Y: p.Y}, size*(0.2+0.08*float64(p.Stage)), false)
}

func (r *Renderer) drawBoss(p object.Pose) {
	hull := r.canvas.BorrowPoints(8)
	for i := range hull {
		hx, hy := physics.Heading(p.Rotation + float64(i)*45 + 22.5)
		hull[i] = draw.Point{X: p.X + hx*p.Radius, Y: p.Y + hy*p.Radius}
	}
	r.canvas.DrawPolygon(hull, false)
	for _, gun := range object.BossGunAngles {
		hx, hy := physics.Heading(p.Rotation + gun)
		from := draw.Point{X: p.X + hx*p.Radius*0.4, Y: p.Y + hy*p.Radius*0.4}
		to := draw.Point{X: p.X + hx*p.Radius*0.85, Y: p.Y + hy*p.Radius*0.85}
		r.canvas.DrawLine(from, to)
	}
	r.canvas.DrawCircle(draw.Point{X: p.X, Y: p.Y}, p.Radius*0.3, true)
}

func (r *Renderer) drawFireball(p object.Pose, frame uint64) {
	c := draw.Point{X: p.X, Y: p.Y}
	r.canvas.DrawCircle(c, p.Radius*0.55, true)
	if frame%6 < 3 {
		r.canvas.DrawCircle(c, p.Radius, false)
	}
}
