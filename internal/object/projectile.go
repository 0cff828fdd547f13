package object

import "github.com/tomz197/logastroids/internal/config"

// RocketFrames is the length of the rocket flame animation.
const RocketFrames = 4

// Projectile is a straight-flying shot: a player bullet or rocket, or a
// boss fireball. It wraps and expires after a fixed number of frames.
type Projectile struct {
	Body

	Life     int // frames remaining
	Lifetime int
	Damage   int
	kind     Kind
}

// NewBullet creates a player bullet.
func NewBullet(x, y, vx, vy float64, w config.WeaponConfig) *Projectile {
	return newProjectile(KindBullet, x, y, vx, vy, w.BulletRadius, w.BulletLifetime, w.BulletDamage)
}

// NewRocket creates a player rocket. Rockets share the bullet lifetime.
func NewRocket(x, y, vx, vy float64, w config.WeaponConfig) *Projectile {
	return newProjectile(KindRocket, x, y, vx, vy, w.RocketRadius, w.BulletLifetime, w.RocketDamage)
}

// NewFireball creates a boss fireball. Fireballs deal one point of ship damage.
func NewFireball(x, y, vx, vy float64, b config.BossConfig) *Projectile {
	return newProjectile(KindFireball, x, y, vx, vy, b.FireballRadius, b.FireballLife, 1)
}

func newProjectile(kind Kind, x, y, vx, vy, radius float64, lifetime, damage int) *Projectile {
	return &Projectile{
		Body:     Body{X: x, Y: y, VX: vx, VY: vy, Radius: radius},
		Life:     lifetime,
		Lifetime: lifetime,
		Damage:   damage,
		kind:     kind,
	}
}

// Kind implements Entity.
func (p *Projectile) Kind() Kind { return p.kind }

// Frame is the rocket animation frame for the remaining life.
func (p *Projectile) Frame() int {
	step := p.Lifetime / RocketFrames
	if step <= 0 {
		return 0
	}
	return (p.Life / step) % RocketFrames
}

// Advance implements Entity.
func (p *Projectile) Advance(f Field) {
	p.move(f)
	p.Life--
	if p.Life <= 0 {
		p.Kill()
	}
}

// Pose implements Entity.
func (p *Projectile) Pose() Pose {
	pose := Pose{
		Kind:   p.kind,
		X:      p.X,
		Y:      p.Y,
		Radius: p.Radius,
		Scale:  1,
	}
	if p.kind == KindRocket {
		pose.Stage = p.Frame()
	}
	if p.VX != 0 || p.VY != 0 {
		pose.Rotation = headingDegrees(p.VX, p.VY)
	}
	return pose
}
