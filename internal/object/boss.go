package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/physics"
)

// bossEase is the fraction of the gap to the target velocity closed per frame.
const bossEase = 0.1

// BossGunAngles are the gun mounts relative to the boss rotation.
var BossGunAngles = [...]float64{45, 135, 225, 315}

// Boss wanders inside the field and fires fireball volleys.
type Boss struct {
	Body

	Health       int
	MaxHealth    int
	FireCooldown int

	targetVX, targetVY float64
	moveTimer          int
	cfg                config.BossConfig
	rng                *rand.Rand
}

// NewBoss places a boss at (x, y) and picks its first heading.
func NewBoss(x, y float64, cfg config.BossConfig, rng *rand.Rand) *Boss {
	b := &Boss{
		Body:      Body{X: x, Y: y, Radius: cfg.Radius},
		Health:    cfg.Health,
		MaxHealth: cfg.Health,
		cfg:       cfg,
		rng:       rng,
	}
	b.pickHeading()
	return b
}

// Kind implements Entity.
func (b *Boss) Kind() Kind { return KindBoss }

func (b *Boss) pickHeading() {
	angle := b.rng.Float64() * 2 * math.Pi
	speed := b.cfg.MinSpeed + b.rng.Float64()*(b.cfg.MaxSpeed-b.cfg.MinSpeed)
	b.targetVX = math.Cos(angle) * speed
	b.targetVY = math.Sin(angle) * speed
	b.moveTimer = 0
}

// Advance implements Entity. The boss is kept Margin pixels inside the
// field instead of wrapping.
func (b *Boss) Advance(f Field) {
	b.VX += (b.targetVX - b.VX) * bossEase
	b.VY += (b.targetVY - b.VY) * bossEase
	b.X, b.Y = physics.Integrate(b.X, b.Y, b.VX, b.VY)

	m := b.cfg.Margin
	if b.X < m {
		b.X = m
		b.targetVX = math.Abs(b.targetVX)
	} else if b.X > f.Width-m {
		b.X = f.Width - m
		b.targetVX = -math.Abs(b.targetVX)
	}
	if b.Y < m {
		b.Y = m
		b.targetVY = math.Abs(b.targetVY)
	} else if b.Y > f.Height-m {
		b.Y = f.Height - m
		b.targetVY = -math.Abs(b.targetVY)
	}

	b.moveTimer++
	if b.moveTimer >= b.cfg.MoveDuration {
		b.pickHeading()
	}
	b.spin(b.cfg.Spin)
	if b.FireCooldown > 0 {
		b.FireCooldown--
	}
}

// FireVolley returns one fireball per gun, or nil while reloading.
func (b *Boss) FireVolley() []*Projectile {
	if b.FireCooldown > 0 || !b.Alive() {
		return nil
	}
	shots := make([]*Projectile, 0, len(BossGunAngles))
	for _, gun := range BossGunAngles {
		hx, hy := physics.Heading(b.Rotation + gun)
		x := b.X + hx*b.cfg.GunDistance
		y := b.Y + hy*b.cfg.GunDistance
		shots = append(shots, NewFireball(x, y, hx*b.cfg.FireballSpeed, hy*b.cfg.FireballSpeed, b.cfg))
	}
	b.FireCooldown = b.cfg.FireRate
	return shots
}

// TakeDamage reports whether the hit destroyed the boss.
func (b *Boss) TakeDamage(amount int) (destroyed bool) {
	b.Health -= amount
	if b.Health <= 0 {
		b.Health = 0
		b.Kill()
		return true
	}
	return false
}

// Pose implements Entity.
func (b *Boss) Pose() Pose {
	return Pose{
		Kind:     KindBoss,
		X:        b.X,
		Y:        b.Y,
		Rotation: b.Rotation,
		Radius:   b.Radius,
		Scale:    1,
		Health:   b.Health,
	}
}
