package object

import (
	"math"
	"testing"

	"github.com/tomz197/logastroids/internal/config"
)

var testField = Field{Width: 1200, Height: 900}

// newTestShip creates a ship past its spawn shield.
func newTestShip() *Ship {
	s := NewShip(600, 450, config.Default().Ship)
	s.SpawnShield = 0
	return s
}

func TestTakeDamage_SpawnShieldBlocks(t *testing.T) {
	s := NewShip(600, 450, config.Default().Ship)
	if got := s.TakeDamage(nil); got != HitIgnored {
		t.Fatalf("TakeDamage during spawn shield = %v, want HitIgnored", got)
	}
	if s.Health != s.MaxHealth {
		t.Errorf("health = %d, want %d", s.Health, s.MaxHealth)
	}
}

func TestTakeDamage_HitGraceAbsorbsSecondHit(t *testing.T) {
	s := newTestShip()
	rock := &Body{X: 630, Y: 450}

	if got := s.TakeDamage(rock); got != HitShielded {
		t.Fatalf("first hit = %v, want HitShielded", got)
	}
	if got := s.TakeDamage(rock); got != HitIgnored {
		t.Fatalf("second hit = %v, want HitIgnored", got)
	}
	if s.Health != s.MaxHealth-1 {
		t.Errorf("health = %d, want exactly one decrement to %d", s.Health, s.MaxHealth-1)
	}
	if s.ShieldTimer != config.Default().Ship.ShieldAnimation {
		t.Errorf("shield timer = %d, want %d", s.ShieldTimer, config.Default().Ship.ShieldAnimation)
	}
}

func TestTakeDamage_HitGraceExpires(t *testing.T) {
	s := newTestShip()
	s.TakeDamage(nil)
	for i := 0; i < config.Default().Ship.HitGrace; i++ {
		s.Control(Intent{})
		s.Advance(testField)
	}
	if !s.Vulnerable() {
		t.Fatal("ship should be vulnerable after hit grace")
	}
	if got := s.TakeDamage(nil); got != HitShielded {
		t.Errorf("hit after grace = %v, want HitShielded", got)
	}
}

func TestTakeDamage_InvulnerabilityBlocks(t *testing.T) {
	s := newTestShip()
	s.Apply(PowerUpInvulnerability, config.Default().PowerUps)
	if got := s.TakeDamage(nil); got != HitIgnored {
		t.Errorf("hit while invulnerable = %v, want HitIgnored", got)
	}
}

func TestTakeDamage_LethalGenericDamage(t *testing.T) {
	s := newTestShip()
	s.Health = 1

	if got := s.TakeDamage(nil); got != HitLethal {
		t.Fatalf("lethal hit = %v, want HitLethal", got)
	}
	if !s.Exploding {
		t.Error("ship should be exploding")
	}
	if s.ShieldTimer != 0 || s.Pose().Shield {
		t.Error("lethal hit must not show the shield animation")
	}
	if got := s.TakeDamage(nil); got != HitIgnored {
		t.Errorf("hit while exploding = %v, want HitIgnored", got)
	}
	if s.Health != 0 {
		t.Errorf("health = %d, want 0", s.Health)
	}
}

func TestTakeDamage_Bounce(t *testing.T) {
	s := newTestShip()
	s.VX = 3
	rock := &Body{X: 630, Y: 450, VX: -1}

	s.TakeDamage(rock)

	if s.VX >= 0 {
		t.Errorf("ship VX = %v, want bounced negative", s.VX)
	}
	if rock.VX <= -1 {
		t.Errorf("asteroid VX = %v, want pushed right", rock.VX)
	}
	// Equal masses: momentum along the normal is conserved.
	if got := s.VX + rock.VX; math.Abs(got-2) > 1e-9 {
		t.Errorf("momentum = %v, want 2", got)
	}
}

func TestExplosionRemovesShip(t *testing.T) {
	cfg := config.Default().Ship
	s := newTestShip()
	s.Health = 1
	s.TakeDamage(nil)

	frames := cfg.ExplosionStages * cfg.ExplosionHold
	for i := 0; i < frames-1; i++ {
		s.Control(Intent{Thrust: true, Left: true})
		s.Advance(testField)
		if !s.Alive() {
			t.Fatalf("ship removed after %d frames, want %d", i+1, frames)
		}
	}
	s.Advance(testField)
	if s.Alive() {
		t.Fatal("ship should be removed once the explosion finishes")
	}
	if s.Rotation != 0 {
		t.Errorf("exploding ship rotated to %v", s.Rotation)
	}
}

func TestControlRotationAndThrust(t *testing.T) {
	s := newTestShip()
	s.Control(Intent{Left: true})
	s.Advance(testField)
	if s.Rotation != 354 {
		t.Errorf("rotation after left = %v, want 354", s.Rotation)
	}

	s.Rotation = 0
	for i := 0; i < 100; i++ {
		s.Control(Intent{Thrust: true})
		s.Advance(testField)
	}
	speed := math.Hypot(s.VX, s.VY)
	if speed > config.Default().Ship.MaxSpeed+1e-9 {
		t.Errorf("speed = %v, exceeds max", speed)
	}
	if s.VY >= 0 {
		t.Errorf("thrust at rotation 0 should move up, VY = %v", s.VY)
	}

	s.Control(Intent{})
	s.Advance(testField)
	if got := math.Hypot(s.VX, s.VY); math.Abs(got-speed*0.99) > 1e-9 {
		t.Errorf("drift speed = %v, want %v", got, speed*0.99)
	}
}

func TestFireCooldownAndAlternation(t *testing.T) {
	cfg := config.Default()
	s := newTestShip()

	b := s.Fire(cfg.Weapons)
	if b == nil {
		t.Fatal("expected a bullet")
	}
	if b.Kind() != KindBullet || b.Damage != 1 {
		t.Errorf("bullet kind/damage = %v/%d", b.Kind(), b.Damage)
	}
	// At rotation 0 the left gun sits 20px up and 20px along +x.
	if math.Abs(b.X-620) > 1e-9 || math.Abs(b.Y-430) > 1e-9 {
		t.Errorf("left gun at (%v,%v), want (620,430)", b.X, b.Y)
	}
	if s.Fire(cfg.Weapons) != nil {
		t.Fatal("cooldown should block a second shot")
	}

	for i := 0; i < cfg.Ship.FireCooldown; i++ {
		s.Control(Intent{})
	}
	b = s.Fire(cfg.Weapons)
	if b == nil {
		t.Fatal("expected a bullet after cooldown")
	}
	if math.Abs(b.X-580) > 1e-9 {
		t.Errorf("right gun x = %v, want 580", b.X)
	}
}

func TestFireRocketConsumesCharge(t *testing.T) {
	w := config.Default().Weapons
	s := newTestShip()
	if s.FireRocket(w) != nil {
		t.Fatal("no rockets should mean no launch")
	}
	s.Rockets = 1
	r := s.FireRocket(w)
	if r == nil || r.Kind() != KindRocket || r.Damage != 4 {
		t.Fatalf("rocket = %+v", r)
	}
	if s.Rockets != 0 {
		t.Errorf("rockets = %d, want 0", s.Rockets)
	}
	if got, want := math.Hypot(r.VX, r.VY), w.BulletSpeed*w.RocketSpeedScale; math.Abs(got-want) > 1e-9 {
		t.Errorf("rocket speed = %v, want %v", got, want)
	}

	w.UnlimitedRockets = true
	s.FireCooldown = 0
	if s.FireRocket(w) == nil || s.Rockets != 0 {
		t.Error("unlimited rockets should fire without consuming")
	}
}

func TestApplyPowerUps(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name       string
		typ        PowerUpType
		setup      func(*Ship)
		wantHealth int
		wantMax    int
	}{
		{"health raises max", PowerUpHealth, func(s *Ship) { s.Health = 1 }, 4, 4},
		{"health capped at ceiling", PowerUpHealth, func(s *Ship) { s.MaxHealth = 6; s.Health = 2 }, 6, 6},
		{"shields refill", PowerUpShields, func(s *Ship) { s.Health = 1 }, 3, 3},
		{"shields when full", PowerUpShields, func(*Ship) {}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShip()
			tt.setup(s)
			s.Apply(tt.typ, cfg.PowerUps)
			if s.Health != tt.wantHealth || s.MaxHealth != tt.wantMax {
				t.Errorf("health/max = %d/%d, want %d/%d", s.Health, s.MaxHealth, tt.wantHealth, tt.wantMax)
			}
		})
	}

	s := newTestShip()
	s.Apply(PowerUpRockets, cfg.PowerUps)
	if s.Rockets != 3 {
		t.Errorf("rockets = %d, want 3", s.Rockets)
	}
	s.Apply(PowerUpInvulnerability, cfg.PowerUps)
	if s.Invulnerable != 300 {
		t.Errorf("invulnerable = %d, want 300", s.Invulnerable)
	}
}

func TestShipWraps(t *testing.T) {
	s := newTestShip()
	s.X, s.VX = 1199, 3
	s.Control(Intent{})
	s.Advance(testField)
	if s.X < 0 || s.X > 5 {
		t.Errorf("x = %v, want wrapped near the left edge", s.X)
	}
}
