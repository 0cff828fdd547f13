package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/logastroids/internal/config"
)

func TestProjectileLifetime(t *testing.T) {
	w := config.Default().Weapons
	p := NewBullet(10, 10, 1, 0, w)
	for i := 0; i < w.BulletLifetime-1; i++ {
		p.Advance(testField)
	}
	if !p.Alive() {
		t.Fatal("bullet expired early")
	}
	p.Advance(testField)
	if p.Alive() {
		t.Fatal("bullet should expire after its lifetime")
	}
}

func TestProjectileWraps(t *testing.T) {
	p := NewBullet(2, 2, -5, -5, config.Default().Weapons)
	p.Advance(testField)
	if p.X != 1197 || p.Y != 897 {
		t.Errorf("wrapped to (%v,%v), want (1197,897)", p.X, p.Y)
	}
}

func TestRocketFrames(t *testing.T) {
	r := NewRocket(0, 0, 0, -18, config.Default().Weapons)
	tests := []struct {
		life int
		want int
	}{
		{90, 0}, {88, 0}, {87, 3}, {66, 3}, {65, 2}, {44, 2}, {43, 1}, {22, 1}, {21, 0}, {1, 0},
	}
	for _, tt := range tests {
		r.Life = tt.life
		if got := r.Frame(); got != tt.want {
			t.Errorf("Frame() at life %d = %d, want %d", tt.life, got, tt.want)
		}
	}
	if rot := r.Pose().Rotation; math.Abs(rot) > 1e-9 {
		t.Errorf("rocket flying up has rotation %v, want 0", rot)
	}
}

func TestPowerUpFallsAndExpires(t *testing.T) {
	p := config.Default().PowerUps
	u := NewPowerUp(PowerUpRockets, 100, 895, p)
	u.Advance(testField)
	if u.X != 100 || u.Y != 896.5 {
		t.Fatalf("power-up at (%v,%v), want (100,896.5)", u.X, u.Y)
	}
	for i := 0; i < 20 && u.Alive(); i++ {
		u.Advance(testField)
	}
	if u.Alive() {
		t.Error("power-up should despawn below the bottom edge")
	}

	u = NewPowerUp(PowerUpHealth, 100, 0, config.PowerUpConfig{Lifetime: 3, Radius: 16})
	for i := 0; i < 3; i++ {
		u.Advance(testField)
	}
	if !u.Alive() {
		t.Fatal("power-up expired early")
	}
	u.Advance(testField)
	if u.Alive() {
		t.Error("power-up should expire once its age exceeds the lifetime")
	}
}

func TestPowerUpDescriptions(t *testing.T) {
	p := config.Default().PowerUps
	for _, typ := range PowerUpTypes {
		if typ.Description(p, 60) == "" || typ.String() == "unknown" {
			t.Errorf("type %d lacks a name or description", typ)
		}
	}

	p.InvulnerableDuration = 90
	p.RocketsPerPickup = 7
	tests := []struct {
		typ  PowerUpType
		want string
	}{
		{PowerUpInvulnerability, "Invulnerability: 1.5 seconds untouchable"},
		{PowerUpRockets, "Rockets: +7 rockets (F to fire)"},
	}
	for _, tt := range tests {
		if got := tt.typ.Description(p, 60); got != tt.want {
			t.Errorf("%v description = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestExplosionStages(t *testing.T) {
	src := &Body{X: 10, Y: 20, VX: 1, VY: 0, Rotation: 90}
	e := NewExplosion(src, 2, 1, 4, 4)
	for i := 0; i < 15; i++ {
		e.Advance(testField)
		if !e.Alive() {
			t.Fatalf("explosion ended after %d frames, want 16", i+1)
		}
	}
	if e.Frame != 3 {
		t.Errorf("frame = %d, want 3", e.Frame)
	}
	e.Advance(testField)
	if e.Alive() {
		t.Fatal("explosion should end after 4 stages of 4 frames")
	}
	if e.X != 26 || e.Rotation != 122 {
		t.Errorf("explosion drifted to x=%v rot=%v, want 26/122", e.X, e.Rotation)
	}
}

func TestBossStaysInsideMargin(t *testing.T) {
	cfg := config.Default().Boss
	b := NewBoss(600, 100, cfg, rand.New(rand.NewSource(7)))
	for i := 0; i < 2000; i++ {
		b.Advance(testField)
		if b.X < cfg.Margin || b.X > testField.Width-cfg.Margin ||
			b.Y < cfg.Margin || b.Y > testField.Height-cfg.Margin {
			t.Fatalf("frame %d: boss left the margin at (%v,%v)", i, b.X, b.Y)
		}
	}
}

func TestBossVolley(t *testing.T) {
	cfg := config.Default().Boss
	b := NewBoss(600, 450, cfg, rand.New(rand.NewSource(1)))
	shots := b.FireVolley()
	if len(shots) != 4 {
		t.Fatalf("volley size = %d, want 4", len(shots))
	}
	for _, s := range shots {
		if s.Kind() != KindFireball {
			t.Errorf("shot kind = %v", s.Kind())
		}
		if d := math.Hypot(s.X-600, s.Y-450); math.Abs(d-cfg.GunDistance) > 1e-9 {
			t.Errorf("gun distance = %v, want %v", d, cfg.GunDistance)
		}
		if v := math.Hypot(s.VX, s.VY); math.Abs(v-cfg.FireballSpeed) > 1e-9 {
			t.Errorf("fireball speed = %v", v)
		}
	}
	if b.FireVolley() != nil {
		t.Error("boss should reload between volleys")
	}
	for i := 0; i < cfg.FireRate; i++ {
		b.Advance(testField)
	}
	if len(b.FireVolley()) != 4 {
		t.Error("boss should fire again after reloading")
	}
}

func TestBossTakeDamage(t *testing.T) {
	b := NewBoss(600, 450, config.BossConfig{Health: 5, MoveDuration: 1}, rand.New(rand.NewSource(1)))
	if b.TakeDamage(4) {
		t.Fatal("boss destroyed early")
	}
	if !b.TakeDamage(4) || b.Alive() || b.Health != 0 {
		t.Errorf("boss should be destroyed with health 0, got %d", b.Health)
	}
}
