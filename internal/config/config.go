package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrInvalid is matched by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// FieldError describes one rejected configuration value.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is reports ErrInvalid so callers can match with errors.Is.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// FieldConfig holds the play-field dimensions and tick rate.
type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	FPS    int     `toml:"fps"`
}

// ShipConfig holds ship handling, timers and health.
type ShipConfig struct {
	RotationSpeed   float64 `toml:"rotation_speed"` // degrees per frame
	Acceleration    float64 `toml:"acceleration"`   // pixels per frame^2
	MaxSpeed        float64 `toml:"max_speed"`
	DriftDecay      float64 `toml:"drift_decay"` // velocity multiplier per frame without thrust
	Radius          float64 `toml:"radius"`
	SpawnShield     int     `toml:"spawn_shield"`     // frames
	HitGrace        int     `toml:"hit_grace"`        // frames
	ShieldAnimation int     `toml:"shield_animation"` // frames
	FireCooldown    int     `toml:"fire_cooldown"`    // frames
	FiringDuration  int     `toml:"firing_duration"`  // frames
	GunForward      float64 `toml:"gun_forward"`
	GunOffset       float64 `toml:"gun_offset"`
	MaxHealth       int     `toml:"max_health"`
	HealthCeiling   int     `toml:"health_ceiling"`
	ExplosionStages int     `toml:"explosion_stages"`
	ExplosionHold   int     `toml:"explosion_hold"` // frames per stage
}

// WeaponConfig holds bullet and rocket tuning.
type WeaponConfig struct {
	BulletSpeed      float64 `toml:"bullet_speed"`
	BulletLifetime   int     `toml:"bullet_lifetime"` // frames
	BulletRadius     float64 `toml:"bullet_radius"`
	BulletDamage     int     `toml:"bullet_damage"`
	RocketSpeedScale float64 `toml:"rocket_speed_scale"`
	RocketRadius     float64 `toml:"rocket_radius"`
	RocketDamage     int     `toml:"rocket_damage"`
	UnlimitedRockets bool    `toml:"unlimited_rockets"`
	StartingRockets  int     `toml:"starting_rockets"`
}

// AsteroidConfig holds asteroid motion, size and splitting tuning.
type AsteroidConfig struct {
	MinSpeed        float64 `toml:"min_speed"`
	MaxSpeed        float64 `toml:"max_speed"`
	MinRotation     float64 `toml:"min_rotation"` // degrees per frame
	MaxRotation     float64 `toml:"max_rotation"`
	MinSpin         float64 `toml:"min_spin"` // floor on |rotation speed| for spawned asteroids
	SpriteSize      float64 `toml:"sprite_size"`
	SpawnMargin     float64 `toml:"spawn_margin"`
	SplitLevel      int     `toml:"split_level"`
	ChildCount      int     `toml:"child_count"`
	ChildScale      float64 `toml:"child_scale"`
	ChildStage      int     `toml:"child_stage"`
	ChildOffset     float64 `toml:"child_offset"`
	ChildSpeed      float64 `toml:"child_speed"`
	ExplosionStages int     `toml:"explosion_stages"`
	ExplosionHold   int     `toml:"explosion_hold"`
	ScorePerHit     int     `toml:"score_per_hit"`
	ScorePerDestroy int     `toml:"score_per_destroy"`
}

// LevelConfig holds the progression formula constants.
type LevelConfig struct {
	BaseInitial     int     `toml:"base_initial"`
	BaseMaxOnScreen int     `toml:"base_max_on_screen"`
	BaseTotal       int     `toml:"base_total"`
	BaseInterval    float64 `toml:"base_interval"` // seconds
	IncInitial      int     `toml:"inc_initial"`
	IncMaxOnScreen  int     `toml:"inc_max_on_screen"`
	IncTotal        int     `toml:"inc_total"`
	IntervalReduce  float64 `toml:"interval_reduce"` // seconds per level
	MinInterval     float64 `toml:"min_interval"`
}

// PowerUpConfig holds drop chances, type weights and effects.
type PowerUpConfig struct {
	FallSpeed            float64 `toml:"fall_speed"`
	Lifetime             int     `toml:"lifetime"` // frames
	Radius               float64 `toml:"radius"`
	DropChance           float64 `toml:"drop_chance"`
	WeightHealth         float64 `toml:"weight_health"`
	WeightInvulnerable   float64 `toml:"weight_invulnerability"`
	WeightRockets        float64 `toml:"weight_rockets"`
	WeightShields        float64 `toml:"weight_shields"`
	InvulnerableDuration int     `toml:"invulnerability_duration"` // frames
	RocketsPerPickup     int     `toml:"rockets_per_pickup"`
}

// BossConfig holds the optional boss encounter.
type BossConfig struct {
	Enabled        bool    `toml:"enabled"`
	Every          int     `toml:"every"` // boss after every Nth level
	Health         int     `toml:"health"`
	Radius         float64 `toml:"radius"`
	MinSpeed       float64 `toml:"min_speed"`
	MaxSpeed       float64 `toml:"max_speed"`
	MoveDuration   int     `toml:"move_duration"`
	FireRate       int     `toml:"fire_rate"`
	Spin           float64 `toml:"spin"`
	Margin         float64 `toml:"margin"`
	GunDistance    float64 `toml:"gun_distance"`
	FireballSpeed  float64 `toml:"fireball_speed"`
	FireballLife   int     `toml:"fireball_lifetime"`
	FireballRadius float64 `toml:"fireball_radius"`
	Score          int     `toml:"score"`
}

// ScoresConfig locates the high-score file.
type ScoresConfig struct {
	Path string `toml:"path"`
}

// AudioConfig toggles synthesized sound cues.
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

// LogConfig selects the log level and destination.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Config is the complete set of tunables, loaded once at startup.
type Config struct {
	Field     FieldConfig    `toml:"field"`
	Ship      ShipConfig     `toml:"ship"`
	Weapons   WeaponConfig   `toml:"weapons"`
	Asteroids AsteroidConfig `toml:"asteroids"`
	Levels    LevelConfig    `toml:"levels"`
	PowerUps  PowerUpConfig  `toml:"powerups"`
	Boss      BossConfig     `toml:"boss"`
	Scores    ScoresConfig   `toml:"scores"`
	Audio     AudioConfig    `toml:"audio"`
	Log       LogConfig      `toml:"log"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Field: FieldConfig{Width: 1200, Height: 900, FPS: 60},
		Ship: ShipConfig{
			RotationSpeed:   6.0,
			Acceleration:    0.5,
			MaxSpeed:        10.0,
			DriftDecay:      0.99,
			Radius:          38.4,
			SpawnShield:     120,
			HitGrace:        20,
			ShieldAnimation: 30,
			FireCooldown:    8,
			FiringDuration:  10,
			GunForward:      20,
			GunOffset:       20,
			MaxHealth:       3,
			HealthCeiling:   6,
			ExplosionStages: 12,
			ExplosionHold:   3,
		},
		Weapons: WeaponConfig{
			BulletSpeed:      12,
			BulletLifetime:   90,
			BulletRadius:     4.0 / 3.0,
			BulletDamage:     1,
			RocketSpeedScale: 1.5,
			RocketRadius:     12,
			RocketDamage:     4,
		},
		Asteroids: AsteroidConfig{
			MinSpeed:        1.0,
			MaxSpeed:        3.0,
			MinRotation:     -3.0,
			MaxRotation:     3.0,
			MinSpin:         0.3,
			SpriteSize:      96,
			SpawnMargin:     100,
			SplitLevel:      3,
			ChildCount:      3,
			ChildScale:      0.5,
			ChildStage:      2,
			ChildOffset:     30,
			ChildSpeed:      2.0,
			ExplosionStages: 4,
			ExplosionHold:   4,
			ScorePerHit:     1,
			ScorePerDestroy: 10,
		},
		Levels: LevelConfig{
			BaseInitial:     5,
			BaseMaxOnScreen: 5,
			BaseTotal:       10,
			BaseInterval:    5.0,
			IncInitial:      1,
			IncMaxOnScreen:  1,
			IncTotal:        1,
			IntervalReduce:  0.2,
			MinInterval:     1.0,
		},
		PowerUps: PowerUpConfig{
			FallSpeed:            1.5,
			Lifetime:             300,
			Radius:               16,
			DropChance:           0.15,
			WeightHealth:         0.10,
			WeightInvulnerable:   0.20,
			WeightRockets:        0.20,
			WeightShields:        0.50,
			InvulnerableDuration: 300,
			RocketsPerPickup:     3,
		},
		Boss: BossConfig{
			Enabled:        true,
			Every:          3,
			Health:         50,
			Radius:         64,
			MinSpeed:       1.5,
			MaxSpeed:       3.0,
			MoveDuration:   120,
			FireRate:       45,
			Spin:           0.5,
			Margin:         100,
			GunDistance:    40,
			FireballSpeed:  4.0,
			FireballLife:   180,
			FireballRadius: 16,
			Score:          250,
		},
		Scores: ScoresConfig{Path: "high_scores.json"},
		Audio:  AudioConfig{Enabled: false, Volume: 0.5},
		Log:    LogConfig{Level: "info"},
	}
}

// Load returns the defaults overlaid with the TOML file at path (if path is
// non-empty) and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, &FieldError{Field: undecoded[0].String(), Reason: "unknown key"}
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// weightTolerance bounds the rounding error accepted in the power-up weight sum.
const weightTolerance = 1e-9

// Validate rejects configurations the simulation cannot run with.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, &FieldError{Field: field, Reason: reason})
		}
	}

	check(c.Field.Width > 0, "field.width", "must be positive")
	check(c.Field.Height > 0, "field.height", "must be positive")
	check(c.Field.FPS > 0, "field.fps", "must be positive")

	check(c.Ship.RotationSpeed >= 0, "ship.rotation_speed", "must not be negative")
	check(c.Ship.Acceleration >= 0, "ship.acceleration", "must not be negative")
	check(c.Ship.MaxSpeed > 0, "ship.max_speed", "must be positive")
	check(c.Ship.DriftDecay >= 0 && c.Ship.DriftDecay <= 1, "ship.drift_decay", "must be within [0,1]")
	check(c.Ship.Radius > 0, "ship.radius", "must be positive")
	check(c.Ship.SpawnShield >= 0, "ship.spawn_shield", "must not be negative")
	check(c.Ship.HitGrace >= 0, "ship.hit_grace", "must not be negative")
	check(c.Ship.FireCooldown >= 0, "ship.fire_cooldown", "must not be negative")
	check(c.Ship.HealthCeiling >= 1 && c.Ship.HealthCeiling <= 6, "ship.health_ceiling", "must be within [1,6]")
	check(c.Ship.MaxHealth >= 1 && c.Ship.MaxHealth <= c.Ship.HealthCeiling, "ship.max_health", "must be within [1,health_ceiling]")
	check(c.Ship.ExplosionStages > 0, "ship.explosion_stages", "must be positive")
	check(c.Ship.ExplosionHold > 0, "ship.explosion_hold", "must be positive")

	check(c.Weapons.BulletSpeed >= 0, "weapons.bullet_speed", "must not be negative")
	check(c.Weapons.BulletLifetime > 0, "weapons.bullet_lifetime", "must be positive")
	check(c.Weapons.RocketSpeedScale >= 0, "weapons.rocket_speed_scale", "must not be negative")
	check(c.Weapons.BulletDamage > 0, "weapons.bullet_damage", "must be positive")
	check(c.Weapons.RocketDamage > 0, "weapons.rocket_damage", "must be positive")
	check(c.Weapons.StartingRockets >= 0, "weapons.starting_rockets", "must not be negative")

	a := c.Asteroids
	check(a.MinSpeed > 0, "asteroids.min_speed", "must be positive")
	check(a.MaxSpeed >= a.MinSpeed, "asteroids.max_speed", "must be >= min_speed")
	check(a.MaxRotation >= a.MinRotation, "asteroids.max_rotation", "must be >= min_rotation")
	check(a.MinSpin >= 0, "asteroids.min_spin", "must not be negative")
	check(a.SpriteSize > 0, "asteroids.sprite_size", "must be positive")
	check(a.SpawnMargin >= 0, "asteroids.spawn_margin", "must not be negative")
	check(a.ChildCount >= 0, "asteroids.child_count", "must not be negative")
	check(a.ChildScale > 0 && a.ChildScale < 1, "asteroids.child_scale", "must be within (0,1)")
	check(a.ChildStage >= 0 && a.ChildStage <= 3, "asteroids.child_stage", "must be within [0,3]")
	check(a.ChildSpeed >= 0, "asteroids.child_speed", "must not be negative")
	check(a.ExplosionStages > 0, "asteroids.explosion_stages", "must be positive")
	check(a.ExplosionHold > 0, "asteroids.explosion_hold", "must be positive")

	l := c.Levels
	check(l.BaseInitial >= 0, "levels.base_initial", "must not be negative")
	check(l.BaseMaxOnScreen >= 1, "levels.base_max_on_screen", "must be at least 1")
	check(l.BaseTotal >= 1, "levels.base_total", "must be at least 1")
	check(l.BaseInterval > 0, "levels.base_interval", "must be positive")
	check(l.IncInitial >= 0 && l.IncMaxOnScreen >= 0 && l.IncTotal >= 0, "levels.inc_*", "must not be negative")
	check(l.IntervalReduce >= 0, "levels.interval_reduce", "must not be negative")
	check(l.MinInterval > 0, "levels.min_interval", "must be positive")
	check(l.BaseInitial <= l.BaseTotal && l.IncInitial <= l.IncTotal, "levels.base_initial", "must not outgrow the level total")

	p := c.PowerUps
	check(p.FallSpeed >= 0, "powerups.fall_speed", "must not be negative")
	check(p.Lifetime > 0, "powerups.lifetime", "must be positive")
	check(p.DropChance >= 0 && p.DropChance <= 1, "powerups.drop_chance", "must be within [0,1]")
	weights := []float64{p.WeightHealth, p.WeightInvulnerable, p.WeightRockets, p.WeightShields}
	sum := 0.0
	for _, w := range weights {
		check(w >= 0, "powerups.weight_*", "must not be negative")
		sum += w
	}
	check(math.Abs(sum-1.0) <= weightTolerance, "powerups.weight_*", fmt.Sprintf("must sum to 1.0, got %g", sum))
	check(p.InvulnerableDuration >= 0, "powerups.invulnerability_duration", "must not be negative")
	check(p.RocketsPerPickup >= 0, "powerups.rockets_per_pickup", "must not be negative")

	if c.Boss.Enabled {
		b := c.Boss
		check(b.Every >= 1, "boss.every", "must be at least 1")
		check(b.Health > 0, "boss.health", "must be positive")
		check(b.Radius > 0, "boss.radius", "must be positive")
		check(b.MinSpeed >= 0 && b.MaxSpeed >= b.MinSpeed, "boss.max_speed", "must be >= min_speed >= 0")
		check(b.MoveDuration > 0, "boss.move_duration", "must be positive")
		check(b.FireRate > 0, "boss.fire_rate", "must be positive")
		check(b.FireballSpeed >= 0, "boss.fireball_speed", "must not be negative")
		check(b.FireballLife > 0, "boss.fireball_lifetime", "must be positive")
		check(2*b.Margin < c.Field.Width && 2*b.Margin < c.Field.Height, "boss.margin", "must leave room inside the field")
	}

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume", "must be within [0,1]")
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		check(false, "log.level", "must be debug, info, warn, error or fatal")
	}

	return errors.Join(errs...)
}

// SpawnIntervalFrames converts a spawn interval in seconds to whole frames.
func (c Config) SpawnIntervalFrames(seconds float64) int {
	return int(seconds * float64(c.Field.FPS))
}
