package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero fps", func(c *Config) { c.Field.FPS = 0 }, "field.fps"},
		{"negative bullet speed", func(c *Config) { c.Weapons.BulletSpeed = -1 }, "weapons.bullet_speed"},
		{"negative asteroid speed", func(c *Config) { c.Asteroids.MinSpeed = -0.5 }, "asteroids.min_speed"},
		{"weights above one", func(c *Config) { c.PowerUps.WeightShields = 0.9 }, "powerups.weight_*"},
		{"weights below one", func(c *Config) { c.PowerUps.WeightHealth = 0 }, "powerups.weight_*"},
		{"ceiling too high", func(c *Config) { c.Ship.HealthCeiling = 7 }, "ship.health_ceiling"},
		{"max health above ceiling", func(c *Config) { c.Ship.MaxHealth = 5; c.Ship.HealthCeiling = 4 }, "ship.max_health"},
		{"boss margin too wide", func(c *Config) { c.Boss.Margin = 600 }, "boss.margin"},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not match ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Field.Width = 0
	cfg.Field.Height = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "field.width") || !strings.Contains(err.Error(), "field.height") {
		t.Errorf("expected both fields in %q", err)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	body := "[field]\nfps = 30\n\n[levels]\nbase_total = 12\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Field.FPS)
	}
	if cfg.Levels.BaseTotal != 12 {
		t.Errorf("base_total = %d, want 12", cfg.Levels.BaseTotal)
	}
	if cfg.Field.Width != 1200 {
		t.Errorf("width = %v, want default 1200", cfg.Field.Width)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("[field]\nfsp = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load error = %v, want ErrInvalid", err)
	}
}

func TestLoadRejectsInvalidWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("[powerups]\nweight_health = 0.6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load error = %v, want ErrInvalid", err)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Error("Load(\"\") differs from Default()")
	}
}

func TestSpawnIntervalFrames(t *testing.T) {
	cfg := Default()
	if got := cfg.SpawnIntervalFrames(5.0); got != 300 {
		t.Errorf("SpawnIntervalFrames(5) = %d, want 300", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LOGASTROIDS_TEST_KEY", "set")
	if got := GetEnv("LOGASTROIDS_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("LOGASTROIDS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("[field]\nfps = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvScoresPath, "/tmp/scores.json")

	cfg, err := LoadFromEnv("")
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.Field.FPS != 30 {
		t.Errorf("fps = %d, want 30 from the env-named file", cfg.Field.FPS)
	}
	if cfg.Scores.Path != "/tmp/scores.json" {
		t.Errorf("scores path = %q", cfg.Scores.Path)
	}

	if _, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing flag path: err = %v, want ErrNotExist", err)
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err := LogConfig{Level: "debug", File: path}.NewLogger(os.Stderr, "test")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "n=1") {
		t.Errorf("log file = %q", data)
	}

	if _, _, err := (LogConfig{Level: "chatty"}).NewLogger(os.Stderr, ""); err == nil {
		t.Error("unknown level accepted")
	}
}
