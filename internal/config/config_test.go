package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() returned error: %v", err)
	}
	if cfg.Window.Width != 80 || cfg.Window.Height != 24 {
		t.Errorf("default window = %dx%d, expected 80x24", cfg.Window.Width, cfg.Window.Height)
	}
	if len(cfg.Levels) == 0 {
		t.Fatal("default config should define at least one level")
	}
	if cfg.Player.FlapImpulse >= 0 {
		t.Error("default flap_impulse should be negative (upward)")
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }},
		{"missing title", func(c *Config) { c.Window.Title = "" }},
		{"zero gravity", func(c *Config) { c.Player.Gravity = 0 }},
		{"downward flap", func(c *Config) { c.Player.FlapImpulse = 0.5 }},
		{"zero max velocity", func(c *Config) { c.Player.MaxVelocity = 0 }},
		{"zero wall gap", func(c *Config) { c.Walls.Gap = 0 }},
		{"zero wall speed", func(c *Config) { c.Walls.Speed = 0 }},
		{"zero enemy spawn rate", func(c *Config) { c.Enemies.SpawnRateMS = 0 }},
		{"zero projectile cooldown", func(c *Config) { c.Projectiles.CooldownMS = 0 }},
		{"no levels", func(c *Config) { c.Levels = nil }},
		{"zero level multiplier", func(c *Config) { c.Levels[0].WallSpeedMultiplier = 0 }},
		{"zero wall frequency", func(c *Config) { c.Levels[0].WallFrequencyMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			cfg.Levels = append([]Level(nil), base.Levels...)
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
window: {width: 100, height: 30, fps: 30, title: "Custom"}
player: {width: 2, height: 1, gravity: 0.1, flap_impulse: -0.5, max_velocity: 1.0}
walls: {width: 4, gap: 10, speed: 0.5}
enemies: {width: 3, height: 2, speed: 0.4, spawn_rate_ms: 3000, amplitude: 3}
projectiles: {width: 2, height: 1, speed: 1.5, cooldown_ms: 400}
levels:
  - {wall_speed_multiplier: 1.0, enemy_speed_multiplier: 1.0, enemy_count: 2, wall_frequency_ms: 2000}
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) returned error: %v", path, err)
	}
	if cfg.Window.Title != "Custom" || cfg.Window.FPS != 30 {
		t.Errorf("loaded config mismatch: %+v", cfg.Window)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("window: {width: 100}"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load on incomplete config = %v, expected ErrInvalid", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load on a missing explicit path should fail")
	}
}

func TestLevelAccessor(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := cfg.Level(0); err != nil {
		t.Errorf("Level(0) returned error: %v", err)
	}
	if _, err := cfg.Level(len(cfg.Levels)); err == nil {
		t.Error("Level out of range should return an error")
	}
	if _, err := cfg.Level(-1); err == nil {
		t.Error("Level(-1) should return an error")
	}
}
