// Package config provides YAML-based game configuration loading and
// validation. A configuration that is missing a required field is a fatal
// startup error: the simulation cannot establish valid physics constants
// and must not enter the frame loop.
package config

import (
	"errors"
	"fmt"
)

// Config holds every tunable the simulation reads. It is loaded once at
// startup, validated, and treated as immutable afterwards.
type Config struct {
	Window      Window      `yaml:"window"`
	Player      Player      `yaml:"player"`
	Walls       Walls       `yaml:"walls"`
	Enemies     Enemies     `yaml:"enemies"`
	Projectiles Projectiles `yaml:"projectiles"`
	Levels      []Level     `yaml:"levels"`
}

// Window describes the default playfield and frame pacing.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// Player describes the player's hitbox and vertical physics.
type Player struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`      // downward acceleration per tick
	FlapImpulse float64 `yaml:"flap_impulse"` // velocity set on flap; negative = up
	MaxVelocity float64 `yaml:"max_velocity"` // terminal fall speed
}

// Walls describes the obstacle pairs.
type Walls struct {
	Width int     `yaml:"width"`
	Gap   int     `yaml:"gap"`   // vertical clearance between a pair
	Speed float64 `yaml:"speed"` // leftward cells per tick before multipliers
}

// Enemies describes the oscillating enemies.
type Enemies struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpawnRateMS int     `yaml:"spawn_rate_ms"` // minimum interval between spawns
	Amplitude   float64 `yaml:"amplitude"`     // vertical oscillation in cells
}

// Projectiles describes the player's shots.
type Projectiles struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Speed      float64 `yaml:"speed"`       // rightward cells per tick
	CooldownMS int     `yaml:"cooldown_ms"` // minimum interval between fires
}

// Level is one parameter set. There is no in-game progression; the active
// level is chosen at startup.
type Level struct {
	WallSpeedMultiplier  float64 `yaml:"wall_speed_multiplier"`
	EnemySpeedMultiplier float64 `yaml:"enemy_speed_multiplier"`
	EnemyCount           int     `yaml:"enemy_count"`       // live-enemy cap
	WallFrequencyMS      int     `yaml:"wall_frequency_ms"` // interval between pairs
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that every field the simulation depends on is present
// and sane. The zero value of any required field is treated as missing.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("%w: window fps %d", ErrInvalid, c.Window.FPS)
	case c.Window.Title == "":
		return fmt.Errorf("%w: window title missing", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %dx%d", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Player.Gravity <= 0:
		return fmt.Errorf("%w: player gravity %g", ErrInvalid, c.Player.Gravity)
	case c.Player.FlapImpulse >= 0:
		return fmt.Errorf("%w: flap_impulse %g must be negative (upward)", ErrInvalid, c.Player.FlapImpulse)
	case c.Player.MaxVelocity <= 0:
		return fmt.Errorf("%w: player max_velocity %g", ErrInvalid, c.Player.MaxVelocity)
	case c.Walls.Width <= 0 || c.Walls.Gap <= 0:
		return fmt.Errorf("%w: walls width %d gap %d", ErrInvalid, c.Walls.Width, c.Walls.Gap)
	case c.Walls.Speed <= 0:
		return fmt.Errorf("%w: walls speed %g", ErrInvalid, c.Walls.Speed)
	case c.Enemies.Width <= 0 || c.Enemies.Height <= 0:
		return fmt.Errorf("%w: enemies size %dx%d", ErrInvalid, c.Enemies.Width, c.Enemies.Height)
	case c.Enemies.Speed <= 0:
		return fmt.Errorf("%w: enemies speed %g", ErrInvalid, c.Enemies.Speed)
	case c.Enemies.SpawnRateMS <= 0:
		return fmt.Errorf("%w: enemies spawn_rate_ms %d", ErrInvalid, c.Enemies.SpawnRateMS)
	case c.Enemies.Amplitude < 0:
		return fmt.Errorf("%w: enemies amplitude %g", ErrInvalid, c.Enemies.Amplitude)
	case c.Projectiles.Width <= 0 || c.Projectiles.Height <= 0:
		return fmt.Errorf("%w: projectiles size %dx%d", ErrInvalid, c.Projectiles.Width, c.Projectiles.Height)
	case c.Projectiles.Speed <= 0:
		return fmt.Errorf("%w: projectiles speed %g", ErrInvalid, c.Projectiles.Speed)
	case c.Projectiles.CooldownMS <= 0:
		return fmt.Errorf("%w: projectiles cooldown_ms %d", ErrInvalid, c.Projectiles.CooldownMS)
	case len(c.Levels) == 0:
		return fmt.Errorf("%w: no levels defined", ErrInvalid)
	}

	for i, lv := range c.Levels {
		switch {
		case lv.WallSpeedMultiplier <= 0:
			return fmt.Errorf("%w: level %d wall_speed_multiplier %g", ErrInvalid, i+1, lv.WallSpeedMultiplier)
		case lv.EnemySpeedMultiplier <= 0:
			return fmt.Errorf("%w: level %d enemy_speed_multiplier %g", ErrInvalid, i+1, lv.EnemySpeedMultiplier)
		case lv.EnemyCount < 0:
			return fmt.Errorf("%w: level %d enemy_count %d", ErrInvalid, i+1, lv.EnemyCount)
		case lv.WallFrequencyMS <= 0:
			return fmt.Errorf("%w: level %d wall_frequency_ms %d", ErrInvalid, i+1, lv.WallFrequencyMS)
		}
	}

	return nil
}

// Level returns the parameter set at the given zero-based index, or an
// error when the index is out of range.
func (c Config) Level(i int) (Level, error) {
	if i < 0 || i >= len(c.Levels) {
		return Level{}, fmt.Errorf("%w: level %d of %d", ErrInvalid, i+1, len(c.Levels))
	}
	return c.Levels[i], nil
}
