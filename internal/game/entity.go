// Package game implements the Wingshot simulation: a gravity-bound player
// dodging wall pairs and oscillating enemies while firing projectiles.
// The package is pure logic in the sense the platform cares about: no
// terminal, no audio, no clocks other than its own tick counter, and fully
// deterministic for a given seed and input sequence.
package game

import (
	"math"

	"github.com/mkostin/wingshot/internal/config"
	"github.com/mkostin/wingshot/internal/core"
)

// Body is the geometry record every entity embeds: a real-valued position
// with an integer hitbox. Motion accumulates in the floats; collision only
// ever sees the truncated Rect.
type Body struct {
	X, Y float64
	W, H int
}

// Rect returns the integer bounding box for collision tests.
func (b Body) Rect() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), b.W, b.H)
}

// Player is the single controllable entity. Horizontal position is fixed
// for the whole session; only vertical motion is simulated.
type Player struct {
	Body
	Vel float64 // vertical velocity, positive = down

	gravity     float64
	flapImpulse float64
	maxVelocity float64
}

func newPlayer(x, y float64, cfg config.Player) *Player {
	return &Player{
		Body:        Body{X: x, Y: y, W: cfg.Width, H: cfg.Height},
		gravity:     cfg.Gravity,
		flapImpulse: cfg.FlapImpulse,
		maxVelocity: cfg.MaxVelocity,
	}
}

// Update applies one tick of gravity, clamped to terminal fall speed.
func (p *Player) Update() {
	p.Vel = math.Min(p.Vel+p.gravity, p.maxVelocity)
	p.Y += p.Vel
}

// Flap replaces any accumulated fall speed with the upward impulse.
func (p *Player) Flap() {
	p.Vel = p.flapImpulse
}

// Wall is one segment of an obstacle pair, moving leftward at a speed
// fixed at creation. Walls never move vertically.
type Wall struct {
	Body
	Speed float64
}

// Update advances the wall one tick leftward.
func (w *Wall) Update() {
	w.X -= w.Speed
}

// enemyPhaseStep is the per-tick advance of the oscillation phase.
const enemyPhaseStep = 0.05

// Enemy drifts leftward while oscillating vertically around its spawn row.
// Phase starts at a random offset so enemies are not synchronized.
type Enemy struct {
	Body
	Speed     float64
	Amplitude float64
	BaseY     float64
	Phase     float64
	Direction int // ±1, chosen at spawn; carried but not used by motion
}

// Update advances the enemy one tick.
func (e *Enemy) Update() {
	e.X -= e.Speed
	e.Phase += enemyPhaseStep
	e.Y = e.BaseY + e.Amplitude*math.Sin(e.Phase)
}

// Projectile travels rightward at a fixed speed, independent of the
// player's motion at fire time.
type Projectile struct {
	Body
	Speed float64
}

// Update advances the projectile one tick.
func (p *Projectile) Update() {
	p.X += p.Speed
}
