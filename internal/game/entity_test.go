package game

import (
	"math"
	"testing"

	"github.com/mkostin/wingshot/internal/config"
)

func testPlayerConfig() config.Player {
	return config.Player{
		Width:       2,
		Height:      1,
		Gravity:     0.05,
		FlapImpulse: -0.45,
		MaxVelocity: 0.6,
	}
}

func TestPlayerGravityClamp(t *testing.T) {
	p := newPlayer(20, 12, testPlayerConfig())

	for i := 0; i < 100; i++ {
		p.Update()
		if p.Vel > p.maxVelocity {
			t.Fatalf("tick %d: velocity %f exceeds max %f", i, p.Vel, p.maxVelocity)
		}
	}
	if p.Vel != p.maxVelocity {
		t.Errorf("after long fall velocity = %f, expected terminal %f", p.Vel, p.maxVelocity)
	}

	// One more tick at terminal velocity stays clamped
	p.Update()
	if p.Vel != p.maxVelocity {
		t.Errorf("velocity after clamped tick = %f, expected %f", p.Vel, p.maxVelocity)
	}
}

func TestPlayerFlapOverridesFallSpeed(t *testing.T) {
	p := newPlayer(20, 12, testPlayerConfig())
	p.Vel = p.maxVelocity

	p.Flap()
	if p.Vel != p.flapImpulse {
		t.Errorf("flap velocity = %f, expected %f", p.Vel, p.flapImpulse)
	}

	yBefore := p.Y
	p.Update()
	if p.Y >= yBefore {
		t.Errorf("player should rise after flap, y went %f -> %f", yBefore, p.Y)
	}
}

func TestWallMovesLeft(t *testing.T) {
	w := Wall{Body: Body{X: 80, Y: 0, W: 5, H: 10}, Speed: 0.4}

	w.Update()
	if w.X != 79.6 {
		t.Errorf("wall X = %f, expected 79.6", w.X)
	}
	if w.Y != 0 {
		t.Error("walls never change vertical position")
	}
}

func TestEnemyOscillation(t *testing.T) {
	e := Enemy{
		Body:      Body{X: 80, Y: 10, W: 3, H: 2},
		Speed:     0.3,
		Amplitude: 3.5,
		BaseY:     10,
		Phase:     1.25,
		Direction: -1,
	}

	for i := 0; i < 500; i++ {
		xBefore := e.X
		e.Update()

		if e.X >= xBefore {
			t.Fatalf("tick %d: enemy should move left", i)
		}
		if e.Y < e.BaseY-e.Amplitude-1e-9 || e.Y > e.BaseY+e.Amplitude+1e-9 {
			t.Fatalf("tick %d: enemy y %f outside oscillation band", i, e.Y)
		}
	}

	// The vertical position tracks the phase exactly
	want := e.BaseY + e.Amplitude*math.Sin(e.Phase)
	if math.Abs(e.Y-want) > 1e-9 {
		t.Errorf("enemy y = %f, expected %f", e.Y, want)
	}
}

func TestProjectileMovesRight(t *testing.T) {
	p := Projectile{Body: Body{X: 22, Y: 12, W: 2, H: 1}, Speed: 1.2}

	p.Update()
	if p.X != 23.2 {
		t.Errorf("projectile X = %f, expected 23.2", p.X)
	}
	if p.Y != 12 {
		t.Error("projectiles fly level")
	}
}

func TestBodyRectTruncates(t *testing.T) {
	b := Body{X: 10.9, Y: 5.7, W: 3, H: 2}
	r := b.Rect()
	if r.X != 10 || r.Y != 5 || r.W != 3 || r.H != 2 {
		t.Errorf("Rect() = %+v, expected truncated 10,5,3,2", r)
	}
}
