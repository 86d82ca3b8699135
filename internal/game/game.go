package game

import (
	"github.com/mkostin/wingshot/internal/config"
	"github.com/mkostin/wingshot/internal/core"
	"github.com/mkostin/wingshot/internal/registry"
)

var (
	activeConfig config.Config
	activeLevel  int
)

func init() {
	cfg, err := config.Default()
	if err != nil {
		panic("game: embedded default config is broken: " + err.Error())
	}
	activeConfig = cfg

	registry.Register("wingshot", func() registry.Game {
		return New(activeConfig, activeLevel)
	})
}

// SetConfig injects the validated configuration used by the registry
// factory. Must be called before registry.Create; the config is assumed to
// have passed Validate already.
func SetConfig(cfg config.Config) {
	activeConfig = cfg
}

// SetLevel selects the zero-based level parameter set for new instances.
func SetLevel(i int) {
	activeLevel = i
}

// Game runs one session of Wingshot: the phase machine, the entity
// collections, the spawn scheduler, and the score. All mutation happens
// inside Step; the platform calls it once per frame.
type Game struct {
	cfg   config.Config
	level config.Level
	rt    core.RuntimeConfig

	phase       core.Phase
	player      *Player
	walls       []Wall
	enemies     []Enemy
	projectiles []Projectile
	spawn       *spawner

	score     float64 // fractional accumulator; displayed truncated
	highScore int

	ticks       int   // simulated ticks this session; drives the ms clock
	lastShot    int64 // session ms of the last accepted fire
	bgOffset    float64
	sessionSeed int64

	events []core.Event // cues emitted by the current step
}

// New creates a game from an already-validated configuration. The level
// index is clamped into the configured range.
func New(cfg config.Config, levelIdx int) *Game {
	levelIdx = core.Clamp(levelIdx, 0, len(cfg.Levels)-1)
	return &Game{
		cfg:   cfg,
		level: cfg.Levels[levelIdx],
	}
}

// ID implements registry.Game.
func (g *Game) ID() string {
	return "wingshot"
}

// Title implements registry.Game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// SetHighScore seeds the displayed high score from persisted history.
func (g *Game) SetHighScore(hs int) {
	if hs > g.highScore {
		g.highScore = hs
	}
}

// Reset starts a fresh session in the START phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.sessionSeed = rt.Seed
	if g.spawn == nil {
		g.spawn = newSpawner(g.cfg, g.level, rt.ScreenW, rt.ScreenH)
	} else {
		g.spawn.screenW = rt.ScreenW
		g.spawn.screenH = rt.ScreenH
	}
	g.resetSession()
	g.phase = core.PhaseStart
}

// resetSession rebuilds the playfield: player at the default position,
// empty collections, one primed wall pair, zeroed score, all timers at the
// current (restarted) clock.
func (g *Game) resetSession() {
	g.ticks = 0
	now := g.now()

	g.player = newPlayer(
		float64(g.rt.ScreenW)/4,
		float64(g.rt.ScreenH)/2,
		g.cfg.Player,
	)
	g.walls = g.walls[:0]
	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
	g.score = 0

	// The first session uses the configured seed verbatim; each restart
	// advances it so repeated runs see fresh layouts while a replay with
	// the same seed and inputs stays identical.
	g.spawn.reset(g.sessionSeed, now)
	g.sessionSeed = g.sessionSeed*6364136223846793005 + 1442695040888963407

	g.lastShot = now

	// The scheduler is primed: the first pair exists immediately instead
	// of waiting out the first interval.
	top, bottom := g.spawn.wallPair()
	g.walls = append(g.walls, top, bottom)
}

// now returns the session clock in milliseconds, derived from the tick
// counter so the simulation stays deterministic regardless of achieved
// wall-clock frame rate.
func (g *Game) now() int64 {
	return int64(g.ticks) * 1000 / int64(g.rt.TickRate)
}

// Step advances the session by one tick. Each input in the frame is
// dispatched exactly once; inputs that don't match the current phase's
// triggers are ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.phase {
	case core.PhaseStart:
		if in.Has(core.ActionStart) || g.clickedStart(in.Clicks) {
			g.phase = core.PhasePlaying
		}

	case core.PhasePlaying:
		g.ticks++
		now := g.now()

		if in.Has(core.ActionFlap) {
			g.player.Flap()
			g.events = append(g.events, core.EventFlap)
		}
		if in.Has(core.ActionFire) {
			g.fire(now)
		}
		for range in.Clicks {
			g.fire(now)
		}

		g.advance(now)

	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.resetSession()
			g.phase = core.PhasePlaying
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// advance runs one simulation tick: background offset, spawn scheduling,
// motion integration, then collision and scoring.
func (g *Game) advance(now int64) {
	// The background offset is frozen outside PLAYING; advance only here.
	g.bgOffset += g.cfg.Walls.Speed

	if g.spawn.wallDue(now) {
		top, bottom := g.spawn.wallPair()
		g.walls = append(g.walls, top, bottom)
		g.spawn.armWalls(now)
	}
	if g.spawn.enemyDue(now, len(g.enemies)) {
		g.enemies = append(g.enemies, g.spawn.enemy())
		g.spawn.armEnemies(now)
	}

	g.player.Update()
	for i := range g.walls {
		g.walls[i].Update()
	}
	for i := range g.enemies {
		g.enemies[i].Update()
	}
	for i := range g.projectiles {
		g.projectiles[i].Update()
	}

	g.resolveCollisions()
}

// fire launches a projectile from the player's right edge, vertically
// centered, subject to the cooldown. A fire arriving exactly at the
// cooldown boundary is accepted.
func (g *Game) fire(now int64) {
	if now-g.lastShot < int64(g.cfg.Projectiles.CooldownMS) {
		return
	}

	pr := g.player.Rect()
	_, cy := pr.Center()
	g.projectiles = append(g.projectiles, Projectile{
		Body: Body{
			X: float64(pr.Right()),
			Y: float64(cy),
			W: g.cfg.Projectiles.Width,
			H: g.cfg.Projectiles.Height,
		},
		Speed: g.cfg.Projectiles.Speed,
	})
	g.lastShot = now
}

// endSession freezes the simulation and settles the high score.
func (g *Game) endSession() {
	g.phase = core.PhaseGameOver
	g.events = append(g.events, core.EventGameOver)
	if int(g.score) > g.highScore {
		g.highScore = int(g.score)
	}
}

// clickedStart hit-tests pointer presses against the start control.
func (g *Game) clickedStart(clicks []core.Click) bool {
	btn := g.startButtonRect()
	for _, c := range clicks {
		if btn.Contains(c.X, c.Y) {
			return true
		}
	}
	return false
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     int(g.score),
		HighScore: g.highScore,
		Phase:     g.phase,
	}
}

// Snapshot is the full drawable state exposed to an external renderer.
// Slices are copies; mutating them does not affect the simulation.
type Snapshot struct {
	Player      Player
	Walls       []Wall
	Enemies     []Enemy
	Projectiles []Projectile
	Score       int
	HighScore   int
	Phase       core.Phase
	BGOffset    float64
}

// Snapshot returns a copy of everything a renderer needs for one frame.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Player:      *g.player,
		Walls:       append([]Wall(nil), g.walls...),
		Enemies:     append([]Enemy(nil), g.enemies...),
		Projectiles: append([]Projectile(nil), g.projectiles...),
		Score:       int(g.score),
		HighScore:   g.highScore,
		Phase:       g.phase,
		BGOffset:    g.bgOffset,
	}
}
