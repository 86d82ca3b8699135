package game

import (
	"math/rand"

	"github.com/mkostin/wingshot/internal/config"
	"github.com/mkostin/wingshot/internal/core"
)

// spawner owns the two time-gated creation policies: wall pairs on the
// level's frequency, enemies on the global spawn rate capped by the
// level's population limit. Time is the game's session clock in
// milliseconds, so spawning is deterministic for a given seed and tick
// rate.
type spawner struct {
	rng     *rand.Rand
	cfg     config.Config
	level   config.Level
	screenW int
	screenH int

	lastWall  int64 // session ms of the last wall pair
	lastEnemy int64 // session ms of the last enemy spawn
}

func newSpawner(cfg config.Config, level config.Level, screenW, screenH int) *spawner {
	return &spawner{
		cfg:     cfg,
		level:   level,
		screenW: screenW,
		screenH: screenH,
	}
}

// reset reseeds the RNG and re-arms both gates at the given clock time.
func (s *spawner) reset(seed int64, now int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastWall = now
	s.lastEnemy = now
}

// wallPair creates a top+bottom pair sharing one gap. The gap center is
// uniform in [gap, screenH-gap], clamped so neither segment can have a
// negative height on tiny screens; top height + gap + bottom height always
// equals the screen height exactly (for an even gap).
func (s *spawner) wallPair() (Wall, Wall) {
	gap := s.cfg.Walls.Gap
	speed := s.cfg.Walls.Speed * s.level.WallSpeedMultiplier

	lo, hi := gap, s.screenH-gap
	center := lo
	if hi > lo {
		center = lo + s.rng.Intn(hi-lo+1)
	}
	center = core.Clamp(center, gap/2, s.screenH-gap+gap/2)

	x := float64(s.screenW)
	topH := center - gap/2
	bottomY := topH + gap
	top := Wall{
		Body:  Body{X: x, Y: 0, W: s.cfg.Walls.Width, H: topH},
		Speed: speed,
	}
	bottom := Wall{
		Body:  Body{X: x, Y: float64(bottomY), W: s.cfg.Walls.Width, H: s.screenH - bottomY},
		Speed: speed,
	}
	return top, bottom
}

// enemy creates one enemy at the right edge with a random base row, phase
// offset, and cosmetic direction.
func (s *spawner) enemy() Enemy {
	h := s.cfg.Enemies.Height
	lo, hi := h, s.screenH-h
	y := lo
	if hi > lo {
		y = lo + s.rng.Intn(hi-lo+1)
	}

	dir := 1
	if s.rng.Intn(2) == 0 {
		dir = -1
	}

	return Enemy{
		Body: Body{
			X: float64(s.screenW),
			Y: float64(y),
			W: s.cfg.Enemies.Width,
			H: h,
		},
		Speed:     s.cfg.Enemies.Speed * s.level.EnemySpeedMultiplier,
		Amplitude: s.cfg.Enemies.Amplitude,
		BaseY:     float64(y),
		Phase:     s.rng.Float64() * 10,
		Direction: dir,
	}
}

// wallDue reports whether the wall gate has elapsed; arming happens via
// armWalls once the pair is actually created.
func (s *spawner) wallDue(now int64) bool {
	return now-s.lastWall > int64(s.level.WallFrequencyMS)
}

func (s *spawner) armWalls(now int64) {
	s.lastWall = now
}

// enemyDue reports whether an enemy should spawn. At the population cap
// the gate is skipped without re-arming, so a slot opening up spawns on
// the next due tick rather than waiting a full interval.
func (s *spawner) enemyDue(now int64, liveEnemies int) bool {
	if now-s.lastEnemy <= int64(s.cfg.Enemies.SpawnRateMS) {
		return false
	}
	return liveEnemies < s.level.EnemyCount
}

func (s *spawner) armEnemies(now int64) {
	s.lastEnemy = now
}
