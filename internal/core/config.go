package core

// RuntimeConfig is passed to the game at reset time. It carries what only
// the platform knows: the drawable area, the tick rate, and the RNG seed.
// Gameplay constants come from the validated game configuration instead.
type RuntimeConfig struct {
	ScreenW  int   // playfield width in cells
	ScreenH  int   // playfield height in cells
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultRuntimeConfig returns sensible terminal defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the session state. Transitions are driven only by the documented
// triggers; any other input in a given phase is ignored.
type Phase int

const (
	PhaseStart    Phase = iota // title screen, waiting for activation
	PhasePlaying               // simulation running
	PhaseGameOver              // simulation frozen, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Event is a fire-and-forget cue emitted by a simulation tick. The platform
// forwards events to the audio layer; a dropped or failed cue never affects
// the simulation.
type Event int

const (
	EventFlap         Event = iota // player imparted an upward impulse
	EventEnemyContact              // player touched an enemy (fatal)
	EventEnemyDown                 // projectile destroyed an enemy
	EventGameOver                  // session ended this tick
)

// GameState is the platform-visible summary of a session.
type GameState struct {
	Score     int // current score, truncated for display
	HighScore int // best score seen, including persisted history
	Phase     Phase
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
