// Package registry decouples the terminal platform from concrete game
// implementations. The game registers a factory in its init function; the
// platform only ever sees the Game interface.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mkostin/wingshot/internal/core"
)

// Game is the contract between the simulation and the platform. The
// implementation must be pure logic: no terminal, no audio, no I/O. The
// platform owns input mapping, frame pacing, persistence, and display.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset initializes a fresh session in the START phase. Called once
	// before the first tick and again whenever the playfield resizes.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick, dispatching each
	// input in the frame exactly once.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current session summary.
	State() core.GameState
}

// Factory creates a new game instance.
type Factory func() Game

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. Panics on duplicate IDs; registration
// happens in init functions where a duplicate is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// Create instantiates a registered game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// List returns all registered games sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(factories))
	for id := range factories {
		out = append(out, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
