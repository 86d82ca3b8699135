package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkostin/wingshot/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions. Bindings
// live here rather than in the model so they stay testable without a
// running program.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key press for the given session phase. Space is the
// only phase-dependent key: it starts, flaps, or restarts depending on
// where the player is. Returns the action and whether it was a quit
// request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase core.Phase) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ":
		switch phase {
		case core.PhaseStart:
			return core.ActionStart, false
		case core.PhaseGameOver:
			return core.ActionRestart, false
		default:
			return core.ActionFlap, false
		}
	case "w", "up":
		return core.ActionFlap, false
	case "f", "right":
		return core.ActionFire, false
	case "enter":
		return core.ActionStart, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame records a key press into the input frame. Returns true if
// the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, phase core.Phase, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg, phase)
	if action != core.ActionNone && action != core.ActionQuit {
		frame.Set(action)
	}
	return isQuit
}
