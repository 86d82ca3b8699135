package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkostin/wingshot/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		phase  core.Phase
		action core.Action
		quit   bool
	}{
		{"w flaps", runeKey('w'), core.PhasePlaying, core.ActionFlap, false},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.PhasePlaying, core.ActionFlap, false},
		{"f fires", runeKey('f'), core.PhasePlaying, core.ActionFire, false},
		{"right fires", tea.KeyMsg{Type: tea.KeyRight}, core.PhasePlaying, core.ActionFire, false},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.PhaseStart, core.ActionStart, false},
		{"r restarts", runeKey('r'), core.PhaseGameOver, core.ActionRestart, false},
		{"q quits", runeKey('q'), core.PhasePlaying, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.PhasePlaying, core.ActionQuit, true},
		{"unknown key", runeKey('z'), core.PhasePlaying, core.ActionNone, false},

		// Space depends on the phase.
		{"space starts", runeKey(' '), core.PhaseStart, core.ActionStart, false},
		{"space flaps", runeKey(' '), core.PhasePlaying, core.ActionFlap, false},
		{"space restarts", runeKey(' '), core.PhaseGameOver, core.ActionRestart, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg, tt.phase)
			if action != tt.action {
				t.Errorf("action = %v, expected %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), core.PhasePlaying, &frame) {
		t.Error("flap key reported as quit")
	}
	if !frame.Has(core.ActionFlap) {
		t.Error("flap was not recorded in the frame")
	}

	if !km.MapKeyToFrame(runeKey('q'), core.PhasePlaying, &frame) {
		t.Error("quit key not reported as quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not land in the input frame")
	}
}

func TestRenderScreenDimensions(t *testing.T) {
	scr := core.NewScreen(10, 4)
	scr.DrawText(0, 0, "hello")

	out := RenderScreen(scr)

	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 4 {
		t.Errorf("rendered %d lines, expected 4", lines)
	}
}
