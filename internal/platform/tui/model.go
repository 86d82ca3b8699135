package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkostin/wingshot/internal/audio"
	"github.com/mkostin/wingshot/internal/core"
	"github.com/mkostin/wingshot/internal/registry"
	"github.com/mkostin/wingshot/internal/storage"
)

// Model is the Bubble Tea model that hosts one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      audio.Player
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // one save per game over
}

// NewModel creates a model for the given game. A zero seed is replaced
// with a time-based one so unseeded runs differ.
func NewModel(game registry.Game, store *storage.Store, sound audio.Player, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sound == nil {
		sound = audio.NewNop()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, m.gameState.Phase, &m.inputFrame) {
		m.quitting = true
		m.sound.Close()
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse records left presses: the game hit-tests them against the
// start control or treats them as fire requests.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.AddClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize adapts the playfield to the new terminal size. A resize
// mid-session restarts the run: entity positions are meaningless in the
// new coordinate space.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false

	return m, nil
}

// handleTick runs one simulation step against the inputs gathered since
// the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.sound.Handle(result.Events)

	if m.gameState.GameOver() && !wasOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // best-effort save, the session continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver() {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run hosts the game in a full-screen Bubble Tea program until the player
// quits.
func Run(game registry.Game, store *storage.Store, sound audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
