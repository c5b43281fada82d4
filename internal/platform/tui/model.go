package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-monsters/internal/core"
	"github.com/vovakirdan/snake-monsters/internal/registry"
	"github.com/vovakirdan/snake-monsters/internal/storage"
)

// Publisher receives game observations for spectators.
type Publisher interface {
	Publish(runID string, v any)
}

// publishRate is how many observations per second go to the publisher.
const publishRate = 10

// Options configures a game session.
type Options struct {
	Store     *storage.Store // Optional score and run history
	Publisher Publisher      // Optional spectate feed
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	frame      uint64
	quitting   bool
	recorded   bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		runID:      uuid.NewString(),
	}
}

// Init resets the game and starts the frame loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit, action == core.ActionBack:
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the running game and only updates the layout.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick runs one game frame.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	restarting := wasOver && m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.frame++

	if restarting {
		m.runID = uuid.NewString()
		m.recorded = false
	}
	if m.gameState.GameOver {
		m.recordRun()
	}

	every := uint64(max(1, m.config.TickRate/publishRate))
	if m.frame%every == 0 || (m.gameState.GameOver && !wasOver) {
		m.publish()
	}

	return m, tickCmd(m.config.FrameDuration())
}

// recordRun saves the score and the run summary once per run. Runs left
// before the end are stored as abandoned if they ever started.
func (m *Model) recordRun() {
	if m.recorded || m.opts.Store == nil {
		return
	}

	rec := storage.RunRecord{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Outcome: "abandoned",
		Score:   m.gameState.Score,
		Seed:    m.config.Seed,
	}
	if rr, ok := m.game.(registry.RunReporter); ok {
		res := rr.Outcome()
		rec.Contacts = res.Contacts
		rec.ElapsedSecs = res.ElapsedSeconds
		rec.Length = res.Length
		rec.Seed = res.Seed
		if m.gameState.GameOver {
			rec.Outcome = res.Outcome
		}
	}
	if !m.gameState.GameOver && rec.ElapsedSecs == 0 {
		return
	}
	m.recorded = true

	//nolint:errcheck // Best-effort save, game continues regardless
	m.opts.Store.SaveRun(rec)
	if m.gameState.GameOver && m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score)
	}
}

func (m *Model) publish() {
	if m.opts.Publisher == nil {
		return
	}
	if o, ok := m.game.(registry.Observable); ok {
		m.opts.Publisher.Publish(m.runID, o.Observation())
	}
}

// RunID returns the identifier of the current run.
func (m *Model) RunID() string {
	return m.runID
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
