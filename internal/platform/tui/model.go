package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/storage"
)

// DefaultHoldTicks is used when Options.HoldTicks is not set.
const DefaultHoldTicks = 6

// ScoreSaver persists finished runs. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(rec storage.ScoreRecord) (int64, error)
}

// runIdentifier is implemented by games that tag each run.
type runIdentifier interface {
	RunID() string
}

// Options configure a Model.
type Options struct {
	Runtime   core.RuntimeConfig
	Store     ScoreSaver  // nil disables score saving
	Logger    *log.Logger // nil discards
	HoldTicks int         // frames a held key survives without a repeat
	FixedSeed bool        // keep Runtime.Seed on restart instead of drawing a new one
}

// Model is the Bubble Tea model that drives one game: it turns key events
// into input frames, steps the simulation on every tick and draws it.
type Model struct {
	game     core.Game
	screen   *core.Screen
	store    ScoreSaver
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	pressed  core.InputFrame
	state    core.GameState
	fixed    bool
	quitting bool
	saved    bool // score already saved for the current game over
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	holdTicks := opts.HoldTicks
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:   opts.Store,
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		holds:   NewHoldTracker(holdTicks),
		pressed: core.NewInputFrame(),
		fixed:   opts.FixedSeed,
	}
}

// playHeight is the terminal height minus the rows the help view takes.
func (m Model) playHeight() int {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	return max(m.config.ScreenH-rows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key events; they take effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playHeight())
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case action == core.ActionQuit && m.state.Outcome != core.OutcomeRunning:
		// The simulation ignores input after the run ended.
		m.quitting = true
		return m, tea.Quit
	case action.IsHeld():
		m.holds.Touch(action)
	default:
		m.pressed.Press(action)
	}

	return m, nil
}

// handleResize only resizes the screen; the field is scaled at render time
// so the run goes on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick builds this tick's input frame and steps the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pressed.WasPressed(core.ActionRestart) && m.state.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pressed.Clone()
	m.holds.Apply(&frame)
	m.pressed.Clear()

	result := m.game.Step(frame)
	m.state = result.State

	if m.state.GameOver && !m.saved {
		m.saveScore()
		m.saved = true
	}

	if m.state.Outcome == core.OutcomeQuit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) restart() {
	if !m.fixed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.saved = false
	m.pressed.Clear()
	m.holds.Release()
}

// saveScore records the finished run. Storage problems never stop play.
func (m *Model) saveScore() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}

	rec := storage.ScoreRecord{
		GameID: m.game.ID(),
		Score:  m.state.Score,
		Level:  m.state.Level,
		Frames: m.state.Tick,
	}
	if r, ok := m.game.(runIdentifier); ok {
		rec.RunID = r.RunID()
	}

	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	m.logger.Info("score saved", "score", rec.Score, "level", rec.Level, "run", rec.RunID)
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.state
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())

	_, err := p.Run()
	return err
}
