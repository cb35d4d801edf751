package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonhop/internal/core"
	"github.com/vovakirdan/moonhop/internal/registry"
	"github.com/vovakirdan/moonhop/internal/storage"
)

// runReporter is implemented by games that can describe a finished run.
type runReporter interface {
	Won() bool
	Elapsed() float64
	StagesPlayed() int
}

// Options configure a GameModel.
type Options struct {
	Store  *storage.Store // optional
	Logger *log.Logger    // optional; session events are logged at debug level
	// Standalone models quit the program on Back; session models hand
	// control back to the menu.
	Standalone bool
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      *heldInput
	help       help.Model
	gameState  core.GameState
	standalone bool
	quitting   bool
	backToMenu bool
	runSaved   bool // whether the run has been saved for the current game over
}

// NewGameModel creates a model for game. The screen keeps two rows for the
// help line below the game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      opts.Store,
		logger:     logger.WithPrefix(game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		input:      newHeldInput(),
		help:       h,
		standalone: opts.Standalone,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "stage", m.game.State().Stage, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	m.input.Press(action)
	return m, nil
}

// handleTick processes one simulation tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.input.Frame())
	m.gameState = result.State
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.input.Reset()
		m.logger.Debug("run restarted")
	}

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs a lifecycle event and persists what it records.
func (m *GameModel) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventEelCollected:
		m.logger.Debug("eel collected", "stage", ev.Stage, "points", ev.Points)
	case core.EventStageCleared:
		m.logger.Debug("stage cleared", "stage", ev.Stage, "points", ev.Points, "time", fmt.Sprintf("%.2fs", ev.Time))
		if m.store != nil {
			if err := m.store.RecordClear(ev.Stage, ev.Points, ev.Time); err != nil {
				m.logger.Warn("could not record stage clear", "error", err)
			}
		}
	case core.EventActorDied:
		m.logger.Debug("actor died", "stage", ev.Stage, "lives", ev.LivesLeft)
		m.input.Reset()
	case core.EventGameOver:
		m.logger.Debug("game over", "stage", ev.Stage, "score", ev.Points)
		m.saveRun()
	}
}

// saveRun stores the finished run once.
func (m *GameModel) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		Mode:   m.game.ID(),
		Score:  m.gameState.Score,
		Stage:  m.gameState.Stage,
		Stages: 1,
	}
	if r, ok := m.game.(runReporter); ok {
		run.Won = r.Won()
		run.Duration = r.Elapsed()
		run.Stages = r.StagesPlayed()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".moonhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game standalone until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
