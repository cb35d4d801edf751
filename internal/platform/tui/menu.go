package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/moonhop/internal/core"
	"github.com/vovakirdan/moonhop/internal/games/moonhop"
	"github.com/vovakirdan/moonhop/internal/registry"
	"github.com/vovakirdan/moonhop/internal/storage"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	MaxStage    int // highest selectable start stage
}

// MenuModel is the Bubble Tea model for the mode and stage picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	stage          int // selected start stage
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // set when the user starts a run
	openScoreboard bool
}

// NewMenuModel creates a new menu model. Start stages past the highest
// cleared stage stay locked.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	unlocked := 1
	if store != nil {
		if n, err := store.UnlockedStage(); err == nil {
			unlocked = n
		}
	}
	tableLen := len(moonhop.CurrentConfig().Stages)

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		maxStage := unlocked
		if g.ID != moonhop.ModeEndless.ID() {
			maxStage = min(unlocked, tableLen)
		}
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
			MaxStage:    max(maxStage, 1),
		})
	}

	return MenuModel{
		items:     items,
		stage:     1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.stage = min(m.stage, m.current().MaxStage)

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.stage = min(m.stage, m.current().MaxStage)

	case MenuActionLeft:
		if m.stage > 1 {
			m.stage--
		}

	case MenuActionRight:
		if m.stage < m.current().MaxStage {
			m.stage++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.config.StartStage = m.stage
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) current() MenuItem {
	if len(m.items) == 0 {
		return MenuItem{MaxStage: 1}
	}
	return m.items[m.cursor]
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  M O O N H O P  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Reach the moon before the water reaches you", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title + " ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	cur := m.current()
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(cur.Description), m.width))
	b.WriteString("\n\n")

	stageLine := fmt.Sprintf("Start stage: < %d >  (unlocked: %d)", m.stage, cur.MaxStage)
	b.WriteString(centerText(stageLine, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Mode  |  Left/Right: Stage  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, including the chosen start stage.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by its
// printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
