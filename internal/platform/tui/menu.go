package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-monsters/internal/core"
	"github.com/vovakirdan/snake-monsters/internal/storage"
)

// MenuChoice is what the user picked in the launcher menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceResults
	ChoiceQuit
)

// MenuItem is one launcher entry.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Label: "Play", Choice: ChoicePlay},
	{Label: "Results", Choice: ChoiceResults},
	{Label: "Quit", Choice: ChoiceQuit},
}

// MenuModel is the launcher shown between runs.
type MenuModel struct {
	title     string
	best      int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a launcher for the game with the given title. The
// best score is read from store if one is available.
func NewMenuModel(store *storage.Store, gameID, title string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:     title,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keyMapper.MapKey(msg)
		switch {
		case isQuit, action == core.ActionBack:
			m.choice = ChoiceQuit
			return m, tea.Quit
		case action == core.ActionUp && m.cursor > 0:
			m.cursor--
		case action == core.ActionDown && m.cursor < len(menuItems)-1:
			m.cursor++
		case action == core.ActionStart, action == core.ActionPause:
			m.choice = menuItems[m.cursor].Choice
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(dimStyle.Render("Best score: "+fmt.Sprint(m.best)), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.Label
		if i == m.cursor {
			line = selStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the user picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// RunMenu shows the launcher and returns the user's choice.
func RunMenu(store *storage.Store, gameID, title string, cfg core.RuntimeConfig) (MenuChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		NewMenuModel(store, gameID, title, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return ChoiceQuit, cfg, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return ChoiceQuit, cfg, nil
	}
	return m.Choice(), m.Config(), nil
}
