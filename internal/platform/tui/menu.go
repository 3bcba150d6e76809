package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is what the player picked on the start screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNew
	ChoiceLoad
	ChoiceHistory
	ChoiceQuit
)

type menuItem struct {
	choice MenuChoice
	title  string
}

// MenuModel is the start screen: new game, load game, history or quit.
type MenuModel struct {
	items   []menuItem
	cursor  int
	width   int
	height  int
	keys    KeyMap
	help    help.Model
	chosen  MenuChoice
	message string
}

// NewMenuModel creates a new menu model. History is only offered when
// a history store is available.
func NewMenuModel(width, height int, withHistory bool) MenuModel {
	items := []menuItem{
		{ChoiceNew, "New game"},
		{ChoiceLoad, "Load a saved game"},
	}
	if withHistory {
		items = append(items, menuItem{ChoiceHistory, "History"})
	}
	items = append(items, menuItem{ChoiceQuit, "Quit"})

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.chosen = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = m.items[m.cursor].choice
		case key.Matches(msg, m.keys.New):
			m.chosen = ChoiceNew
		case key.Matches(msg, m.keys.Load):
			m.chosen = ChoiceLoad
		case key.Matches(msg, m.keys.History):
			if m.hasHistory() {
				m.chosen = ChoiceHistory
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) hasHistory() bool {
	for _, it := range m.items {
		if it.choice == ChoiceHistory {
			return true
		}
	}
	return false
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  H A N G M A N  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Let's play Hangman!", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Do you want to play a new game or load a saved one?", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.title, m.width))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(messageStyle.Render(m.message), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the picked entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// WithMessage returns a fresh copy of the menu showing msg.
func (m MenuModel) WithMessage(msg string) MenuModel {
	m.chosen = ChoiceNone
	m.message = msg
	return m
}
