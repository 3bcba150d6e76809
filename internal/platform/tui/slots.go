package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/saves"
)

// SlotPickerModel lists the save slots and lets the player pick or delete one.
type SlotPickerModel struct {
	store   *saves.Store
	names   []string
	table   table.Model
	help    help.Model
	keys    KeyMap
	width   int
	height  int
	picked  string
	back    bool
	message string
	err     error
}

// NewSlotPickerModel creates a slot picker and reads the slot list.
func NewSlotPickerModel(store *saves.Store, width, height int) SlotPickerModel {
	m := SlotPickerModel{
		store:  store,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *SlotPickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Slot", Width: saves.MaxNameLen},
		{Title: "Word", Width: 2*hangman.MaxWordLen + 1},
		{Title: "Left", Width: 5},
		{Title: "Saved", Width: 13},
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload reads the slot names and a summary of every document.
func (m *SlotPickerModel) reload() {
	names, err := m.store.List()
	if err != nil {
		m.err = err
		return
	}
	m.names = names

	rows := make([]table.Row, len(names))
	for i, name := range names {
		snap, err := m.store.Load(name)
		if err != nil {
			rows[i] = table.Row{name, "(unreadable)", "-", "-"}
			continue
		}
		rows[i] = table.Row{
			name,
			hangman.SpacedWord(snap.RevealedForm),
			strconv.Itoa(snap.RemainingMisses),
			snap.SavedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages for the slot picker.
func (m SlotPickerModel) Update(msg tea.Msg) (SlotPickerModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.picked = row[0]
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			row := m.table.SelectedRow()
			if row == nil {
				return m, nil
			}
			if err := m.store.Delete(row[0]); err != nil && !errors.Is(err, hangman.ErrUnknownSaveSlot) {
				m.err = err
				return m, nil
			}
			m.message = fmt.Sprintf("Deleted %q.", row[0])
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the slot picker.
func (m SlotPickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SAVED GAMES"), m.width))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString(centerText(hintStyle.Italic(true).Render("No saved games yet."), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.table.View())))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(messageStyle.Render(m.message), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Delete, m.keys.Back}
	b.WriteString(centerText(hintStyle.Render(m.help.ShortHelpView(bindings)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Picked returns the chosen slot name, or "".
func (m SlotPickerModel) Picked() string {
	return m.picked
}

// IsGoingBack returns true if the player left the picker.
func (m SlotPickerModel) IsGoingBack() bool {
	return m.back
}

// Err returns a storage failure hit while listing or deleting slots.
func (m SlotPickerModel) Err() error {
	return m.err
}

// WithMessage clears the pick and shows msg, for re-prompting.
func (m SlotPickerModel) WithMessage(msg string) SlotPickerModel {
	m.picked = ""
	m.message = msg
	m.reload()
	return m
}
