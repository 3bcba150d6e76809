package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// maxHistoryRows is how many rounds the history screen loads.
const maxHistoryRows = 100

// HistoryModel shows the finished rounds recorded in the history store.
type HistoryModel struct {
	store  *storage.Store
	stats  *storage.Stats
	rounds []storage.RoundRecord
	table  table.Model
	help   help.Model
	keys   KeyMap
	width  int
	height int
	back   bool
	err    error
}

// NewHistoryModel creates a history screen and loads the rounds.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Word", Width: hangman.MaxWordLen},
		{Title: "Result", Width: 6},
		{Title: "Misses", Width: 6},
		{Title: "Wrong", Width: 3 * hangman.MaxMisses},
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

// load reads the stats and the latest rounds.
func (m *HistoryModel) load() {
	if m.store == nil {
		return
	}

	stats, err := m.store.Stats()
	if err != nil {
		m.err = err
		return
	}
	rounds, err := m.store.RecentRounds(maxHistoryRows)
	if err != nil {
		m.err = err
		return
	}
	m.stats = stats
	m.rounds = rounds
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Word,
			r.Outcome,
			strconv.Itoa(r.Misses),
			hangman.FormatWrongLetters([]rune(r.WrongLetters)),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit) {
			m.back = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HISTORY"), m.width))
	b.WriteString("\n\n")

	if m.stats != nil {
		line := fmt.Sprintf("Played %d   Won %d   Lost %d", m.stats.Played, m.stats.Won, m.stats.Lost)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n\n")
	}

	if len(m.rounds) == 0 {
		emptyStyle := hintStyle.Italic(true).Padding(1, 4)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			emptyStyle.Render("No rounds recorded yet.\nFinish a game to start your history!")))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.table.View())))
	}
	b.WriteString("\n\n")

	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Back}
	b.WriteString(centerText(hintStyle.Render(m.help.ShortHelpView(bindings)), m.width))
	b.WriteString("\n")

	return b.String()
}

// IsGoingBack returns true if the player left the screen.
func (m HistoryModel) IsGoingBack() bool {
	return m.back
}

// Err returns a storage failure hit while loading.
func (m HistoryModel) Err() error {
	return m.err
}
