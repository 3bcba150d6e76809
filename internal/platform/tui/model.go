// Package tui provides the Bubble Tea front end for hangman, locally and
// over SSH. It handles the start menu, save slots, history and the round itself.
package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/saves"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Env holds the collaborators a session needs.
type Env struct {
	Words   []string            // candidate words, at least one of a valid length
	Source  *hangman.WordSource // nil = seeded from the runtime config
	Saves   *saves.Store
	History *storage.Store // optional
	Logger  *log.Logger    // optional
}

type screen int

const (
	screenMenu screen = iota
	screenSlots
	screenHistory
	screenGame
)

// Model is the top-level Bubble Tea model: menu -> round -> menu.
type Model struct {
	env      Env
	config   core.RuntimeConfig
	screen   screen
	menu     MenuModel
	slots    SlotPickerModel
	history  HistoryModel
	game     GameModel
	quitting bool
	err      error
}

// NewModel creates a model that starts on the menu.
func NewModel(env Env, cfg core.RuntimeConfig) Model {
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}
	if env.Source == nil {
		env.Source = hangman.NewWordSource(cfg.Seed)
	}

	return Model{
		env:    env,
		config: cfg,
		screen: screenMenu,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH, env.History != nil),
	}
}

// StartNew skips the menu and begins a fresh round.
func (m Model) StartNew() Model {
	m.startRound(nil)
	return m
}

// Resume skips the menu and continues the round saved in the named slot.
func (m Model) Resume(name string) (Model, error) {
	if err := m.startRound(&name); err != nil {
		return m, err
	}
	return m, nil
}

// startRound builds a round, from the slot when one is named.
func (m *Model) startRound(slot *string) error {
	view := new(hangman.View)
	presenter := presentTo(view)

	var round *hangman.Round
	if slot == nil {
		word := m.env.Source.Pick(m.env.Words)
		round = hangman.NewRound(hangman.NewSession(word), m.env.Saves, presenter)
	} else {
		var err error
		round, err = hangman.ResumeRound(m.env.Saves, *slot, presenter)
		if err != nil {
			return err
		}
	}
	if m.env.History != nil {
		round.SetRecorder(m.env.History)
	}

	m.env.Logger.Info("round started", "session", view.ID, "resumed", slot != nil)
	m.game = NewGameModel(round, view, m.env.Logger, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenGame
	return nil
}

// Init starts the cursor blink when the model opens on a round.
func (m Model) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return nil
}

// Update handles messages and routes them to the current screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	switch m.screen {
	case screenSlots:
		return m.updateSlots(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceNew:
		m.startRound(nil)
		return m, m.game.Init()

	case ChoiceLoad:
		m.slots = NewSlotPickerModel(m.env.Saves, m.config.ScreenW, m.config.ScreenH)
		if err := m.slots.Err(); err != nil {
			return m.fail(err)
		}
		m.screen = screenSlots
		return m, nil

	case ChoiceHistory:
		m.history = NewHistoryModel(m.env.History, m.config.ScreenW, m.config.ScreenH)
		if err := m.history.Err(); err != nil {
			return m.fail(err)
		}
		m.screen = screenHistory
		return m, nil
	}

	return m, cmd
}

func (m Model) updateSlots(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.slots, cmd = m.slots.Update(msg)

	if err := m.slots.Err(); err != nil {
		return m.fail(err)
	}
	if m.slots.IsGoingBack() {
		return m.toMenu(""), nil
	}

	if name := m.slots.Picked(); name != "" {
		err := m.startRound(&name)
		switch {
		case errors.Is(err, hangman.ErrUnknownSaveSlot):
			m.slots = m.slots.WithMessage(fmt.Sprintf("There is no saved game named %q.", name))
			return m, nil
		case err != nil:
			return m.fail(err)
		}
		return m, m.game.Init()
	}

	return m, cmd
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)

	if m.history.IsGoingBack() {
		return m.toMenu(""), nil
	}
	return m, cmd
}

func (m Model) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.game, cmd = m.game.Update(msg)

	if err := m.game.Err(); err != nil {
		return m.fail(err)
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.IsGoingBack() {
		line := ""
		if m.game.Status() == hangman.StatusPlaying {
			line = "Round abandoned."
		}
		return m.toMenu(line), nil
	}

	return m, cmd
}

// toMenu returns to a fresh menu.
func (m Model) toMenu(message string) Model {
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.env.History != nil).WithMessage(message)
	m.screen = screenMenu
	return m
}

// fail records a storage failure and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.env.Logger.Error("storage failure", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSlots:
		return m.slots.View()
	case screenHistory:
		return m.history.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// Err returns the failure that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given model and returns the
// storage failure that ended it, if any.
func Run(model Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok {
		return m.Err()
	}
	return nil
}
