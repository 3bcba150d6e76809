package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/saves"
)

type gamePhase int

const (
	phaseGuess gamePhase = iota
	phaseName
	phaseOver
)

// GameModel plays one round: guessing, naming the save slot, and the end screen.
type GameModel struct {
	round   *hangman.Round
	view    *hangman.View // written by the round's presenter
	input   textinput.Model
	keys    InputKeyMap
	help    help.Model
	logger  *log.Logger
	phase   gamePhase
	message string
	width   int
	height  int
	back    bool
	quit    bool
	err     error
}

// presentTo returns a presenter that stores every view in dst.
func presentTo(dst *hangman.View) hangman.Presenter {
	return hangman.PresenterFunc(func(v hangman.View) {
		*dst = v
	})
}

// NewGameModel wraps a round whose presenter writes into view.
func NewGameModel(round *hangman.Round, view *hangman.View, logger *log.Logger, width, height int) GameModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "letter"
	ti.CharLimit = 8
	ti.Width = 12
	ti.Focus()

	return GameModel{
		round:  round,
		view:   view,
		input:  ti,
		keys:   DefaultInputKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m GameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the round.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			if m.phase != phaseOver {
				m.logger.Info("round abandoned", "session", m.view.ID)
			}
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit(), nil
		}

		if m.phase == phaseOver {
			if msg.String() == "q" {
				m.quit = true
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.phase == phaseOver {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the text field to the round.
func (m GameModel) submit() GameModel {
	switch m.phase {
	case phaseGuess:
		return m.submitGuess()
	case phaseName:
		return m.submitName()
	default:
		m.back = true
		return m
	}
}

func (m GameModel) submitGuess() GameModel {
	line := m.input.Value()
	m.input.Reset()

	res, err := m.round.Submit(line)
	m.logger.Debug("guess", "session", m.view.ID, "input", line, "verdict", res.Verdict, "error", err)

	switch {
	case errors.Is(err, hangman.ErrInvalidGuess):
		m.message = `Please type a single letter a-z, or "save".`
		return m
	case errors.Is(err, hangman.ErrDuplicateGuess):
		m.message = "You already tried that letter."
		return m
	case err != nil:
		m.message = err.Error()
		return m
	}

	switch res.Verdict {
	case hangman.VerdictHit:
		m.message = fmt.Sprintf("Good guess! %q is in the word.", res.Letter)
	case hangman.VerdictMiss:
		m.message = fmt.Sprintf("No %q in the word.", res.Letter)
	}

	switch res.Status {
	case hangman.StatusSaved:
		m.phase = phaseName
		m.message = fmt.Sprintf("Name your save (letters, digits or _, up to %d).", saves.MaxNameLen)
		m.input.Placeholder = "slot name"
		m.input.CharLimit = saves.MaxNameLen + 8
		m.input.Width = saves.MaxNameLen + 2
	case hangman.StatusWon, hangman.StatusLost:
		m.finish(hangman.OutcomeLine(*m.view))
		m.logger.Info("round finished", "session", m.view.ID, "status", res.Status, "word", m.view.Secret)
	}
	return m
}

func (m GameModel) submitName() GameModel {
	name := strings.TrimSpace(m.input.Value())

	err := m.round.SaveAs(name)
	if errors.Is(err, hangman.ErrInvalidSaveName) {
		m.message = fmt.Sprintf("%q is not a valid name. Use letters, digits or _, up to %d.", name, saves.MaxNameLen)
		m.input.Reset()
		return m
	}
	if err != nil {
		m.logger.Error("cannot save round", "slot", name, "error", err)
		m.err = err
		return m
	}

	m.logger.Info("round saved", "session", m.view.ID, "slot", name)
	m.finish(hangman.SavedLine)
	return m
}

func (m *GameModel) finish(line string) {
	m.phase = phaseOver
	m.message = line
	m.input.Blur()
}

// View renders the round.
func (m GameModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	if m.phase == phaseGuess {
		b.WriteString(hintStyle.Render(hangman.SaveHint))
	}
	b.WriteString("\n\n")

	b.WriteString(renderBoard(*m.view))
	b.WriteString("\n\n")

	if m.message != "" {
		style := messageStyle
		if m.view.Status == hangman.StatusLost {
			style = errorStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	switch m.phase {
	case phaseGuess:
		b.WriteString(hangman.GuessPrompt)
		b.WriteString("\n")
		b.WriteString(m.input.View())
	case phaseName:
		b.WriteString(m.input.View())
	case phaseOver:
		b.WriteString(hintStyle.Render("Press enter for the menu or q to quit."))
	}
	b.WriteString("\n\n")

	if m.phase != phaseOver {
		b.WriteString(hintStyle.Render(m.help.View(m.keys)))
		b.WriteString("\n")
	}

	return b.String()
}

// IsGoingBack returns true if the player returned to the menu.
func (m GameModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if the player quit from the end screen.
func (m GameModel) IsQuitting() bool {
	return m.quit
}

// Err returns a storage failure hit while saving.
func (m GameModel) Err() error {
	return m.err
}

// Status returns the status of the round.
func (m GameModel) Status() hangman.Status {
	return m.view.Status
}
