// Package console runs hangman as a plain line-by-line terminal program,
// without the full-screen interface.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/saves"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// ErrInputClosed is returned when input ends before the round does.
var ErrInputClosed = errors.New("console: input closed")

// Options holds the collaborators of a console game.
type Options struct {
	Words   []string
	Source  *hangman.WordSource
	Saves   *saves.Store
	History *storage.Store // optional
	Logger  *log.Logger    // optional
}

// Game reads commands from in and writes the board to out.
type Game struct {
	opts Options
	in   *bufio.Scanner
	out  io.Writer
	last *hangman.View
}

// New creates a console game.
func New(in io.Reader, out io.Writer, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Source == nil {
		opts.Source = hangman.NewWordSource(0)
	}
	return &Game{
		opts: opts,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run asks for a new or saved game and plays it to the end.
func (g *Game) Run() (hangman.Status, error) {
	g.println("Let's play Hangman!")
	g.println("Do you want to play a new game or load a saved one? Type new or load and press enter!")

	for {
		line, err := g.readLine()
		if err != nil {
			return hangman.StatusPlaying, err
		}
		switch hangman.NormalizeInput(line) {
		case "new":
			return g.PlayNew()
		case "load":
			return g.chooseSlot()
		}
		g.println("Please type new or load.")
	}
}

// PlayNew plays a round with a freshly picked word.
func (g *Game) PlayNew() (hangman.Status, error) {
	word := g.opts.Source.Pick(g.opts.Words)
	round := hangman.NewRound(hangman.NewSession(word), g.opts.Saves, hangman.PresenterFunc(g.present))
	return g.play(round, false)
}

// PlaySlot resumes the round saved in the named slot.
func (g *Game) PlaySlot(name string) (hangman.Status, error) {
	round, err := hangman.ResumeRound(g.opts.Saves, name, hangman.PresenterFunc(g.present))
	if err != nil {
		return hangman.StatusPlaying, err
	}
	return g.play(round, true)
}

// chooseSlot lists the save slots and re-prompts until a known one is named.
func (g *Game) chooseSlot() (hangman.Status, error) {
	names, err := g.opts.Saves.List()
	if err != nil {
		return hangman.StatusPlaying, err
	}
	if len(names) == 0 {
		g.println("There are no saved games. Starting a new one!")
		return g.PlayNew()
	}

	g.println("Saved games: " + strings.Join(names, ", "))
	for {
		g.println("Type the name of the game to load and press enter!")
		line, err := g.readLine()
		if err != nil {
			return hangman.StatusPlaying, err
		}

		status, err := g.PlaySlot(strings.TrimSpace(line))
		if errors.Is(err, hangman.ErrUnknownSaveSlot) {
			g.printf("There is no saved game named %q.\n", strings.TrimSpace(line))
			continue
		}
		return status, err
	}
}

func (g *Game) play(round *hangman.Round, resumed bool) (hangman.Status, error) {
	if g.opts.History != nil {
		round.SetRecorder(g.opts.History)
	}
	session := round.Session()
	logger := g.opts.Logger.With("session", session.ID())
	logger.Info("round started", "resumed", resumed)

	for !session.Status().Terminal() {
		g.println(hangman.GuessPrompt)
		line, err := g.readLine()
		if err != nil {
			logger.Info("input closed mid-round")
			return session.Status(), err
		}

		res, err := round.Submit(line)
		logger.Debug("guess", "input", line, "verdict", res.Verdict, "error", err)
		switch {
		case errors.Is(err, hangman.ErrInvalidGuess):
			g.println(`Please type a single letter a-z, or "save".`)
		case errors.Is(err, hangman.ErrDuplicateGuess):
			g.println("You already tried that letter.")
		case err != nil:
			return session.Status(), err
		}
	}

	if session.Status() == hangman.StatusSaved {
		if err := g.saveAs(round); err != nil {
			return hangman.StatusSaved, err
		}
	}

	logger.Info("round finished", "status", session.Status())
	g.println(hangman.OutcomeLine(session.View()))
	return session.Status(), nil
}

// saveAs prompts for a slot name until the save succeeds.
func (g *Game) saveAs(round *hangman.Round) error {
	for {
		g.printf("Type a name for your save (letters, digits or _, up to %d) and press enter!\n", saves.MaxNameLen)
		line, err := g.readLine()
		if err != nil {
			return err
		}

		err = round.SaveAs(strings.TrimSpace(line))
		if errors.Is(err, hangman.ErrInvalidSaveName) {
			g.printf("%q is not a valid name.\n", strings.TrimSpace(line))
			continue
		}
		return err
	}
}

// present prints the board whenever the visible state changed.
func (g *Game) present(v hangman.View) {
	if v.Status == hangman.StatusSaved {
		return
	}
	if g.last != nil && sameBoard(*g.last, v) {
		return
	}
	g.last = &v

	screen := core.NewScreen(hangman.BoardWidth, hangman.BoardHeight)
	hangman.DrawBoard(screen, v)

	g.println("")
	if v.Status == hangman.StatusPlaying {
		g.println(hangman.SaveHint)
	}
	for y := range screen.Height() {
		g.println(strings.TrimRight(screen.Row(y), " "))
	}
	g.println("")
}

func sameBoard(a, b hangman.View) bool {
	return a.Revealed == b.Revealed && a.Remaining == b.Remaining && a.Status == b.Status
}

func (g *Game) readLine() (string, error) {
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", fmt.Errorf("console: cannot read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return g.in.Text(), nil
}

func (g *Game) println(s string) {
	fmt.Fprintln(g.out, s)
}

func (g *Game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}
