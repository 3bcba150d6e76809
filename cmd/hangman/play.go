package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/console"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var (
	flagPlain bool
	flagNew   bool
	flagLoad  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game. Without flags a menu asks for a new or a saved game.

Controls:
  a-z + Enter  - Guess a letter
  save + Enter - Save the round to a named slot
  Esc          - Back to the menu
  Ctrl+C       - Quit

Examples:
  hangman play
  hangman play --new --seed 42
  hangman play --load monday
  hangman play --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-by-line mode without the full-screen UI")
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Skip the menu and start a new round")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Skip the menu and resume the named save slot")
	playCmd.MarkFlagsMutuallyExclusive("new", "load")
}

func runPlay(_ *cobra.Command, _ []string) {
	list, err := loadWords()
	if err != nil {
		fatal("%v", err)
	}

	store, err := openSaves()
	if err != nil {
		fatal("%v", err)
	}

	// Log to a file so the board output stays clean
	logOut := io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "hangman")

	history := openHistory(logger)
	if history != nil {
		defer history.Close()
	}

	if flagPlain {
		opts := console.Options{
			Words:   list,
			Source:  hangman.NewWordSource(flagSeed),
			Saves:   store,
			History: history,
			Logger:  logger,
		}
		if err := runPlain(console.New(os.Stdin, os.Stdout, opts)); err != nil {
			fatal("%v", err)
		}
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	model := tui.NewModel(tui.Env{
		Words:   list,
		Source:  hangman.NewWordSource(flagSeed),
		Saves:   store,
		History: history,
		Logger:  logger,
	}, rtc)

	switch {
	case flagNew:
		model = model.StartNew()
	case flagLoad != "":
		model, err = model.Resume(flagLoad)
		if err != nil {
			fatal("%v", err)
		}
	}

	if err := tui.Run(model); err != nil {
		fatal("%v", err)
	}
}

// runPlain plays one round. A won, lost or saved round is a success;
// running out of input is not an error either.
func runPlain(game *console.Game) error {
	var err error
	switch {
	case flagNew:
		_, err = game.PlayNew()
	case flagLoad != "":
		_, err = game.PlaySlot(flagLoad)
	default:
		_, err = game.Run()
	}
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	return err
}
