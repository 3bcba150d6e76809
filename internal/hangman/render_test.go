package hangman

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

func TestDrawGallowsStages(t *testing.T) {
	tests := []struct {
		stage int
		rows  []string
	}{
		{0, []string{
			"  ___________ ",
			"  |         | ",
			"  |           ",
			"  |           ",
			"  |           ",
		}},
		{3, []string{
			"  ___________ ",
			"  |         | ",
			"  |         O ",
			"  |        /| ",
			"  |           ",
		}},
		{6, []string{
			"  ___________ ",
			"  |         | ",
			"  |         O ",
			"  |        /|\\",
			"  |        / \\",
		}},
	}

	for _, tt := range tests {
		s := core.NewScreen(GallowsWidth, GallowsHeight)
		DrawGallows(s, 0, 0, tt.stage)

		for y, want := range tt.rows {
			if got := s.Row(y); got != want {
				t.Errorf("stage %d row %d = %q, want %q", tt.stage, y, got, want)
			}
		}
	}
}

func TestDrawGallowsColorsOnLoss(t *testing.T) {
	s := core.NewScreen(GallowsWidth, GallowsHeight)
	DrawGallows(s, 0, 0, MaxMisses)

	if c := s.GetCell(12, 2); c.Rune != 'O' || c.Color != core.ColorRed {
		t.Errorf("head on a lost board = %+v, want red 'O'", c)
	}
}

func TestDrawBoard(t *testing.T) {
	s := NewSession("bottle")
	play(t, s, "t", "z", "q")

	screen := core.NewScreen(BoardWidth, BoardHeight)
	DrawBoard(screen, s.View())
	out := screen.String()

	for _, want := range []string{"_ _ t t _ _", "Wrong guesses:  [z][q]", "You have 4 guesses left!"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
}

func TestDrawBoardShowsSecretOnLoss(t *testing.T) {
	s := NewSession("apple")
	play(t, s, "z", "x", "q", "w", "v", "y")

	screen := core.NewScreen(BoardWidth, BoardHeight)
	DrawBoard(screen, s.View())

	if !strings.Contains(screen.String(), "a p p l e") {
		t.Errorf("lost board should reveal the word:\n%s", screen.String())
	}
	if !strings.Contains(screen.String(), "[z][x][q][w][v][y]") {
		t.Errorf("all six wrong guesses should fit on the board:\n%s", screen.String())
	}
}

func TestFormatting(t *testing.T) {
	if got := SpacedWord("b_t"); got != "b _ t" {
		t.Errorf("SpacedWord = %q", got)
	}
	if got := FormatWrongLetters([]rune("zq")); got != "[z][q]" {
		t.Errorf("FormatWrongLetters = %q", got)
	}
	if got := RemainingLine(1); got != "You have 1 guess left!" {
		t.Errorf("RemainingLine(1) = %q", got)
	}
}

func TestOutcomeLine(t *testing.T) {
	tests := []struct {
		view View
		want string
	}{
		{View{Status: StatusPlaying}, ""},
		{View{Status: StatusWon, Secret: "bottle"}, "You won! Congratulations!"},
		{View{Status: StatusLost, Secret: "apple"}, "You lost! The word was apple! Better luck next time!"},
		{View{Status: StatusSaved}, "Game saved! Bye!"},
	}

	for _, tt := range tests {
		t.Run(tt.view.Status.String(), func(t *testing.T) {
			if got := OutcomeLine(tt.view); got != tt.want {
				t.Errorf("OutcomeLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
