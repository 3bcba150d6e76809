package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "red", core.ColorRed)
	s.DrawTextColored(4, 1, "cyan", core.ColorCyan)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "plain") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "red") || !strings.Contains(lines[1], "cyan") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderBoard(t *testing.T) {
	s := hangman.NewSession("bottle")
	s.Submit("t")
	s.Submit("z")

	out := renderBoard(s.View())
	for _, want := range []string{"_ _ t t _ _", "Wrong guesses:", "[z]", "You have 5 guesses left!", "O"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("text wider than the width should be unchanged, got %q", got)
	}
}
