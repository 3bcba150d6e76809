package hangman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Board layout, in screen cells.
const (
	GallowsWidth  = 14
	GallowsHeight = 7
	BoardWidth    = 56
	BoardHeight   = 9

	boardTextX = 18
)

// partGlyphs places each body part relative to the gallows post.
var partGlyphs = map[Part]struct {
	dx, dy int
	r      rune
}{
	PartHead:     {10, 2, 'O'},
	PartTorso:    {10, 3, '|'},
	PartLeftArm:  {9, 3, '/'},
	PartRightArm: {11, 3, '\\'},
	PartLeftLeg:  {9, 4, '/'},
	PartRightLeg: {11, 4, '\\'},
}

// DrawGallows paints the gallows and the parts visible at stage with its
// top-left corner at (x, y).
func DrawGallows(dst *core.Screen, x, y, stage int) {
	post := x + 2

	for i := 0; i < 11; i++ {
		dst.SetColored(post+i, y, '_', core.ColorGray)
	}
	for dy := 1; dy < GallowsHeight; dy++ {
		dst.SetColored(post, y+dy, '|', core.ColorGray)
	}
	dst.SetColored(post+10, y+1, '|', core.ColorGray)

	color := core.ColorYellow
	if stage >= MaxMisses {
		color = core.ColorRed
	}
	for _, p := range VisibleParts(stage) {
		g := partGlyphs[p]
		dst.SetColored(post+g.dx, y+g.dy, g.r, color)
	}
}

// DrawBoard paints the whole game board: the gallows, the spaced-out word,
// the wrong guesses and the remaining miss count.
func DrawBoard(dst *core.Screen, v View) {
	DrawGallows(dst, 0, 0, v.Stage)

	word := v.Revealed
	wordColor := core.ColorCyan
	switch v.Status {
	case StatusWon:
		wordColor = core.ColorGreen
	case StatusLost:
		word = v.Secret
		wordColor = core.ColorRed
	}
	dst.DrawTextColored(boardTextX, 2, SpacedWord(word), wordColor)

	dst.DrawText(boardTextX, 4, "Wrong guesses:  ")
	dst.DrawTextColored(boardTextX+16, 4, FormatWrongLetters(v.WrongLetters), core.ColorRed)

	dst.DrawText(2, BoardHeight-1, RemainingLine(v.Remaining))
}

// SpacedWord separates the characters of word with spaces.
func SpacedWord(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}

// FormatWrongLetters renders wrong guesses as "[z][q]".
func FormatWrongLetters(letters []rune) string {
	var sb strings.Builder
	for _, r := range letters {
		sb.WriteRune('[')
		sb.WriteRune(r)
		sb.WriteRune(']')
	}
	return sb.String()
}

// RemainingLine is the status line shown under the board.
func RemainingLine(remaining int) string {
	if remaining == 1 {
		return "You have 1 guess left!"
	}
	return fmt.Sprintf("You have %d guesses left!", remaining)
}

// Lines shared by the front ends.
const (
	SaveHint    = `At any time, type "save" and press enter to save and exit the game!`
	GuessPrompt = "Type the letter you want to guess and press enter!"
	SavedLine   = "Game saved! Bye!"
)

// OutcomeLine is the closing message of a finished round, or "" while playing.
func OutcomeLine(v View) string {
	switch v.Status {
	case StatusWon:
		return "You won! Congratulations!"
	case StatusLost:
		return fmt.Sprintf("You lost! The word was %s! Better luck next time!", v.Secret)
	case StatusSaved:
		return SavedLine
	}
	return ""
}
