package hangman

import (
	"slices"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// MaxMisses is the number of distinct wrong letters that ends a round.
const MaxMisses = 6

// FailureTracker counts the remaining misses and remembers the distinct wrong
// letters in the order they were guessed.
type FailureTracker struct {
	remaining int
	wrong     []rune
}

// NewFailureTracker creates a tracker with the full miss budget.
func NewFailureTracker() *FailureTracker {
	return &FailureTracker{remaining: MaxMisses}
}

// RegisterMiss records a wrong letter and consumes one miss.
// A letter that is already recorded costs nothing and returns false.
func (f *FailureTracker) RegisterMiss(letter rune) bool {
	if f.Has(letter) || f.remaining == 0 {
		return false
	}
	f.wrong = append(f.wrong, letter)
	f.remaining--
	return true
}

// Has reports whether letter was already recorded as wrong.
func (f *FailureTracker) Has(letter rune) bool {
	return slices.Contains(f.wrong, letter)
}

// Remaining returns how many more misses are allowed.
func (f *FailureTracker) Remaining() int {
	return f.remaining
}

// WrongLetters returns the wrong letters in guess order.
func (f *FailureTracker) WrongLetters() []rune {
	return slices.Clone(f.wrong)
}

// Exhausted reports whether the miss budget is used up.
func (f *FailureTracker) Exhausted() bool {
	return f.remaining == 0
}

// Stage returns the current gallows stage.
func (f *FailureTracker) Stage() int {
	return StageFor(f.remaining)
}

// StageFor maps a remaining-miss count to a gallows stage in [0, MaxMisses].
func StageFor(remaining int) int {
	return core.Clamp(MaxMisses-remaining, 0, MaxMisses)
}

// Part is a body part of the gallows figure. Parts appear one per miss in
// declaration order, so a part's value is the stage at which it shows up.
type Part int

const (
	PartHead Part = iota + 1
	PartTorso
	PartLeftArm
	PartRightArm
	PartLeftLeg
	PartRightLeg
)

// String returns a human-readable name for the part.
func (p Part) String() string {
	switch p {
	case PartHead:
		return "head"
	case PartTorso:
		return "torso"
	case PartLeftArm:
		return "left arm"
	case PartRightArm:
		return "right arm"
	case PartLeftLeg:
		return "left leg"
	case PartRightLeg:
		return "right leg"
	default:
		return "unknown"
	}
}

// Visible reports whether the part is drawn at the given stage.
func (p Part) Visible(stage int) bool {
	return stage >= int(p)
}

// VisibleParts returns the parts drawn at the given stage, in reveal order.
func VisibleParts(stage int) []Part {
	var parts []Part
	for p := PartHead; p <= PartRightLeg; p++ {
		if p.Visible(stage) {
			parts = append(parts, p)
		}
	}
	return parts
}
