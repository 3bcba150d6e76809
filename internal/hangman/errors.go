package hangman

import "errors"

// Rejections returned by Session.Submit. None of them change session state;
// the input loop is expected to re-prompt.
var (
	ErrInvalidGuess   = errors.New("hangman: guess must be a single letter a-z")
	ErrDuplicateGuess = errors.New("hangman: letter was already guessed wrong")
	ErrSessionOver    = errors.New("hangman: session is over")
)

// Save slot errors. Storage implementations wrap these so callers can tell a
// recoverable naming problem from a storage failure.
var (
	ErrNotSaving       = errors.New("hangman: session is not waiting to be saved")
	ErrInvalidSaveName = errors.New("hangman: invalid save name")
	ErrUnknownSaveSlot = errors.New("hangman: unknown save slot")
	ErrCorruptSave     = errors.New("hangman: corrupt save")
)
