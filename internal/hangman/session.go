// Package hangman implements the hangman game: word selection, the masked
// word, miss tracking, the round state machine and its save snapshots.
// It has no terminal dependencies; front ends live under internal/platform.
package hangman

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/unicode/norm"
)

// SaveCommand is the input that ends a round so it can be saved.
const SaveCommand = "save"

// Status is the state of a session.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
	StatusSaved
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session accepts no further guesses.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// Verdict classifies an accepted input.
type Verdict int

const (
	VerdictHit Verdict = iota
	VerdictMiss
	VerdictSave
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictHit:
		return "hit"
	case VerdictMiss:
		return "miss"
	case VerdictSave:
		return "save"
	default:
		return "unknown"
	}
}

// Result describes the outcome of an accepted input.
type Result struct {
	Verdict   Verdict
	Letter    rune  // Guessed letter, zero for VerdictSave
	Positions []int // Revealed indices on a hit
	Status    Status
}

// View is everything the presentation layer needs after a transition.
// Secret is only filled once the round is won or lost.
type View struct {
	ID           string
	Revealed     string
	Stage        int
	WrongLetters []rune
	Remaining    int
	Status       Status
	Secret       string
}

// Session runs one round of hangman.
type Session struct {
	id       ulid.ULID
	word     *MaskedWord
	failures *FailureTracker
	status   Status
}

// NewSession starts a round for the given secret word.
func NewSession(secret string) *Session {
	return &Session{
		id:       newSessionID(),
		word:     NewMaskedWord(strings.ToLower(secret)),
		failures: NewFailureTracker(),
		status:   StatusPlaying,
	}
}

func newSessionID() ulid.ULID {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

// Submit feeds one line of player input into the round.
//
// "save" moves the session to StatusSaved. Anything that is not a single
// letter a-z is rejected with ErrInvalidGuess, and a letter that was already
// guessed wrong is rejected with ErrDuplicateGuess; rejected input never
// changes the session. A hit that completes the word wins the round and the
// miss that exhausts the budget loses it.
func (s *Session) Submit(raw string) (Result, error) {
	if s.status.Terminal() {
		return Result{Status: s.status}, ErrSessionOver
	}

	input := NormalizeInput(raw)
	if input == SaveCommand {
		s.status = StatusSaved
		return Result{Verdict: VerdictSave, Status: s.status}, nil
	}

	letter, ok := parseLetter(input)
	if !ok {
		return Result{Status: s.status}, fmt.Errorf("%w: %q", ErrInvalidGuess, raw)
	}

	// Checked before Reveal so a repeated miss is never counted twice.
	if s.failures.Has(letter) {
		return Result{Status: s.status}, fmt.Errorf("%w: %q", ErrDuplicateGuess, letter)
	}

	positions := s.word.Reveal(letter)
	if len(positions) > 0 {
		if s.word.Complete() {
			s.status = StatusWon
		}
		return Result{Verdict: VerdictHit, Letter: letter, Positions: positions, Status: s.status}, nil
	}

	s.failures.RegisterMiss(letter)
	if s.failures.Exhausted() {
		s.status = StatusLost
	}
	return Result{Verdict: VerdictMiss, Letter: letter, Status: s.status}, nil
}

// NormalizeInput trims a raw input line, folds compatibility forms such as
// full-width letters to their plain equivalent and lower-cases it.
func NormalizeInput(raw string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(raw)))
}

// parseLetter accepts exactly one letter a-z.
func parseLetter(input string) (rune, bool) {
	if len(input) != 1 {
		return 0, false
	}
	r := rune(input[0])
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return r, true
}

// ID returns the session identifier. It is kept across save and restore.
func (s *Session) ID() string {
	return s.id.String()
}

// Status returns the current session state.
func (s *Session) Status() Status {
	return s.status
}

// Revealed returns the revealed form of the secret word.
func (s *Session) Revealed() string {
	return s.word.Revealed()
}

// Remaining returns how many misses are left.
func (s *Session) Remaining() int {
	return s.failures.Remaining()
}

// WrongLetters returns the distinct wrong guesses in order.
func (s *Session) WrongLetters() []rune {
	return s.failures.WrongLetters()
}

// Stage returns the current gallows stage.
func (s *Session) Stage() int {
	return s.failures.Stage()
}

// View returns the presentation state of the session.
func (s *Session) View() View {
	v := View{
		ID:           s.ID(),
		Revealed:     s.word.Revealed(),
		Stage:        s.failures.Stage(),
		WrongLetters: s.failures.WrongLetters(),
		Remaining:    s.failures.Remaining(),
		Status:       s.status,
	}
	if s.status == StatusWon || s.status == StatusLost {
		v.Secret = s.word.Secret()
	}
	return v
}
