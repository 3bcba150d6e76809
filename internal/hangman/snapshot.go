package hangman

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// SnapshotVersion is the save document format written by this package.
// Older documents that only carried the word and the miss count are not read.
const SnapshotVersion = 2

// Snapshot is the persisted state of a session in the middle of a round.
// Stage is stored for readers of the document; Restore recomputes it from
// RemainingMisses.
type Snapshot struct {
	Version         int       `yaml:"version"`
	ID              string    `yaml:"id"`
	SecretWord      string    `yaml:"secret_word"`
	RevealedForm    string    `yaml:"revealed_form"`
	RemainingMisses int       `yaml:"remaining_misses"`
	WrongLetters    []string  `yaml:"wrong_letters"`
	Stage           int       `yaml:"stage"`
	SavedAt         time.Time `yaml:"saved_at"`
}

// Snapshot captures the session state for saving.
func (s *Session) Snapshot() Snapshot {
	wrong := s.failures.WrongLetters()
	letters := make([]string, len(wrong))
	for i, r := range wrong {
		letters[i] = string(r)
	}

	return Snapshot{
		Version:         SnapshotVersion,
		ID:              s.ID(),
		SecretWord:      s.word.Secret(),
		RevealedForm:    s.word.Revealed(),
		RemainingMisses: s.failures.Remaining(),
		WrongLetters:    letters,
		Stage:           s.failures.Stage(),
		SavedAt:         time.Now().UTC().Truncate(time.Second),
	}
}

// Restore rebuilds a playing session from a snapshot. The result continues
// exactly where the saved round stopped. Inconsistent documents are rejected
// with ErrCorruptSave.
func Restore(snap Snapshot) (*Session, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrCorruptSave, snap.Version)
	}

	id := newSessionID()
	if snap.ID != "" {
		parsed, err := ulid.ParseStrict(snap.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad id %q: %v", ErrCorruptSave, snap.ID, err)
		}
		id = parsed
	}

	if snap.SecretWord == "" {
		return nil, fmt.Errorf("%w: empty secret word", ErrCorruptSave)
	}

	word, err := restoreMaskedWord(snap.SecretWord, snap.RevealedForm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if word.Complete() {
		return nil, fmt.Errorf("%w: word is already fully revealed", ErrCorruptSave)
	}

	failures, err := restoreFailures(word, snap.WrongLetters, snap.RemainingMisses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}

	return &Session{
		id:       id,
		word:     word,
		failures: failures,
		status:   StatusPlaying,
	}, nil
}

// restoreFailures replays the saved wrong letters into a fresh tracker and
// checks the result against the saved miss count.
func restoreFailures(word *MaskedWord, letters []string, remaining int) (*FailureTracker, error) {
	if remaining < 1 || remaining > MaxMisses {
		return nil, fmt.Errorf("remaining misses %d out of range 1..%d", remaining, MaxMisses)
	}

	if len(letters) >= MaxMisses {
		return nil, fmt.Errorf("%d wrong letters would have ended the round", len(letters))
	}

	secret := word.Secret()
	f := NewFailureTracker()
	for _, s := range letters {
		if utf8.RuneCountInString(s) != 1 {
			return nil, fmt.Errorf("wrong letter %q is not a single character", s)
		}
		letter, ok := parseLetter(s)
		if !ok {
			return nil, fmt.Errorf("wrong letter %q is not a letter a-z", s)
		}
		for _, r := range secret {
			if r == letter {
				return nil, fmt.Errorf("wrong letter %q occurs in the secret word", s)
			}
		}
		if !f.RegisterMiss(letter) {
			return nil, fmt.Errorf("wrong letter %q is listed twice", s)
		}
	}

	if f.Remaining() != remaining {
		return nil, fmt.Errorf("remaining misses %d does not match %d wrong letters", remaining, len(letters))
	}
	return f, nil
}
