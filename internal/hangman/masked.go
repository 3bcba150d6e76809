package hangman

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder marks an unrevealed position of the secret word.
const Placeholder = '_'

// MaskedWord pairs the secret word with its progressively revealed form.
// Both always have the same length and a revealed position is never masked again.
type MaskedWord struct {
	secret   []rune
	revealed []rune
}

// NewMaskedWord creates a masked word with every position unrevealed.
// The secret is lower-cased.
func NewMaskedWord(secret string) *MaskedWord {
	m := &MaskedWord{secret: []rune(strings.ToLower(secret))}
	m.revealed = make([]rune, len(m.secret))
	for i := range m.revealed {
		m.revealed[i] = Placeholder
	}
	return m
}

// restoreMaskedWord rebuilds a masked word from a saved revealed form.
// A letter is either shown at every position it occupies or at none.
func restoreMaskedWord(secret, revealed string) (*MaskedWord, error) {
	if secret != strings.ToLower(secret) {
		return nil, fmt.Errorf("secret word %q is not lower-case", secret)
	}
	if utf8.RuneCountInString(secret) != utf8.RuneCountInString(revealed) {
		return nil, fmt.Errorf("revealed form %q does not match the secret length", revealed)
	}

	m := &MaskedWord{secret: []rune(secret), revealed: []rune(revealed)}
	for i, r := range m.revealed {
		if r != Placeholder && r != m.secret[i] {
			return nil, fmt.Errorf("revealed form %q disagrees with the secret at position %d", revealed, i)
		}
	}
	for i, r := range m.revealed {
		if r != Placeholder {
			continue
		}
		if slices.Contains(m.revealed, m.secret[i]) {
			return nil, fmt.Errorf("revealed form %q hides %q at position %d", revealed, m.secret[i], i)
		}
	}
	return m, nil
}

// Reveal uncovers every position holding letter and returns their indices.
// An empty result means the letter is not in the word. Revealing a letter
// again reports the same indices and leaves the revealed form unchanged.
func (m *MaskedWord) Reveal(letter rune) []int {
	letter = unicode.ToLower(letter)

	var positions []int
	for i, r := range m.secret {
		if r == letter {
			m.revealed[i] = r
			positions = append(positions, i)
		}
	}
	return positions
}

// Complete reports whether no placeholder remains.
func (m *MaskedWord) Complete() bool {
	return !slices.Contains(m.revealed, Placeholder)
}

// Secret returns the secret word.
func (m *MaskedWord) Secret() string {
	return string(m.secret)
}

// Revealed returns the revealed form, e.g. "b_tt__".
func (m *MaskedWord) Revealed() string {
	return string(m.revealed)
}

// Len returns the word length in characters.
func (m *MaskedWord) Len() int {
	return len(m.secret)
}
