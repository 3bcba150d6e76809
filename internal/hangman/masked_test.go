package hangman

import (
	"slices"
	"testing"
)

func TestNewMaskedWordIsHidden(t *testing.T) {
	for _, secret := range []string{"a", "apple", "twelveletter"} {
		m := NewMaskedWord(secret)
		if m.Complete() {
			t.Errorf("fresh MaskedWord(%q) should not be complete", secret)
		}
		if len(m.Revealed()) != len(secret) {
			t.Errorf("revealed %q should have the secret length %d", m.Revealed(), len(secret))
		}
		for _, r := range m.Revealed() {
			if r != Placeholder {
				t.Errorf("fresh MaskedWord(%q) revealed %q", secret, m.Revealed())
				break
			}
		}
	}
}

func TestReveal(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		letter    rune
		positions []int
		revealed  string
	}{
		{"single occurrence", "grape", 'g', []int{0}, "g____"},
		{"repeated letter", "bottle", 't', []int{2, 3}, "__tt__"},
		{"first and last", "level", 'l', []int{0, 4}, "l___l"},
		{"absent letter", "apple", 'z', nil, "_____"},
		{"upper-case guess", "apple", 'P', []int{1, 2}, "_pp__"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaskedWord(tt.secret)
			got := m.Reveal(tt.letter)
			if !slices.Equal(got, tt.positions) {
				t.Errorf("Reveal(%q) = %v, want %v", tt.letter, got, tt.positions)
			}
			if m.Revealed() != tt.revealed {
				t.Errorf("Revealed() = %q, want %q", m.Revealed(), tt.revealed)
			}
		})
	}
}

func TestRevealEveryLetterCompletes(t *testing.T) {
	m := NewMaskedWord("bottle")
	for _, r := range "botle" {
		m.Reveal(r)
	}

	if !m.Complete() {
		t.Fatalf("word should be complete, revealed %q", m.Revealed())
	}

	before := m.Revealed()
	for _, r := range "bottlez" {
		m.Reveal(r)
	}
	if m.Revealed() != before {
		t.Errorf("further reveals changed the word: %q -> %q", before, m.Revealed())
	}
}

func TestUpperCaseSecretCanComplete(t *testing.T) {
	m := NewMaskedWord("Grape")
	if m.Secret() != "grape" {
		t.Errorf("Secret() = %q, want %q", m.Secret(), "grape")
	}
	for _, r := range "grape" {
		m.Reveal(r)
	}
	if !m.Complete() {
		t.Errorf("word should be complete, revealed %q", m.Revealed())
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	m := NewMaskedWord("grape")
	first := m.Reveal('g')
	second := m.Reveal('g')

	if !slices.Equal(first, []int{0}) || !slices.Equal(second, []int{0}) {
		t.Errorf("both reveals should return [0], got %v and %v", first, second)
	}
	if m.Revealed() != "g____" {
		t.Errorf("Revealed() = %q, want %q", m.Revealed(), "g____")
	}
}

func TestRestoreMaskedWord(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		revealed string
		wantErr  bool
	}{
		{"valid partial", "bottle", "b_tt__", false},
		{"all hidden", "bottle", "______", false},
		{"length mismatch", "bottle", "b_tt_", true},
		{"wrong letter", "bottle", "x_____", true},
		{"letter half revealed", "bottle", "b_t___", true},
		{"upper-case secret", "Bottle", "______", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := restoreMaskedWord(tt.secret, tt.revealed)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Revealed() != tt.revealed || m.Secret() != tt.secret {
				t.Errorf("restored %q/%q, want %q/%q", m.Secret(), m.Revealed(), tt.secret, tt.revealed)
			}
		})
	}
}
