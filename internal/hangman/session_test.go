package hangman

import (
	"errors"
	"slices"
	"testing"
)

// play submits guesses in order and fails the test on any rejection.
func play(t *testing.T, s *Session, guesses ...string) []Result {
	t.Helper()
	results := make([]Result, 0, len(guesses))
	for _, g := range guesses {
		res, err := s.Submit(g)
		if err != nil {
			t.Fatalf("Submit(%q) failed: %v", g, err)
		}
		results = append(results, res)
	}
	return results
}

func TestSessionWin(t *testing.T) {
	s := NewSession("bottle")

	results := play(t, s, "b", "o", "t", "l")
	for _, res := range results {
		if res.Verdict != VerdictHit || res.Status != StatusPlaying {
			t.Fatalf("expected a hit while playing, got %+v", res)
		}
	}
	if !slices.Equal(results[2].Positions, []int{2, 3}) {
		t.Errorf("'t' positions = %v, want [2 3]", results[2].Positions)
	}

	last := play(t, s, "e")[0]
	if last.Status != StatusWon || s.Status() != StatusWon {
		t.Errorf("expected StatusWon, got %v", s.Status())
	}
	if s.Remaining() != MaxMisses {
		t.Errorf("Remaining() = %d, want %d", s.Remaining(), MaxMisses)
	}
	if v := s.View(); v.Secret != "bottle" || v.Revealed != "bottle" {
		t.Errorf("won view = %+v", v)
	}
}

func TestSessionLoss(t *testing.T) {
	s := NewSession("apple")

	for i, g := range []string{"z", "x", "q", "w", "v", "y"} {
		res, err := s.Submit(g)
		if err != nil {
			t.Fatalf("Submit(%q) failed: %v", g, err)
		}
		if res.Verdict != VerdictMiss {
			t.Errorf("Submit(%q) verdict = %v, want miss", g, res.Verdict)
		}
		if s.Remaining() != MaxMisses-(i+1) {
			t.Errorf("after %q Remaining() = %d, want %d", g, s.Remaining(), MaxMisses-(i+1))
		}
	}

	if s.Status() != StatusLost {
		t.Errorf("expected StatusLost, got %v", s.Status())
	}
	if s.Revealed() != "_____" {
		t.Errorf("Revealed() = %q, want all placeholders", s.Revealed())
	}
	if s.Stage() != MaxMisses {
		t.Errorf("Stage() = %d, want %d", s.Stage(), MaxMisses)
	}
	if s.View().Secret != "apple" {
		t.Error("a lost view should expose the secret")
	}
}

func TestSessionRepeatedHit(t *testing.T) {
	s := NewSession("grape")

	results := play(t, s, "g", "g")
	for _, res := range results {
		if res.Verdict != VerdictHit || !slices.Equal(res.Positions, []int{0}) {
			t.Errorf("expected hit at [0], got %+v", res)
		}
	}
	if s.Revealed() != "g____" {
		t.Errorf("Revealed() = %q, want %q", s.Revealed(), "g____")
	}
	if s.Remaining() != MaxMisses {
		t.Errorf("repeated hits should not cost misses, Remaining() = %d", s.Remaining())
	}
}

func TestSessionDuplicateMiss(t *testing.T) {
	s := NewSession("grape")

	play(t, s, "z")
	if s.Remaining() != 5 {
		t.Fatalf("Remaining() = %d, want 5", s.Remaining())
	}

	res, err := s.Submit("z")
	if !errors.Is(err, ErrDuplicateGuess) {
		t.Fatalf("expected ErrDuplicateGuess, got %v", err)
	}
	if res.Status != StatusPlaying {
		t.Errorf("status = %v, want playing", res.Status)
	}
	if s.Remaining() != 5 {
		t.Errorf("duplicate miss was penalized, Remaining() = %d", s.Remaining())
	}
	if got := string(s.WrongLetters()); got != "z" {
		t.Errorf("WrongLetters() = %q, want %q", got, "z")
	}
}

func TestSessionRejectsInvalidInput(t *testing.T) {
	inputs := []string{"", "ab", "1", "?", " ", "é", "sav", "saves"}

	for _, in := range inputs {
		s := NewSession("grape")
		before := s.View()

		_, err := s.Submit(in)
		if !errors.Is(err, ErrInvalidGuess) {
			t.Errorf("Submit(%q) error = %v, want ErrInvalidGuess", in, err)
		}

		after := s.View()
		if after.Revealed != before.Revealed || after.Remaining != before.Remaining || after.Status != before.Status {
			t.Errorf("Submit(%q) mutated the session: %+v -> %+v", in, before, after)
		}
	}
}

func TestSessionNormalizesInput(t *testing.T) {
	tests := []struct {
		in     string
		letter rune
	}{
		{"G", 'g'},
		{" g\n", 'g'},
		{"ｇ", 'g'}, // full-width
	}

	for _, tt := range tests {
		s := NewSession("grape")
		res, err := s.Submit(tt.in)
		if err != nil {
			t.Fatalf("Submit(%q) failed: %v", tt.in, err)
		}
		if res.Letter != tt.letter || res.Verdict != VerdictHit {
			t.Errorf("Submit(%q) = %+v, want hit on %q", tt.in, res, tt.letter)
		}
	}
}

func TestSessionSave(t *testing.T) {
	for _, cmd := range []string{"save", "SAVE", " save \n"} {
		s := NewSession("grape")
		play(t, s, "g", "z")

		res, err := s.Submit(cmd)
		if err != nil {
			t.Fatalf("Submit(%q) failed: %v", cmd, err)
		}
		if res.Verdict != VerdictSave || s.Status() != StatusSaved {
			t.Errorf("Submit(%q) = %+v, status %v", cmd, res, s.Status())
		}
		if s.View().Secret != "" {
			t.Error("a saved view must not expose the secret")
		}
	}
}

func TestSessionTerminalRejectsInput(t *testing.T) {
	won := NewSession("grape")
	play(t, won, "g", "r", "a", "p", "e")

	lost := NewSession("grape")
	play(t, lost, "b", "c", "d", "f", "h", "i")

	saved := NewSession("grape")
	play(t, saved, "save")

	for _, s := range []*Session{won, lost, saved} {
		status := s.Status()
		res, err := s.Submit("x")
		if !errors.Is(err, ErrSessionOver) {
			t.Errorf("%v session: expected ErrSessionOver, got %v", status, err)
		}
		if res.Status != status || s.Status() != status {
			t.Errorf("%v session changed state to %v", status, s.Status())
		}
	}
}

func TestSessionWordIsLowercased(t *testing.T) {
	s := NewSession("Grape")
	play(t, s, "g", "r", "a", "p", "e")
	if s.Status() != StatusWon {
		t.Errorf("expected win on an upper-case secret, got %v", s.Status())
	}
}

func TestStatusStrings(t *testing.T) {
	if StatusPlaying.Terminal() {
		t.Error("playing should not be terminal")
	}
	for _, st := range []Status{StatusWon, StatusLost, StatusSaved} {
		if !st.Terminal() {
			t.Errorf("%v should be terminal", st)
		}
	}
	if StatusLost.String() != "lost" || VerdictMiss.String() != "miss" {
		t.Error("unexpected String() values")
	}
}
