package hangman

import (
	"testing"
	"unicode/utf8"
)

func TestPickAlwaysReturnsOnlyLength(t *testing.T) {
	candidates := []string{"absolute", "backpack", "calendar", "daughter"}
	src := NewWordSource(42)

	for i := 0; i < 200; i++ {
		if got := src.Pick(candidates); len(got) != 8 {
			t.Fatalf("Pick() = %q, expected an 8-letter word", got)
		}
	}
}

func TestPickRejectsOutOfRangeWords(t *testing.T) {
	candidates := []string{"cat", "waterfall"}
	src := NewWordSource(7)

	for i := 0; i < 500; i++ {
		if got := src.Pick(candidates); got != "waterfall" {
			t.Fatalf("Pick() = %q, expected the only word within bounds", got)
		}
	}
}

func TestPickBounds(t *testing.T) {
	candidates := []string{
		"four",          // too short
		"fives",         // shortest accepted
		"twelveletter",  // longest accepted
		"thirteenchars", // too long
	}
	src := NewWordSource(1)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		w := src.Pick(candidates)
		n := utf8.RuneCountInString(w)
		if n < MinWordLen || n > MaxWordLen {
			t.Fatalf("Pick() = %q with length %d, outside [%d, %d]", w, n, MinWordLen, MaxWordLen)
		}
		seen[w] = true
	}

	if !seen["fives"] || !seen["twelveletter"] {
		t.Errorf("both boundary lengths should be drawn, saw %v", seen)
	}
}

func TestPickLowercases(t *testing.T) {
	src := NewWordSource(3)
	if got := src.Pick([]string{"BoTTle"}); got != "bottle" {
		t.Errorf("Pick() = %q, expected %q", got, "bottle")
	}
}

func TestPickDeterministicWithSeed(t *testing.T) {
	candidates := []string{"apple", "grape", "melon", "peach", "lemon", "mango"}
	a := NewWordSource(99)
	b := NewWordSource(99)

	for i := 0; i < 20; i++ {
		if wa, wb := a.Pick(candidates), b.Pick(candidates); wa != wb {
			t.Fatalf("draw %d differs with the same seed: %q vs %q", i, wa, wb)
		}
	}
}
