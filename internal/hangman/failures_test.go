package hangman

import (
	"slices"
	"testing"
)

func TestRegisterDistinctMisses(t *testing.T) {
	letters := []rune("zxqwvy")

	for n := 0; n <= MaxMisses; n++ {
		f := NewFailureTracker()
		for _, r := range letters[:n] {
			f.RegisterMiss(r)
		}
		if f.Remaining() != MaxMisses-n {
			t.Errorf("after %d misses Remaining() = %d, want %d", n, f.Remaining(), MaxMisses-n)
		}
		if f.Exhausted() != (n == MaxMisses) {
			t.Errorf("after %d misses Exhausted() = %v", n, f.Exhausted())
		}
		if f.Stage() != n {
			t.Errorf("after %d misses Stage() = %d", n, f.Stage())
		}
	}
}

func TestRegisterDuplicateMiss(t *testing.T) {
	f := NewFailureTracker()

	if !f.RegisterMiss('z') {
		t.Fatal("first miss should be recorded")
	}
	if f.RegisterMiss('z') {
		t.Error("duplicate miss should not be recorded")
	}
	if f.Remaining() != MaxMisses-1 {
		t.Errorf("Remaining() = %d, want %d", f.Remaining(), MaxMisses-1)
	}
	if !slices.Equal(f.WrongLetters(), []rune{'z'}) {
		t.Errorf("WrongLetters() = %q, want [z]", f.WrongLetters())
	}
}

func TestWrongLettersKeepOrder(t *testing.T) {
	f := NewFailureTracker()
	for _, r := range "qazq" {
		f.RegisterMiss(r)
	}

	if got := string(f.WrongLetters()); got != "qaz" {
		t.Errorf("WrongLetters() = %q, want %q", got, "qaz")
	}

	// The returned slice is a copy.
	letters := f.WrongLetters()
	letters[0] = 'x'
	if f.Has('x') {
		t.Error("mutating WrongLetters() result should not affect the tracker")
	}
}

func TestRegisterMissAfterExhaustion(t *testing.T) {
	f := NewFailureTracker()
	for _, r := range "abcdef" {
		f.RegisterMiss(r)
	}
	if f.RegisterMiss('g') {
		t.Error("an exhausted tracker should not record more misses")
	}
	if f.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", f.Remaining())
	}
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		remaining int
		stage     int
	}{
		{6, 0}, {5, 1}, {4, 2}, {3, 3}, {2, 4}, {1, 5}, {0, 6},
		{7, 0},  // clamped
		{-1, 6}, // clamped
	}

	for _, tt := range tests {
		if got := StageFor(tt.remaining); got != tt.stage {
			t.Errorf("StageFor(%d) = %d, want %d", tt.remaining, got, tt.stage)
		}
	}
}

func TestVisibleParts(t *testing.T) {
	order := []Part{PartHead, PartTorso, PartLeftArm, PartRightArm, PartLeftLeg, PartRightLeg}

	for stage := 0; stage <= MaxMisses; stage++ {
		got := VisibleParts(stage)
		if !slices.Equal(got, order[:stage]) {
			t.Errorf("VisibleParts(%d) = %v, want %v", stage, got, order[:stage])
		}
	}

	if PartLeftArm.String() != "left arm" {
		t.Errorf("PartLeftArm.String() = %q", PartLeftArm.String())
	}
}
