package hangman

import (
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"
)

// Accepted secret word length, inclusive.
const (
	MinWordLen = 5
	MaxWordLen = 12
)

// WordSource draws secret words from a candidate list.
type WordSource struct {
	rng *rand.Rand
}

// NewWordSource creates a word source. A zero seed uses the current time.
func NewWordSource(seed int64) *WordSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &WordSource{rng: rand.New(rand.NewSource(seed))}
}

// Pick draws uniformly from candidates until it finds a word whose length is
// within [MinWordLen, MaxWordLen] and returns it lower-cased.
//
// candidates must be non-empty and contain at least one word of acceptable
// length. Pick does not check this: with no acceptable word it never returns.
func (w *WordSource) Pick(candidates []string) string {
	for {
		word := strings.ToLower(candidates[w.rng.Intn(len(candidates))])
		if n := utf8.RuneCountInString(word); n >= MinWordLen && n <= MaxWordLen {
			return word
		}
	}
}
