// Package words loads the candidate list secret words are drawn from.
package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

//go:embed default_words.txt
var defaultWords []byte

// LocalListPath is the word list picked up from the working directory when
// no explicit path is given.
const LocalListPath = "dictionary.txt"

var (
	// ErrNoWords is returned when a list contains no words at all.
	ErrNoWords = errors.New("words: word list is empty")
	// ErrNoPlayableWords is returned when no word has an acceptable length.
	ErrNoPlayableWords = errors.New("words: no word has an acceptable length")
)

// Loader reads word lists from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load returns the candidate words.
// Search order: customPath -> ./dictionary.txt -> embedded default list.
// An explicit customPath that cannot be read is an error; the local file is
// only used when it exists and holds at least one word.
func (l *Loader) Load(customPath string) ([]string, error) {
	if customPath != "" {
		return l.LoadFile(customPath)
	}

	if list, err := l.LoadFile(LocalListPath); err == nil {
		return list, nil
	}

	return Default(), nil
}

// LoadFile reads one word per line from path.
func (l *Loader) LoadFile(path string) ([]string, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return list, nil
}

// Parse reads one word per line. Lines are trimmed and normalized, blank
// lines are skipped and duplicates are kept.
func Parse(r io.Reader) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := norm.NFKC.String(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		list = append(list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	return list, nil
}

// Default returns the embedded word list.
func Default() []string {
	list, err := Parse(bytes.NewReader(defaultWords))
	if err != nil {
		panic(fmt.Sprintf("words: embedded list is unusable: %v", err))
	}
	return list
}

// CheckPlayable makes sure list holds at least one word a WordSource can
// draw. Pick loops forever on a list that fails this check.
func CheckPlayable(list []string) error {
	for _, w := range list {
		if n := utf8.RuneCountInString(w); n >= hangman.MinWordLen && n <= hangman.MaxWordLen {
			return nil
		}
	}
	return fmt.Errorf("%w (%d-%d characters)", ErrNoPlayableWords, hangman.MinWordLen, hangman.MaxWordLen)
}
