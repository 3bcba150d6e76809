// Package saves keeps hangman snapshots as YAML documents, one file per
// named save slot.
package saves

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Ext is the file extension of save documents.
const Ext = ".yaml"

// MaxNameLen is the longest accepted slot name.
const MaxNameLen = 24

var namePattern = regexp.MustCompile(`^\w{1,24}$`)

// Store manages the save slots in one directory.
type Store struct {
	fs  afero.Fs
	dir string
}

// Ensure Store implements hangman.SnapshotStore
var _ hangman.SnapshotStore = (*Store)(nil)

// Open creates the save directory if needed and returns a store for it.
func Open(fsys afero.Fs, dir string) (*Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("saves: cannot create directory %s: %w", dir, err)
	}
	return &Store{fs: fsys, dir: dir}, nil
}

// ValidateName checks that name only holds letters, digits and underscores
// and is at most MaxNameLen long.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use up to %d letters, digits or underscores)", hangman.ErrInvalidSaveName, name, MaxNameLen)
	}
	return nil
}

// Dir returns the save directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+Ext)
}

// Save writes the snapshot to the named slot, replacing any previous save.
func (s *Store) Save(name string, snap hangman.Snapshot) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("saves: cannot encode slot %q: %w", name, err)
	}

	if err := writeFileAtomic(s.fs, s.path(name), data); err != nil {
		return fmt.Errorf("saves: cannot write slot %q: %w", name, err)
	}
	return nil
}

// Load reads the named slot.
func (s *Store) Load(name string) (hangman.Snapshot, error) {
	var snap hangman.Snapshot

	if ValidateName(name) != nil {
		return snap, fmt.Errorf("%w: %q", hangman.ErrUnknownSaveSlot, name)
	}

	data, err := afero.ReadFile(s.fs, s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return snap, fmt.Errorf("%w: %q", hangman.ErrUnknownSaveSlot, name)
	}
	if err != nil {
		return snap, fmt.Errorf("saves: cannot read slot %q: %w", name, err)
	}

	if err := yaml.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("%w: slot %q: %v", hangman.ErrCorruptSave, name, err)
	}
	return snap, nil
}

// List returns the slot names in the save directory, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("saves: cannot list %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), Ext)
		if ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Exists reports whether the named slot exists.
func (s *Store) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	ok, err := afero.Exists(s.fs, s.path(name))
	return err == nil && ok
}

// Delete removes the named slot.
func (s *Store) Delete(name string) error {
	if !s.Exists(name) {
		return fmt.Errorf("%w: %q", hangman.ErrUnknownSaveSlot, name)
	}
	if err := s.fs.Remove(s.path(name)); err != nil {
		return fmt.Errorf("saves: cannot delete slot %q: %w", name, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so a slot is either the old document or the new one.
func writeFileAtomic(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpFile, err := afero.TempFile(fsys, dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// No-op once the rename succeeded.
	defer fsys.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	return nil
}
