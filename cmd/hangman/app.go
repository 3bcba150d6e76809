package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/saves"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// newLogger creates a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the configured log file for appending. The caller closes it.
func openLogFile() (*os.File, error) {
	path, err := config.ExpandHome(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadWords reads the configured word list and checks it can be played.
func loadWords() ([]string, error) {
	path, err := config.ExpandHome(cfg.Words.Path)
	if err != nil {
		return nil, err
	}

	list, err := words.NewLoader(afero.NewOsFs()).Load(path)
	if err != nil {
		return nil, err
	}
	if err := words.CheckPlayable(list); err != nil {
		return nil, err
	}
	return list, nil
}

// savesDir returns the configured save directory with ~ expanded.
func savesDir() (string, error) {
	return config.ExpandHome(cfg.Saves.Dir)
}

// openSaves opens the save slot store.
func openSaves() (*saves.Store, error) {
	dir, err := savesDir()
	if err != nil {
		return nil, err
	}
	return saves.Open(afero.NewOsFs(), dir)
}

// openHistory opens the history database. Playing works without it,
// so a failure is only logged.
func openHistory(logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.History.DB, "error", err)
		return nil
	}
	return store
}
