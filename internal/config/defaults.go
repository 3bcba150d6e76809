package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Words: WordsConfig{
			Path: "",
		},
		Saves: SavesConfig{
			Dir: "~/.hangman/saves",
		},
		History: HistoryConfig{
			DB:     "~/.hangman/history.db",
			Recent: 10,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.hangman/hangman.log",
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKey:     "",
			IdleTimeout: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
