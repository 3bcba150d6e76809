// Package config provides YAML-based configuration loading for hangman.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config contains all configuration for the hangman binary.
type Config struct {
	Words   WordsConfig   `yaml:"words"`
	Saves   SavesConfig   `yaml:"saves"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// WordsConfig locates the candidate word list.
type WordsConfig struct {
	Path string `yaml:"path"` // empty = ./dictionary.txt, then the built-in list
}

// SavesConfig locates the save slot directory.
type SavesConfig struct {
	Dir string `yaml:"dir"`
}

// HistoryConfig locates the finished-round database.
type HistoryConfig struct {
	DB     string `yaml:"db"`
	Recent int    `yaml:"recent"` // rounds shown by `hangman history`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout_minutes"`
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimLeft(path[1:], `/\`)), nil
}
