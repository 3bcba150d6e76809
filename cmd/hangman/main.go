// hangman is the classic word-guessing game for the terminal.
//
// Usage:
//
//	hangman play             - Play a round (menu: new or saved game)
//	hangman play --plain     - Play line by line without the full-screen UI
//	hangman saves            - List save slots
//	hangman saves show <n>   - Show the board saved in a slot
//	hangman saves rm <n>     - Delete a save slot
//	hangman history          - Show finished rounds
//	hangman serve            - Start SSH server for remote play
//	hangman config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.hangman/config.yaml, ./configs/hangman.yaml)
//	--seed <value>     - Set RNG seed for reproducible word picks
//	--words <path>     - Word list, one word per line
//	--saves <dir>      - Save slot directory
//	--db <path>        - History database path
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagWords    string
	flagSaves    string
	flagDBPath   string
	flagLogLevel string

	// cfg is loaded before every subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal("%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the figure is complete",
	Long: `Hangman is the classic word-guessing game, played in your terminal.

A secret word of 5 to 12 letters is picked. Guess it one letter at a time;
every wrong letter adds a part to the figure on the gallows. Six wrong
letters and the round is lost. Type "save" at any time to keep the round
for later.

Available commands:
  play     - Play a round
  saves    - List, show or delete save slots
  history  - Show finished rounds
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  hangman play
  hangman play --load monday
  hangman play --plain --words ./dictionary.txt
  hangman saves
  hangman serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to word list (default: ./dictionary.txt, then built-in)")
	rootCmd.PersistentFlags().StringVar(&flagSaves, "saves", "", "Save slot directory (default from config: ~/.hangman/saves)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "History database path (default from config: ~/.hangman/history.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("words") {
		loaded.Words.Path = flagWords
	}
	if flags.Changed("saves") {
		loaded.Saves.Dir = flagSaves
	}
	if flags.Changed("db") {
		loaded.History.DB = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}

	cfg = loaded
	return nil
}

// fatal reports a failure at the program boundary and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
