package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file and flags are applied.

With --defaults the built-in configuration is printed instead, ready to be
copied to ~/.hangman/config.yaml and edited.

Examples:
  hangman config
  hangman config --defaults > ~/.hangman/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		_, _ = os.Stdout.Write(config.DefaultYAML())
		return
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fatal("cannot encode config: %v", err)
	}
	if err := enc.Close(); err != nil {
		fatal("%v", err)
	}
}
