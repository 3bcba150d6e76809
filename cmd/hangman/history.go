package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished rounds",
	Long: `Display totals and the most recent won or lost rounds.

Saved and abandoned rounds are not recorded.

Examples:
  hangman history
  hangman history --limit 25
  hangman history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Number of rounds to show (default from config: 10)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded rounds")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		fatal("cannot open history database: %v", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearHistory(); err != nil {
			store.Close()
			fatal("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	limit := flagHistoryLimit
	if limit <= 0 {
		limit = cfg.History.Recent
	}

	rounds, err := store.RecentRounds(limit)
	if err != nil {
		store.Close()
		fatal("cannot read history: %v", err)
	}

	fmt.Println("Hangman - History")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hangman play' to finish your first round!")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-6s  %-6s  %s\n", "Date", "Word", "Result", "Misses", "Wrong")
	fmt.Printf("  %-16s  %-14s  %-6s  %-6s  %s\n", "----", "----", "------", "------", "-----")

	for _, r := range rounds {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-14s  %-6s  %-6d  %s\n", dateStr, r.Word, r.Outcome, r.Misses, r.WrongLetters)
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot compute totals: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Played %d   Won %d   Lost %d\n", stats.Played, stats.Won, stats.Lost)
}
