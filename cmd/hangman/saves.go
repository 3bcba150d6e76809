package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Long: `List the saved rounds, show the board of one or delete it.

Examples:
  hangman saves
  hangman saves show monday
  hangman saves rm monday`,
	Args: cobra.NoArgs,
	Run:  runSavesList,
}

var savesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the board saved in a slot",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesShow,
}

var savesRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Delete a save slot",
	Args:    cobra.ExactArgs(1),
	Run:     runSavesRm,
}

func init() {
	savesCmd.AddCommand(savesShowCmd)
	savesCmd.AddCommand(savesRmCmd)
}

func runSavesList(_ *cobra.Command, _ []string) {
	store, err := openSaves()
	if err != nil {
		fatal("%v", err)
	}

	names, err := store.List()
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Save slots in %s\n", store.Dir())
	fmt.Println()

	if len(names) == 0 {
		fmt.Println("No saved games yet.")
		fmt.Println()
		fmt.Println(`Type "save" during 'hangman play' to keep a round for later.`)
		return
	}

	fmt.Printf("  %-20s  %-14s  %-4s  %s\n", "Slot", "Word", "Left", "Saved")
	fmt.Printf("  %-20s  %-14s  %-4s  %s\n", "----", "----", "----", "-----")

	for _, name := range names {
		snap, err := store.Load(name)
		if err != nil {
			fmt.Printf("  %-20s  (unreadable)\n", name)
			continue
		}
		saved := "-"
		if !snap.SavedAt.IsZero() {
			saved = snap.SavedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-20s  %-14s  %-4d  %s\n", name, snap.RevealedForm, snap.RemainingMisses, saved)
	}
}

func runSavesShow(_ *cobra.Command, args []string) {
	store, err := openSaves()
	if err != nil {
		fatal("%v", err)
	}

	snap, err := store.Load(args[0])
	if err != nil {
		fatal("%v", err)
	}
	session, err := hangman.Restore(snap)
	if err != nil {
		fatal("%v", err)
	}

	screen := core.NewScreen(hangman.BoardWidth, hangman.BoardHeight)
	hangman.DrawBoard(screen, session.View())
	for y := range screen.Height() {
		fmt.Println(strings.TrimRight(screen.Row(y), " "))
	}
}

func runSavesRm(_ *cobra.Command, args []string) {
	store, err := openSaves()
	if err != nil {
		fatal("%v", err)
	}
	if err := store.Delete(args[0]); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Deleted save %q\n", args[0])
}
