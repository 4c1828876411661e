package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start l1t with a level picker menu",
	Long: `Start l1t in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
After a level ends, you return to the menu to pick the next one.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Progress board
  H/?          - Help
  Q            - Quit

Examples:
  l1t menu
  l1t menu --levels ./levels
  l1t menu --db ./progress.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	store := openStore()
	ctx := cmd.Context()

	err := tui.RunSession(ctx, newEnv(store), tui.BuildCatalog(ctx, logger))

	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
