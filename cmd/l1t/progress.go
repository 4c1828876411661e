package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/registry"
	"github.com/vovakirdan/l1t/internal/storage"
)

var flagClear bool

var progressCmd = &cobra.Command{
	Use:   "progress [pack]",
	Short: "Show completed levels",
	Long: `Display per-level progress: attempts, wins and the fewest turns a
level was won in. Without a pack, every registered pack is shown.

Examples:
  l1t progress
  l1t progress core
  l1t progress dir:mine --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagClear, "clear", false, "Forget all progress of the given pack")
}

func runProgress(cmd *cobra.Command, args []string) {
	var packIDs []string
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'l1t list' to see available packs.")
			os.Exit(1)
		}
		packIDs = []string{args[0]}
	} else {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a pack")
			os.Exit(1)
		}
		for _, info := range registry.List() {
			packIDs = append(packIDs, info.ID)
		}
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearProgress(packIDs[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Progress of %s cleared.\n", packIDs[0])
		return
	}

	for _, id := range packIDs {
		pack, err := registry.Create(id)
		if err != nil {
			continue
		}
		infos, err := pack.Levels(cmd.Context())
		if err != nil {
			fmt.Printf("%s: unavailable: %v\n\n", pack.Title(), err)
			continue
		}

		done, err := store.CompletedSet(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s - %d/%d completed\n", pack.Title(), len(done), len(infos))
		fmt.Println()

		if len(infos) == 0 {
			continue
		}

		// Print header
		fmt.Printf("  %-12s  %-8s  %-6s  %-5s  %s\n", "Level", "Attempts", "Wins", "Best", "Last played")
		fmt.Printf("  %-12s  %-8s  %-6s  %-5s  %s\n", "-----", "--------", "----", "----", "-----------")

		for _, l := range infos {
			stats, err := store.GetLevelStats(id, l.ID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
				os.Exit(1)
			}
			best, last := "-", "-"
			if stats.Wins > 0 {
				best = fmt.Sprintf("%d", stats.BestTurns)
			}
			if !stats.LastPlayed.IsZero() {
				last = stats.LastPlayed.Format("2006-01-02 15:04")
			}
			fmt.Printf("  %-12s  %-8d  %-6d  %-5s  %s\n", l.ID, stats.Attempts, stats.Wins, best, last)
		}
		fmt.Println()
	}
}
