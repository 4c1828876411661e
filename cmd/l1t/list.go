package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List level packs and their levels",
	Long: `Shows every registered level pack and the levels in it.
Levels you have completed are marked with [x].`,
	Run: runList,
}

func runList(cmd *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	for _, info := range packs {
		pack, err := registry.Create(info.ID)
		if err != nil {
			fmt.Printf("%s: %v\n\n", info.ID, err)
			continue
		}

		fmt.Printf("%s  (%s)\n", info.Title, info.ID)

		infos, err := pack.Levels(cmd.Context())
		if err != nil {
			fmt.Printf("  unavailable: %v\n\n", err)
			continue
		}
		if len(infos) == 0 {
			fmt.Println("  no levels")
			fmt.Println()
			continue
		}

		var done map[string]bool
		if store != nil {
			if done, err = store.CompletedSet(info.ID); err != nil {
				logger.Warn("could not read progress", "pack", info.ID, "error", err)
			}
		}

		// Calculate column widths
		maxIDLen := 2
		for _, l := range infos {
			if len(l.ID) > maxIDLen {
				maxIDLen = len(l.ID)
			}
		}

		for _, l := range infos {
			mark := "[ ]"
			if done[l.ID] {
				mark = "[x]"
			}
			fmt.Printf("  %s %-*s  %s\n", mark, maxIDLen, l.ID, l.Title())
		}
		fmt.Println()
	}

	fmt.Println("Run 'l1t play <pack>/<level>' to play a level.")
}
