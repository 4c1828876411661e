package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/game"
	"github.com/vovakirdan/l1t/internal/levels"
	"github.com/vovakirdan/l1t/internal/platform/tui"
	"github.com/vovakirdan/l1t/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <pack>/<level> | <level> | <file>",
	Short: "Play a level",
	Long: `Start playing the specified level.

The level can be named as pack/level, as a bare level ID (the first pack
that has it wins), or as the path of a level file.

Controls:
  w/a/s/d, h/j/k/l, arrows  - Move
  Space                     - Use the switch, laser or mirror next to you
  H/?                       - Help
  Q/Ctrl+C                  - Quit (asks first)

Examples:
  l1t play core/level1
  l1t play level2
  l1t play ./levels/mine.l1t`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	lvl, err := resolveLevel(cmd.Context(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'l1t list' to see available levels.")
		os.Exit(1)
	}

	store := openStore()

	state, turns, runErr := tui.RunPlay(newEnv(store), lvl)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}

	switch state {
	case game.Won:
		fmt.Printf("%s: won in %d turns.\n", lvl.Title(), turns)
	case game.LostZapper:
		fmt.Printf("%s: you lit a zapper after %d turns.\n", lvl.Title(), turns)
	case game.LostDeath:
		fmt.Printf("%s: you got zapped after %d turns.\n", lvl.Title(), turns)
	}
}

// resolveLevel finds the level named by arg: a file on disk, pack/level,
// or a level ID looked up in every pack.
func resolveLevel(ctx context.Context, arg string) (levels.Level, error) {
	if fi, err := os.Stat(arg); err == nil && !fi.IsDir() {
		return levels.LoadPath(arg)
	}

	if i := strings.LastIndex(arg, "/"); i > 0 {
		packID, levelID := arg[:i], arg[i+1:]
		if registry.Exists(packID) {
			pack, err := registry.Create(packID)
			if err != nil {
				return levels.Level{}, err
			}
			return pack.Load(ctx, levelID)
		}
	}

	for _, info := range registry.List() {
		pack, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		infos, err := pack.Levels(ctx)
		if err != nil {
			logger.Debug("skipping pack", "pack", info.ID, "error", err)
			continue
		}
		for _, l := range infos {
			if l.ID == arg {
				return pack.Load(ctx, l.ID)
			}
		}
	}

	return levels.Level{}, fmt.Errorf("unknown level %q", arg)
}
