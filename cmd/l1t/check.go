package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/game"
	"github.com/vovakirdan/l1t/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse each level file and print what it contains, or why it could not
be parsed. Exits with status 1 if any file fails.

Examples:
  l1t check ./levels/*.l1t
  l1t check mine.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

// checkedKinds are listed in this order by check.
var checkedKinds = []game.Kind{
	game.KindStatue, game.KindLaser, game.KindMirror, game.KindBlock,
	game.KindSwitch, game.KindButton, game.KindToggleBlock, game.KindZapper,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, p := range args {
		lvl, err := levels.LoadPath(p)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", p, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s: %s\n", p, describeLevel(lvl))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d files failed\n", failed, len(args))
		os.Exit(1)
	}
}

// describeLevel summarizes a parsed level in one line.
func describeLevel(lvl levels.Level) string {
	board := lvl.Board
	parts := []string{fmt.Sprintf("%q %dx%d", lvl.Title(), board.Cols, board.Rows)}
	for _, k := range checkedKinds {
		if n := board.Count(k); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}

	// A level that is decided before the first move is almost always a mistake.
	if state := game.NewSession(board.Clone(), cfg.GameRules()).State(); state.Terminal() {
		parts = append(parts, "decided on start: "+state.String())
	}
	return strings.Join(parts, ", ")
}
