package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/game"
	"github.com/vovakirdan/l1t/internal/levels"
	"github.com/vovakirdan/l1t/internal/levels/formats"
)

var (
	flagTo     string
	flagOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a level file to another format",
	Long: `Read a level file in any supported format and write it as YAML or as
native l1t text.

Examples:
  l1t convert level1.l1t > level1.yaml
  l1t convert mine.yaml --to text -o mine.l1t`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagTo, "to", "yaml", "Output format: yaml or text")
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: stdout)")
}

func runConvert(_ *cobra.Command, args []string) {
	lvl, err := levels.LoadPath(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	switch flagTo {
	case "yaml", "yml":
		out, err = formats.EncodeYAML(lvl.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding level: %v\n", err)
			os.Exit(1)
		}
	case "text", "l1t":
		out = []byte(game.Format(lvl.Board) + "\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want yaml or text)\n", flagTo)
		os.Exit(1)
	}

	if flagOutput == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(flagOutput, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
