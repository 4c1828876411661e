// l1t is a terminal laser puzzle: move blocks and mirrors, switch lasers on
// and off, and light every statue without getting zapped.
//
// Usage:
//
//	l1t list                    - List level packs and their levels
//	l1t play <pack>/<level>     - Play one level (or a level file)
//	l1t menu                    - Pick levels interactively
//	l1t progress [pack]         - Show completed levels
//	l1t check <file>...         - Validate level files
//	l1t convert <file>          - Convert a level file between formats
//	l1t serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--db <path>         - Progress database (default: ~/.l1t/progress.db)
//	--levels <dir>      - Extra level directory
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/l1t/internal/config"
	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/levels"
	"github.com/vovakirdan/l1t/internal/platform/tui"
	"github.com/vovakirdan/l1t/internal/registry"
	"github.com/vovakirdan/l1t/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "l1t",
	Short: "l1t - a laser puzzle for your terminal",
	Long: `l1t is a grid puzzle played in the terminal. Push blocks and mirrors,
flip switches and lasers, and light every statue without stepping into a
beam or lighting a zapper.

Available commands:
  list      - Show level packs and their levels
  play      - Play a specific level directly
  menu      - Interactive level picker
  progress  - View completed levels
  check     - Validate level files
  convert   - Convert a level file to another format
  serve     - Start SSH server for remote play

Examples:
  l1t list
  l1t play core/level1
  l1t play ./my-level.l1t
  l1t menu --levels ./levels
  l1t serve --ssh :2222`,
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Extra level directory, registered as pack dir:cli")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration, builds the logger and registers every
// level pack.
func setup(_ *cobra.Command, _ []string) {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "l1t",
	})

	loaded, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	levelName := cfg.Logging.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	if lvl, err := log.ParseLevel(levelName); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level", "level", levelName)
	}
	logger.Debug("config loaded", "source", source)

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	registerPacks()
}

// registerPacks registers the core pack, one pack per level directory and
// one per remote repository.
func registerPacks() {
	registry.Register(levels.CorePackID, func() levels.Pack {
		return levels.NewCorePack()
	})

	dirs := make(map[string]string, len(cfg.Levels.Dirs)+1)
	for name, dir := range cfg.Levels.Dirs {
		dirs[name] = config.ExpandHome(dir)
	}
	if flagLevels != "" {
		dirs["cli"] = flagLevels
	}
	names := make([]string, 0, len(dirs))
	for name := range dirs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dir := dirs[name]
		registry.Register(levels.DirPackID(name), func() levels.Pack {
			return levels.NewDirPack(name, dir, levels.NewLoader(dir).WithLogger(logger))
		})
	}

	for _, r := range cfg.Repositories {
		repo := levels.NewRepository(r.Name, r.URL)
		repo.Logger = logger
		registry.Register(levels.RemotePackID(r.Name), func() levels.Pack {
			return levels.NewRemotePack(repo)
		})
	}
}

// openStore opens the progress database. Without it levels can still be
// played, so a failure is only a warning.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open progress database, progress will not be saved",
			"path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// newEnv builds the environment shared by every terminal screen.
func newEnv(store *storage.Store) tui.Env {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return tui.Env{
		Store:  store,
		Logger: logger,
		Rules:  cfg.GameRules(),
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			EndPause: time.Duration(cfg.Display.EndPauseMS) * time.Millisecond,
		},
	}
}
