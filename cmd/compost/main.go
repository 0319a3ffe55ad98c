// compost is a terminal game about sorting waste: catch the compostables,
// let the trash fall past.
//
// Usage:
//
//	compost list                 - List difficulties
//	compost play [difficulty]    - Play a round
//	compost menu                 - Pick difficulties interactively
//	compost serve                - Start SSH server for remote play
//	compost scores [difficulty]  - Show high scores
//	compost mistakes             - Show the most often caught trash
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.compost/compost.db)
//	--config <path> - Load tunables from a YAML or TOML file
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/config"
	"github.com/vovakirdan/compost-catch/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "compost",
	Short: "Compost Catch - sort falling waste in your terminal",
	Long: `Compost Catch drops items into the arena one by one. Move the bin
under the compostables and let everything else fall past. Catching trash
costs a life; the round ends when every item is resolved or the lives
run out.

Available commands:
  list      - Show difficulties
  play      - Play a round directly
  menu      - Interactive difficulty picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  mistakes  - View the trash caught most often

Examples:
  compost list
  compost play medium
  compost menu
  compost serve --ssh :2222
  compost scores hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.compost/compost.db", "Path to rounds database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.compost/compost.log", "Log file for interactive commands")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(statsCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the logger. Interactive commands own the terminal, so
// they log to a file; toStderr is used by the server.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := os.Stderr, func() {}
	if !toStderr {
		path := expandHome(flagLogFile)
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "compost",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadSetup reads the tunables and builds the difficulty catalog.
func loadSetup() (config.CompostConfig, *catalog.Catalog, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, cat, nil
}

// runtimeConfig sizes the round to the terminal and resolves the seed.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
