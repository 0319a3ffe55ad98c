package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/config"
	"github.com/vovakirdan/compost-catch/internal/feedback"
	"github.com/vovakirdan/compost-catch/internal/games/compost"
	"github.com/vovakirdan/compost-catch/internal/platform/tui"
	"github.com/vovakirdan/compost-catch/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a round",
	Long: `Start a round at the given difficulty (default: the first in the catalog).

Controls:
  Left/Right, A/D, H/L  - Move the bin
  Mouse                 - Drag the bin
  P/Space               - Pause
  R                     - Restart
  1/2/3                 - Switch difficulty and restart
  Q/Ctrl+C              - Quit

Examples:
  compost play
  compost play hard
  compost play easy --seed 42 --mute
  compost play --config ./my-compost.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable catch sounds")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameCfg, cat, err := loadSetup()
	if err != nil {
		return err
	}

	difficulty := cat.Default().Key
	if len(args) == 1 {
		difficulty = args[0]
	}
	if !cat.Exists(difficulty) {
		return fmt.Errorf("unknown difficulty %q (run 'compost list')", difficulty)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, closeGame := newGame(cat, gameCfg, logger)
	defer closeGame()

	if err := game.Start(difficulty); err != nil {
		return err
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newGame creates a game with sound feedback unless muted. The returned
// func releases the audio device.
func newGame(cat *catalog.Catalog, cfg config.CompostConfig, logger *log.Logger) (*compost.Game, func()) {
	if flagMute {
		return compost.New(cat, cfg), func() {}
	}
	tones := feedback.NewTones(logger)
	return compost.New(cat, cfg, compost.WithFeedback(tones)), tones.Close
}

// openStore opens the rounds database. Rounds are still playable without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		logger.Warn("could not open rounds database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
