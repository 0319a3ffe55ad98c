package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/compost-catch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
After a round you can go back to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  1/2/3        - Select directly
  Tab          - Scoreboard
  Q            - Quit

Examples:
  compost menu
  compost menu --fps 30
  compost menu --db ./compost.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, cat, err := loadSetup()
	if err != nil {
		return err
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

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cat, store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(cat, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := game.Start(menuResult.Difficulty); err != nil {
			logger.Warn("cannot start round", "difficulty", menuResult.Difficulty, "err", err)
			continue
		}

		// Fresh seed for each round unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
