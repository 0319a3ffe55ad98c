package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/compost-catch/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top scores for one difficulty, or for each of them.

Examples:
  compost scores
  compost scores hard --limit 5
  compost scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved round of the difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	_, cat, err := loadSetup()
	if err != nil {
		return err
	}

	keys := cat.Keys()
	if len(args) == 1 {
		if !cat.Exists(args[0]) {
			return fmt.Errorf("unknown difficulty %q (run 'compost list')", args[0])
		}
		keys = []string{args[0]}
	} else if flagScoresClear {
		return errors.New("--clear needs a difficulty")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(keys[0]); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared every %s round.\n", keys[0])
		return nil
	}

	for i, key := range keys {
		if i > 0 {
			fmt.Println()
		}
		profile, _ := cat.Lookup(key)
		if err := printScores(store, profile.Key, profile.Name); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, key, name string) error {
	rounds, err := store.TopScores(key, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", name)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Printf("Play 'compost play %s' to set the first high score!\n", key)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %s\n", "Rank", "Score", "Lives", "Items", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, r := range rounds {
		items := fmt.Sprintf("%d/%d", r.Processed, r.Total)
		fmt.Printf("  %-4d  %-6d  %-5d  %-7s  %s\n", i+1, r.Score, r.Lives, items, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(key); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
