package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/compost-catch/internal/storage"
)

var flagMistakesLimit int

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Show the trash caught most often",
	Long: `Aggregates wrongly caught items over every saved round.

Examples:
  compost mistakes
  compost mistakes --limit 20`,
	Args: cobra.NoArgs,
	RunE: runMistakes,
}

func init() {
	mistakesCmd.Flags().IntVar(&flagMistakesLimit, "limit", 10, "Number of items to show")
}

func runMistakes(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	totals, err := store.MistakeTotals(flagMistakesLimit)
	if err != nil {
		return fmt.Errorf("retrieving mistakes: %w", err)
	}

	fmt.Println("Most caught trash")
	fmt.Println()

	if len(totals) == 0 {
		fmt.Println("No mistakes recorded yet.")
		return nil
	}

	fmt.Printf("  %-22s  %-6s  %-6s  %s\n", "Item", "Caught", "Rounds", "Why")
	fmt.Printf("  %-22s  %-6s  %-6s  %s\n", "----", "------", "------", "---")
	for _, t := range totals {
		fmt.Printf("  %-22s  %-6d  %-6d  %s\n", t.Label, t.Count, t.Rounds, t.Reason)
	}
	return nil
}
