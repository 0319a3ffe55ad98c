package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals per difficulty",
	Long: `Summarizes every saved round by difficulty: rounds played, rounds
cleared, best and average score, and when it was last played.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	_, cat, err := loadSetup()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	stats, err := store.GetAllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	writeStats(os.Stdout, cat, stats)
	return nil
}

// writeStats prints catalog difficulties first, in catalog order, then any
// stored difficulty the current catalog no longer has.
func writeStats(w io.Writer, cat *catalog.Catalog, stats map[string]*storage.DifficultyStats) {
	fmt.Fprintln(w, "Stats")
	fmt.Fprintln(w)

	if len(stats) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-10s  %-6s  %-7s  %-5s  %-7s  %s\n", "Difficulty", "Rounds", "Cleared", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-10s  %-6s  %-7s  %-5s  %-7s  %s\n", "----------", "------", "-------", "----", "-------", "-----------")

	row := func(st *storage.DifficultyStats) {
		fmt.Fprintf(w, "  %-10s  %-6d  %-7d  %-5d  %-7.1f  %s\n",
			st.Difficulty, st.RoundsCount, st.Cleared, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	seen := make(map[string]bool, len(stats))
	for _, key := range cat.Keys() {
		if st, ok := stats[key]; ok {
			row(st)
			seen[key] = true
		}
	}
	var rest []string
	for key := range stats {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		row(stats[key])
	}
}
