package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/compost-catch/internal/storage"
)

var flagRoundsLimit int

var roundsCmd = &cobra.Command{
	Use:   "rounds [id]",
	Short: "Show recent rounds or one round's mistakes",
	Long: `Without an argument, lists the most recently saved rounds of every
difficulty. With a round ID, shows that round and every item it caught
wrongly.

Examples:
  compost rounds
  compost rounds --limit 5
  compost rounds 3f1c2a9e-8d4b-4c1e-9a57-0b6f2d7e1c44`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&flagRoundsLimit, "limit", 10, "Number of rounds to show")
}

func runRounds(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	if len(args) == 1 {
		rec, err := store.RoundByID(args[0])
		if err != nil {
			return fmt.Errorf("retrieving round: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no round with ID %q (run 'compost rounds')", args[0])
		}
		writeRound(os.Stdout, *rec)
		return nil
	}

	rounds, err := store.RecentRounds(flagRoundsLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	writeRecentRounds(os.Stdout, rounds)
	return nil
}

func writeRecentRounds(w io.Writer, rounds []storage.RoundRecord) {
	fmt.Fprintln(w, "Recent rounds")
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-36s  %-10s  %-6s  %-7s  %s\n", "ID", "Difficulty", "Score", "Result", "Date")
	fmt.Fprintf(w, "  %-36s  %-10s  %-6s  %-7s  %s\n", "--", "----------", "-----", "------", "----")
	for _, r := range rounds {
		fmt.Fprintf(w, "  %-36s  %-10s  %-6d  %-7s  %s\n",
			r.ID, r.Difficulty, r.Score, result(r.Cleared), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func writeRound(w io.Writer, r storage.RoundRecord) {
	fmt.Fprintf(w, "Round %s\n", r.ID)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Difficulty: %s\n", r.Difficulty)
	fmt.Fprintf(w, "  Played:     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  Result:     %s\n", result(r.Cleared))
	fmt.Fprintf(w, "  Score:      %d\n", r.Score)
	fmt.Fprintf(w, "  Lives:      %d\n", r.Lives)
	fmt.Fprintf(w, "  Items:      %d/%d\n", r.Processed, r.Total)
	fmt.Fprintln(w)

	if len(r.Mistakes) == 0 {
		fmt.Fprintln(w, "No trash caught. Nice sorting!")
		return
	}

	fmt.Fprintf(w, "  %-22s  %-6s  %s\n", "Item", "Caught", "Why")
	fmt.Fprintf(w, "  %-22s  %-6s  %s\n", "----", "------", "---")
	for _, m := range r.Mistakes {
		fmt.Fprintf(w, "  %-22s  %-6d  %s\n", m.Label, m.Count, m.Reason)
	}
}

func result(cleared bool) string {
	if cleared {
		return "cleared"
	}
	return "lost"
}
