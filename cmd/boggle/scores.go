package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boggle/internal/registry"
	"github.com/vovakirdan/tui-boggle/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show best games for a variant",
	Long: `Display the top 10 games for the specified board variant, ranked by
the number of words found.

Examples:
  boggle scores boggle
  boggle scores bigboggle
  boggle scores boggle --clear   # forget every recorded boggle game`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

var flagClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games for the variant")
}

// maxWordsShown caps the found-words column of the listing.
const maxWordsShown = 60

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'boggle list' to see available boards)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			return fmt.Errorf("clearing results: %w", err)
		}
		fmt.Fprintf(out, "Cleared all %s games.\n", title)
		return nil
	}

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Fprintf(out, "Best Games - %s\n\n", title)

	if len(results) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'boggle play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-16s  %s\n", "Rank", "Words", "Date", "Found")
	fmt.Fprintf(out, "  %-4s  %-5s  %-16s  %s\n", "----", "-----", "----", "-----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		found := strings.Join(r.Words, " ")
		if len(found) > maxWordsShown {
			found = found[:maxWordsShown-3] + "..."
		}
		fmt.Fprintf(out, "  %-4d  %-5d  %-16s  %s\n", i+1, r.Score, dateStr, found)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f words\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
