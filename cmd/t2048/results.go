package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagResultsPlain    bool
	flagResultsStats    bool
	flagResultsBoard    string
	flagResultsStrategy string
	flagResultsLimit    int
	flagResultsClear    string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse saved scores and AI runs",
	Long: `Show human high scores per board and recorded autoplay runs per strategy.

On a terminal this opens an interactive table; use Tab to switch between
boards and strategies. With --plain, or when output is not a terminal,
the selected table is printed instead.

Boards are "classic" and "level-1" to "level-7".

Examples:
  t2048 results
  t2048 results --plain --board level-3
  t2048 results --plain --strategy expectimax --limit 20
  t2048 results --stats
  t2048 results --clear classic`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagResultsPlain, "plain", false, "Print instead of opening the table")
	resultsCmd.Flags().BoolVar(&flagResultsStats, "stats", false, "Print per-strategy, per-tier statistics")
	resultsCmd.Flags().StringVar(&flagResultsBoard, "board", "classic", "Human board to print")
	resultsCmd.Flags().StringVar(&flagResultsStrategy, "strategy", "", "Print runs of this strategy instead of human scores")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Rows to print")
	resultsCmd.Flags().StringVar(&flagResultsClear, "clear", "", "Delete all scores on a board")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening results database: %v", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	switch {
	case flagResultsClear != "":
		if err := store.ClearScores(flagResultsClear); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores on %s.\n", flagResultsClear)
	case flagResultsStats:
		printStats(store)
	case flagResultsPlain || !term.IsTerminal(fd):
		if flagResultsStrategy != "" {
			printRuns(store, flagResultsStrategy)
		} else {
			printScores(store, flagResultsBoard)
		}
	default:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunResults(store, width, height); err != nil {
			fail("running results: %v", err)
		}
	}
}

func printScores(store *storage.Store, board string) {
	scores, err := store.TopScores(board, flagResultsLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Max tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "--------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}
}

func printRuns(store *storage.Store, strategy string) {
	runs, err := store.TopRuns(strategy, flagResultsLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Best Runs - %s\n", strategy)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 't2048 autoplay --strategy %s' to record one.\n", strategy)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-6s  %-4s  %-8s  %s\n", "Rank", "Score", "Max tile", "Tier", "Moves", "Won", "ID", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-6s  %-4s  %-8s  %s\n", "----", "-----", "--------", "----", "-----", "---", "--", "----")
	for i, r := range runs {
		won := "no"
		if r.Won {
			won = "yes"
		}
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-4d  %-8d  %-8d  %-7s  %-6d  %-4s  %-8s  %s\n",
			i+1, r.Score, r.MaxTile, r.Level, r.Moves, won, id, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	fmt.Println("Autoplay statistics")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-7s  %-5s  %-6s  %-8s  %-8s  %-9s  %s\n", "Strategy", "Tier", "Games", "Wins", "Best", "Average", "Best tile", "Avg moves")
	fmt.Printf("  %-12s  %-7s  %-5s  %-6s  %-8s  %-8s  %-9s  %s\n", "--------", "----", "-----", "----", "----", "-------", "---------", "---------")
	for _, s := range stats {
		fmt.Printf("  %-12s  %-7s  %-5d  %5.1f%%  %-8d  %-8.0f  %-9d  %.0f\n",
			s.Strategy, s.Level, s.Games, 100*s.WinRate(), s.BestScore, s.AvgScore, s.BestTile, s.AvgMoves)
	}
}
