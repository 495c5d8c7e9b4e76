package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

var (
	flagBenchPositions int
	flagBenchWarmup    int
	flagBenchBudget    time.Duration
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the move search at every tier",
	Long: `Generate mid-game positions by random play and time one Expectimax
search per position at each tier. Searches slower than --budget are counted
as overruns; in autoplay those moves would fall back to a single-ply pick.

Each search starts with a cold evaluation cache.

Examples:
  t2048 bench
  t2048 bench --positions 50 --seed 7
  t2048 bench --budget 250ms`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchPositions, "positions", 20, "Positions to search per tier")
	benchCmd.Flags().IntVar(&flagBenchWarmup, "warmup", 60, "Random moves played before sampling a position")
	benchCmd.Flags().DurationVar(&flagBenchBudget, "budget", 0, "Per-move budget to compare against (0 = from config)")
}

type benchRow struct {
	level   ai.Level
	depth   int
	total   time.Duration
	worst   time.Duration
	nodes   int
	overrun int
}

func runBench(_ *cobra.Command, _ []string) {
	if flagBenchPositions <= 0 {
		fail("positions must be positive")
	}

	logger := newLogger()
	cfg, _ := loadAIConfig("")
	sel := newSelector(cfg)

	budget := time.Duration(cfg.Runner.MoveBudgetMs) * time.Millisecond
	if flagBenchBudget > 0 {
		budget = flagBenchBudget
	}

	positions := benchPositions(seed(), flagBenchPositions, flagBenchWarmup)
	logger.Debug("positions ready", "count", len(positions))

	rows := make([]benchRow, 0, len(ai.Levels))
	for _, level := range ai.Levels {
		row := benchRow{level: level, depth: sel.Profile(level).SearchDepth}
		for _, g := range positions {
			sel.Evaluator().Reset()
			start := time.Now()
			_, stats := sel.Search(g, level)
			elapsed := time.Since(start)

			row.total += elapsed
			row.worst = max(row.worst, elapsed)
			row.nodes += stats.Nodes
			if budget > 0 && elapsed > budget {
				row.overrun++
			}
		}
		logger.Debug("tier done", "level", level, "total", row.total)
		rows = append(rows, row)
	}

	fmt.Printf("Search timing over %d positions (budget %s)\n", len(positions), budget)
	fmt.Println()
	fmt.Printf("  %-7s  %-5s  %-10s  %-10s  %-10s  %s\n", "Tier", "Depth", "Avg", "Worst", "Avg nodes", "Overruns")
	fmt.Printf("  %-7s  %-5s  %-10s  %-10s  %-10s  %s\n", "----", "-----", "---", "-----", "---------", "--------")
	for _, r := range rows {
		n := time.Duration(len(positions))
		fmt.Printf("  %-7s  %-5d  %-10s  %-10s  %-10d  %d\n",
			r.level,
			r.depth,
			(r.total / n).Round(time.Microsecond),
			r.worst.Round(time.Microsecond),
			r.nodes/len(positions),
			r.overrun,
		)
	}
}

// benchPositions plays random games and samples the grid after up to warmup
// moves. Games that end early contribute their last live position.
func benchPositions(seed int64, count, warmup int) []engine.Grid {
	rng := rand.New(rand.NewSource(seed))
	positions := make([]engine.Grid, 0, count)

	for i := range count {
		game := engine.NewGame(seed+int64(i), 0)
		last := game.Grid()
		for range warmup {
			dir, ok := ai.FallbackMove(game.Grid(), rng)
			if !ok {
				break
			}
			game.Move(dir)
			if !game.CanAct() {
				break
			}
			last = game.Grid()
		}
		positions = append(positions, last)
	}
	return positions
}
