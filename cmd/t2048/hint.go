package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagHintDifficulty string
	flagHintDepth      int
)

var hintCmd = &cobra.Command{
	Use:   "hint <grid>",
	Short: "Explain the AI's move for a position",
	Long: `Print the heuristic features, single-ply direction scores and the
Expectimax choice for a grid.

The grid is written row by row, rows separated by '/' and cells by ','.
Empty cells are 0.

Examples:
  t2048 hint "2,2,0,0/0,4,0,0/0,0,0,0/0,0,0,2"
  t2048 hint "1024,512,256,128/0,0,0,64/0,0,0,0/0,0,0,2" --difficulty expert
  t2048 hint "2,4,8,16/0,0,0,0/0,0,0,0/0,0,0,0" --depth 1`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagHintDifficulty, "difficulty", "", "AI tier: easy, medium, hard, expert")
	hintCmd.Flags().IntVar(&flagHintDepth, "depth", 0, "Override the tier's search depth (1-5)")
}

func runHint(_ *cobra.Command, args []string) {
	grid, err := engine.ParseGrid(args[0])
	if err != nil {
		fail("%v", err)
	}
	if flagHintDepth < 0 || flagHintDepth > ai.MaxDepth {
		fail("depth must be between 1 and %d", ai.MaxDepth)
	}

	cfg, level := loadAIConfig(flagHintDifficulty)
	sel := newSelector(cfg)

	depth := sel.Profile(level).SearchDepth
	if flagHintDepth > 0 {
		depth = flagHintDepth
	}

	fmt.Println(tui.RenderBoard(grid, nil))
	fmt.Println()

	if engine.IsGameOver(grid) {
		fmt.Println("No moves left: the game is over.")
		return
	}

	fmt.Println("Features")
	fmt.Println(tui.RenderFeatures(ai.Features(grid)))
	fmt.Printf("evaluation        %8.1f\n", sel.Evaluator().Evaluate(grid))
	fmt.Println()

	start := time.Now()
	res, stats := sel.SearchDepth(grid, depth)
	elapsed := time.Since(start)

	fmt.Printf("Single-ply scores (%s)\n", level)
	fmt.Println(tui.RenderQuickScores(sel.QuickScores(grid, level), res.Direction, res.HasMove))
	fmt.Println()

	fmt.Printf("Expectimax depth %d: %s\n", depth, res.Direction)
	fmt.Printf("  expected score  %.1f\n", res.ExpectedScore)
	fmt.Printf("  nodes           %d\n", stats.Nodes)
	fmt.Printf("  chance reuse    %d\n", stats.ChanceHits)
	fmt.Printf("  cache hit rate  %.0f%%\n", 100*sel.Evaluator().Stats().HitRate())
	fmt.Printf("  time            %s\n", elapsed.Round(time.Microsecond))
}
