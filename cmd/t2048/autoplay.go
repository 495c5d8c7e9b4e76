package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagAutoStrategy    string
	flagAutoDifficulty  string
	flagAutoGames       int
	flagAutoWorkers     int
	flagAutoBudget      time.Duration
	flagAutoMaxMoves    int
	flagAutoTarget      int
	flagAutoKeepPlaying bool
	flagAutoNoSave      bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a strategy play complete games",
	Long: `Play one or more games with a registered strategy and record the results.

Each move is bounded by a time budget; when the strategy overruns it, a
single-ply move is played instead and counted as a fallback. Batches run
concurrently and game i uses seed --seed+i, so a batch is reproducible.

With --difficulty adaptive the tier starts at medium and follows the run's
progress against the strategy's best recorded score.

Examples:
  t2048 autoplay
  t2048 autoplay --strategy greedy --games 100 --workers 8
  t2048 autoplay --difficulty expert --budget 500ms --seed 42
  t2048 autoplay --difficulty adaptive --keep-playing --max-moves 3000`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().StringVar(&flagAutoStrategy, "strategy", "expectimax", "Strategy ID (see 't2048 strategies')")
	autoplayCmd.Flags().StringVar(&flagAutoDifficulty, "difficulty", "", "AI tier: easy, medium, hard, expert, adaptive")
	autoplayCmd.Flags().IntVar(&flagAutoGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagAutoWorkers, "workers", 0, "Concurrent games (0 = from config)")
	autoplayCmd.Flags().DurationVar(&flagAutoBudget, "budget", 0, "Per-move time budget (0 = from config)")
	autoplayCmd.Flags().IntVar(&flagAutoMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = from config)")
	autoplayCmd.Flags().IntVar(&flagAutoTarget, "target", 0, "Winning tile (0 = from config)")
	autoplayCmd.Flags().BoolVar(&flagAutoKeepPlaying, "keep-playing", false, "Continue past the target")
	autoplayCmd.Flags().BoolVar(&flagAutoNoSave, "no-save", false, "Do not record results")
}

func runAutoplay(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagAutoStrategy) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", flagAutoStrategy)
		fmt.Fprintln(os.Stderr, "Run 't2048 strategies' to see available strategies.")
		os.Exit(1)
	}

	logger := newLogger()
	aiCfg, level := loadAIConfig(flagAutoDifficulty)

	cfg := autoplay.Config{
		Strategy:       flagAutoStrategy,
		Level:          level,
		Seed:           seed(),
		Target:         aiCfg.Runner.Target,
		KeepPlaying:    flagAutoKeepPlaying,
		MaxMoves:       aiCfg.Runner.MaxMoves,
		MoveBudget:     time.Duration(aiCfg.Runner.MoveBudgetMs) * time.Millisecond,
		Adaptive:       aiCfg.Adaptive.Enabled,
		AdaptiveConfig: aiCfg.ToAdaptive(),
	}
	if flagAutoTarget > 0 {
		cfg.Target = flagAutoTarget
	}
	if flagAutoMaxMoves > 0 {
		cfg.MaxMoves = flagAutoMaxMoves
	}
	if flagAutoBudget > 0 {
		cfg.MoveBudget = flagAutoBudget
	}
	workers := aiCfg.Runner.Workers
	if flagAutoWorkers > 0 {
		workers = flagAutoWorkers
	}

	// A nil *storage.Store must not become a non-nil interface.
	var results autoplay.ResultStore
	if !flagAutoNoSave {
		if store := openStore(logger); store != nil {
			defer store.Close()
			results = store
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := autoplay.NewRunner(newSelector(aiCfg), results, logger)

	if flagAutoGames <= 1 {
		res, err := runner.Play(ctx, cfg)
		if err != nil && !errors.Is(err, context.Canceled) {
			fail("%v", err)
		}
		printResult(res, errors.Is(err, context.Canceled))
		return
	}

	logger.Info("starting batch", "strategy", cfg.Strategy, "games", flagAutoGames, "workers", workers, "level", cfg.Level)
	all, err := runner.RunBatch(ctx, cfg, flagAutoGames, workers)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("batch stopped", "error", err)
	}
	printSummary(cfg.Strategy, all, flagAutoGames)
	if err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}

func printResult(res autoplay.Result, interrupted bool) {
	fmt.Println(tui.RenderBoard(res.Final, nil))
	fmt.Println()
	if interrupted {
		fmt.Println("Interrupted - this game was not recorded.")
	}

	outcome := "lost"
	if res.Won {
		outcome = "won"
	}
	fmt.Printf("  Strategy:   %s\n", res.Strategy)
	fmt.Printf("  Seed:       %d\n", res.Seed)
	fmt.Printf("  Outcome:    %s (target %d)\n", outcome, res.Target)
	fmt.Printf("  Score:      %d\n", res.Score)
	fmt.Printf("  Max tile:   %d\n", res.MaxTile)
	fmt.Printf("  Moves:      %d\n", res.Moves)
	fmt.Printf("  Tier:       %s -> %s (%d changes)\n", res.StartLevel, res.FinalLevel, res.LevelChanges)
	fmt.Printf("  Fallbacks:  %d\n", res.FallbackMoves)
	fmt.Printf("  Time:       %s\n", res.Duration.Round(time.Millisecond))
}

func printSummary(strategy string, results []autoplay.Result, requested int) {
	s := autoplay.Summarize(results)

	fmt.Printf("Autoplay - %s\n", strategy)
	fmt.Println()
	if s.Games < requested {
		fmt.Printf("  Finished %d of %d games\n", s.Games, requested)
	}
	if s.Games == 0 {
		return
	}

	fmt.Printf("  Games:      %d\n", s.Games)
	fmt.Printf("  Wins:       %d (%.0f%%)\n", s.Wins, 100*float64(s.Wins)/float64(s.Games))
	fmt.Printf("  Best:       %d\n", s.BestScore)
	fmt.Printf("  Average:    %.0f\n", s.AvgScore)
	fmt.Printf("  Median:     %d\n", s.MedianScore)
	fmt.Printf("  Fallbacks:  %d\n", s.FallbackMoves)
	fmt.Println()

	tiles := make([]int, 0, len(s.TileCounts))
	for tile := range s.TileCounts {
		tiles = append(tiles, tile)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiles)))

	fmt.Printf("  %-8s  %s\n", "Max tile", "Games")
	fmt.Printf("  %-8s  %s\n", "--------", "-----")
	for _, tile := range tiles {
		fmt.Printf("  %-8d  %d\n", tile, s.TileCounts[tile])
	}
}
