// Package autoplay plays complete 2048 games with a registered strategy,
// enforcing a per-move time budget and recording results.
package autoplay

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ResultStore persists finished runs. *storage.Store implements it.
type ResultStore interface {
	SaveRun(run storage.Run) (string, error)
	BestRunScore(strategy string) (int, error)
}

var _ ResultStore = (*storage.Store)(nil)

// Config describes one autoplay game.
type Config struct {
	Strategy string // registry ID
	Level    ai.Level
	Seed     int64
	Target   int // 0 uses engine.DefaultTarget
	// KeepPlaying continues past the target instead of stopping on a win.
	KeepPlaying bool
	// MaxMoves stops the game early; 0 plays until no move is left.
	MaxMoves int
	// MoveBudget bounds the time the strategy may spend on one move;
	// 0 disables the budget.
	MoveBudget time.Duration

	Adaptive       bool
	AdaptiveConfig ai.AdaptiveConfig
}

// Result is the outcome of one autoplay game.
type Result struct {
	ID            string
	Strategy      string
	Seed          int64
	StartLevel    ai.Level
	FinalLevel    ai.Level
	Target        int
	Score         int
	MaxTile       int
	Moves         int
	Won           bool
	FallbackMoves int
	LevelChanges  int
	Duration      time.Duration
	Final         engine.Grid
}

// Run converts the result into a storage row.
func (r Result) Run() storage.Run {
	return storage.Run{
		ID:            r.ID,
		Strategy:      r.Strategy,
		Level:         string(r.FinalLevel),
		Seed:          r.Seed,
		Target:        r.Target,
		Score:         r.Score,
		MaxTile:       r.MaxTile,
		Moves:         r.Moves,
		Won:           r.Won,
		FallbackMoves: r.FallbackMoves,
		LevelChanges:  r.LevelChanges,
		Duration:      r.Duration,
	}
}

// Runner plays games. It is safe for concurrent use when its store is.
type Runner struct {
	selector *ai.Selector
	store    ResultStore
	logger   *log.Logger
}

// NewRunner creates a runner. store and logger may be nil.
func NewRunner(sel *ai.Selector, store ResultStore, logger *log.Logger) *Runner {
	if sel == nil {
		sel = ai.NewSelector(ai.NewEvaluator(ai.DefaultWeights(), 0), nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		selector: sel,
		store:    store,
		logger:   logger,
	}
}

// Play runs one game to completion, the move limit, or ctx cancellation.
// On cancellation it returns the partial result together with ctx.Err();
// partial games are not stored.
func (r *Runner) Play(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Level == "" {
		cfg.Level = ai.LevelMedium
	}
	if cfg.Target == 0 {
		cfg.Target = engine.DefaultTarget
	}

	strategy, err := registry.Create(cfg.Strategy, registry.Deps{Selector: r.selector, Seed: cfg.Seed})
	if err != nil {
		return Result{}, fmt.Errorf("autoplay: %w", err)
	}

	res := Result{
		ID:         uuid.NewString(),
		Strategy:   strategy.ID(),
		Seed:       cfg.Seed,
		StartLevel: cfg.Level,
		FinalLevel: cfg.Level,
		Target:     cfg.Target,
	}
	logger := r.logger.With("run", res.ID[:8], "strategy", res.Strategy)

	var adaptive *ai.Adaptive
	if cfg.Adaptive {
		adaptive = ai.NewAdaptive(cfg.AdaptiveConfig, cfg.Level, r.bestScore(logger, res.Strategy))
	}

	game := engine.NewGame(cfg.Seed, cfg.Target)
	// Fallback picks get their own source so they never disturb spawn order.
	fallbackRng := rand.New(rand.NewSource(cfg.Seed ^ 0x2048))
	level := cfg.Level
	start := time.Now()

	logger.Debug("game started", "seed", cfg.Seed, "level", level, "target", cfg.Target)

	for game.CanAct() {
		if err := ctx.Err(); err != nil {
			r.finish(&res, game, level, adaptive, start)
			return res, err
		}
		if cfg.MaxMoves > 0 && game.Moves() >= cfg.MaxMoves {
			logger.Debug("move limit reached", "moves", game.Moves())
			break
		}

		dir, ok, fellBack := r.choose(ctx, strategy, game.Grid(), level, cfg.MoveBudget, fallbackRng)
		if !ok {
			break
		}
		if fellBack {
			res.FallbackMoves++
			logger.Debug("move budget exceeded", "move", game.Moves()+1, "fallback", dir)
		}

		if !game.Move(dir).Moved {
			// Strategies only return moving directions; guard against a
			// stalled loop all the same.
			return res, fmt.Errorf("autoplay: strategy %s chose non-moving direction %s", res.Strategy, dir)
		}

		if game.State() == engine.StateWon && cfg.KeepPlaying {
			logger.Info("target reached, continuing", "target", cfg.Target, "moves", game.Moves())
			game.KeepPlaying()
		}

		if adaptive != nil {
			if next := adaptive.Record(game.Score(), game.Moves()); next != level {
				logger.Info("difficulty changed", "from", level, "to", next, "score", game.Score())
				level = next
			}
		}
	}

	if adaptive != nil && game.State() == engine.StateOver && !game.Won() {
		level = adaptive.RecordLoss(game.Score())
	}
	r.finish(&res, game, level, adaptive, start)

	logger.Info("game finished",
		"score", res.Score,
		"max_tile", res.MaxTile,
		"moves", res.Moves,
		"won", res.Won,
		"level", res.FinalLevel,
		"fallbacks", res.FallbackMoves,
		"duration", res.Duration.Round(time.Millisecond),
	)

	if r.store != nil {
		if _, err := r.store.SaveRun(res.Run()); err != nil {
			return res, fmt.Errorf("autoplay: save run: %w", err)
		}
	}
	return res, nil
}

func (r *Runner) finish(res *Result, game *engine.Game, level ai.Level, adaptive *ai.Adaptive, start time.Time) {
	snap := game.Snapshot()
	res.Score = snap.Score
	res.MaxTile = snap.MaxTile
	res.Moves = snap.Moves
	res.Won = game.Won()
	res.Final = snap.Grid
	res.FinalLevel = level
	res.Duration = time.Since(start)
	if adaptive != nil {
		res.LevelChanges = adaptive.Changes()
	}
}

func (r *Runner) bestScore(logger *log.Logger, strategy string) int {
	if r.store == nil {
		return 0
	}
	best, err := r.store.BestRunScore(strategy)
	if err != nil {
		logger.Warn("could not read best score", "error", err)
		return 0
	}
	return best
}

type pick struct {
	dir engine.Direction
	ok  bool
}

// choose asks the strategy for a move within budget. When the budget or
// ctx expires first it falls back to a single-ply pick, then to the first
// legal move in random order. The abandoned search runs to completion in
// the background and its answer is dropped.
func (r *Runner) choose(ctx context.Context, s registry.Strategy, g engine.Grid, level ai.Level, budget time.Duration, rng *rand.Rand) (engine.Direction, bool, bool) {
	if budget <= 0 {
		dir, ok := s.NextMove(g, level)
		return dir, ok, false
	}

	ch := make(chan pick, 1)
	go func() {
		dir, ok := s.NextMove(g, level)
		ch <- pick{dir: dir, ok: ok}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case p := <-ch:
		return p.dir, p.ok, false
	case <-timer.C:
	case <-ctx.Done():
	}

	if dir, ok := r.selector.QuickMove(g, level); ok {
		return dir, true, true
	}
	dir, ok := ai.FallbackMove(g, rng)
	return dir, ok, true
}
