package autoplay

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// BatchSummary aggregates a batch of results.
type BatchSummary struct {
	Games         int
	Wins          int
	BestScore     int
	AvgScore      float64
	MedianScore   int
	BestTile      int
	FallbackMoves int
	// TileCounts maps a max tile to how many games ended with it.
	TileCounts map[int]int
}

// RunBatch plays games concurrently with at most workers in flight.
// Game i uses seed cfg.Seed+i, so a batch is reproducible from its base seed.
// The first error cancels the remaining games; results hold every game
// that finished, in seed order.
func (r *Runner) RunBatch(ctx context.Context, cfg Config, games, workers int) ([]Result, error) {
	if games <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]Result, games)
	done := make([]bool, games)
	for i := range games {
		gameCfg := cfg
		gameCfg.Seed = cfg.Seed + int64(i)

		g.Go(func() error {
			res, err := r.Play(ctx, gameCfg)
			if err != nil {
				return err
			}
			results[i] = res
			done[i] = true
			return nil
		})
	}

	err := g.Wait()

	finished := results[:0]
	for i, res := range results {
		if done[i] {
			finished = append(finished, res)
		}
	}
	return finished, err
}

// Summarize aggregates results.
func Summarize(results []Result) BatchSummary {
	s := BatchSummary{Games: len(results), TileCounts: make(map[int]int)}
	if len(results) == 0 {
		return s
	}

	scores := make([]int, 0, len(results))
	total := 0
	for _, res := range results {
		if res.Won {
			s.Wins++
		}
		s.BestScore = max(s.BestScore, res.Score)
		s.BestTile = max(s.BestTile, res.MaxTile)
		s.FallbackMoves += res.FallbackMoves
		s.TileCounts[res.MaxTile]++
		scores = append(scores, res.Score)
		total += res.Score
	}

	sort.Ints(scores)
	s.MedianScore = scores[len(scores)/2]
	s.AvgScore = float64(total) / float64(len(results))
	return s
}
