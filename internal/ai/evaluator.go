package ai

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// DefaultCacheSize bounds the evaluation cache when no size is configured.
const DefaultCacheSize = 1 << 16

// Weights are the coefficients applied to each heuristic feature.
type Weights struct {
	EmptyCells      float64
	Smoothness      float64
	Monotonicity    float64
	MaxValue        float64
	PositionScore   float64
	PotentialMerges float64
	CornerMax       float64
	TrappedPenalty  float64
}

// DefaultWeights returns the stock tuning.
func DefaultWeights() Weights {
	return Weights{
		EmptyCells:      270,
		Smoothness:      0.1,
		Monotonicity:    47,
		MaxValue:        1,
		PositionScore:   10,
		PotentialMerges: 700,
		CornerMax:       500,
		TrappedPenalty:  100,
	}
}

// CacheStats reports evaluation cache usage.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// HitRate returns hits / lookups, or 0 before any lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Evaluator scores grids with a fixed set of weights and memoizes results
// in a bounded LRU cache keyed by exact grid content.
// It is safe for concurrent use.
type Evaluator struct {
	weights Weights
	cache   *lru.Cache[engine.Grid, float64]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewEvaluator creates an evaluator. A cacheSize <= 0 uses DefaultCacheSize.
func NewEvaluator(w Weights, cacheSize int) *Evaluator {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[engine.Grid, float64](cacheSize)
	return &Evaluator{
		weights: w,
		cache:   cache,
	}
}

// Evaluate returns the weighted heuristic score of g; higher is better.
func (e *Evaluator) Evaluate(g engine.Grid) float64 {
	if v, ok := e.cache.Get(g); ok {
		e.hits.Add(1)
		return v
	}
	e.misses.Add(1)

	v := Features(g).Score(e.weights)
	e.cache.Add(g, v)
	return v
}

// Weights returns the evaluator's coefficients.
func (e *Evaluator) Weights() Weights {
	return e.weights
}

// Reset empties the cache and its counters, typically between games.
func (e *Evaluator) Reset() {
	e.cache.Purge()
	e.hits.Store(0)
	e.misses.Store(0)
}

// Stats returns the current cache counters.
func (e *Evaluator) Stats() CacheStats {
	return CacheStats{
		Hits:   e.hits.Load(),
		Misses: e.misses.Load(),
		Size:   e.cache.Len(),
	}
}
