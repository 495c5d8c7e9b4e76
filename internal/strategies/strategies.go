// Package strategies registers the built-in move strategies.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tui-2048/internal/strategies"
package strategies

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func init() {
	registry.Register("expectimax", func(d registry.Deps) registry.Strategy {
		return &Expectimax{sel: d.Selector}
	})
	registry.Register("greedy", func(d registry.Deps) registry.Strategy {
		return &Greedy{sel: d.Selector}
	})
	registry.Register("random", func(d registry.Deps) registry.Strategy {
		return NewRandom(d.Seed)
	})
}

var (
	defaultSelector     *ai.Selector
	defaultSelectorOnce sync.Once
)

// selectorOr returns sel, or a shared selector with stock tuning when sel is nil.
func selectorOr(sel *ai.Selector) *ai.Selector {
	if sel != nil {
		return sel
	}
	defaultSelectorOnce.Do(func() {
		defaultSelector = ai.NewSelector(ai.NewEvaluator(ai.DefaultWeights(), 0), nil)
	})
	return defaultSelector
}

// Expectimax searches to the tier's depth.
type Expectimax struct {
	sel *ai.Selector
}

func (*Expectimax) ID() string    { return "expectimax" }
func (*Expectimax) Title() string { return "Expectimax search" }

func (s *Expectimax) NextMove(g engine.Grid, level ai.Level) (engine.Direction, bool) {
	return selectorOr(s.sel).SelectMove(g, level)
}

// Greedy picks the best move one ply ahead, ignoring spawns.
type Greedy struct {
	sel *ai.Selector
}

func (*Greedy) ID() string    { return "greedy" }
func (*Greedy) Title() string { return "Greedy single-ply" }

func (s *Greedy) NextMove(g engine.Grid, level ai.Level) (engine.Direction, bool) {
	return selectorOr(s.sel).QuickMove(g, level)
}

// Random plays the first legal move in a shuffled direction order.
// It ignores the tier.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a random strategy. Equal seeds, zero included, replay
// the same choices, so a game's seed also fixes its random moves.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) ID() string    { return "random" }
func (*Random) Title() string { return "Random legal move" }

func (s *Random) NextMove(g engine.Grid, _ ai.Level) (engine.Direction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ai.FallbackMove(g, s.rng)
}
