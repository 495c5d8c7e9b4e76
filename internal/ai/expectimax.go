package ai

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// MaxDepth caps the search depth. The tree grows by roughly 4*16*2 per ply.
const MaxDepth = 5

// SearchResult is the value of a searched position and the move that achieves it.
// HasMove is false when no direction changes the grid.
type SearchResult struct {
	ExpectedScore float64
	Direction     engine.Direction
	HasMove       bool
}

// SearchStats describes the work done by one search.
type SearchStats struct {
	Nodes      int
	ChanceHits int
}

// chanceKey identifies a chance node inside one search.
type chanceKey struct {
	grid  engine.Grid
	depth int
}

// Searcher runs Expectimax over a single root position.
// A Searcher is not safe for concurrent use; create one per search.
type Searcher struct {
	eval   *Evaluator
	chance map[chanceKey]float64
	stats  SearchStats
}

// NewSearcher creates a searcher that scores leaves with eval.
func NewSearcher(eval *Evaluator) *Searcher {
	return &Searcher{eval: eval}
}

// Search returns the expected value of g searched to depth plies.
// On the player's turn it also returns the best direction. Directions are
// tried in engine.Directions order and only a strictly greater value
// replaces the current best, so ties go to the earlier direction.
func (s *Searcher) Search(g engine.Grid, depth int, playerTurn bool) SearchResult {
	if depth > MaxDepth {
		depth = MaxDepth
	}
	if depth < 0 {
		depth = 0
	}

	// Chance values are only reused within one search.
	s.chance = make(map[chanceKey]float64)
	s.stats = SearchStats{}

	if playerTurn {
		return s.maxNode(g, depth)
	}
	return SearchResult{ExpectedScore: s.chanceNode(g, depth)}
}

// Stats returns counters for the most recent Search.
func (s *Searcher) Stats() SearchStats {
	return s.stats
}

func (s *Searcher) maxNode(g engine.Grid, depth int) SearchResult {
	s.stats.Nodes++

	if depth <= 0 || engine.IsGameOver(g) {
		return SearchResult{ExpectedScore: s.eval.Evaluate(g)}
	}

	best := SearchResult{ExpectedScore: math.Inf(-1)}
	for _, dir := range engine.Directions {
		res := engine.ApplyMove(g, dir)
		if !res.Moved {
			continue
		}
		v := s.chanceNode(res.Grid, depth-1)
		if !best.HasMove || v > best.ExpectedScore {
			best = SearchResult{ExpectedScore: v, Direction: dir, HasMove: true}
		}
	}

	if !best.HasMove {
		return SearchResult{ExpectedScore: s.eval.Evaluate(g)}
	}
	return best
}

// chanceNode averages over every empty cell, each a 90/10 mix of a 2 or 4 spawn.
// At depth 0 it scores the grid as it stands, before any spawn.
func (s *Searcher) chanceNode(g engine.Grid, depth int) float64 {
	s.stats.Nodes++

	if depth <= 0 {
		return s.eval.Evaluate(g)
	}

	key := chanceKey{grid: g, depth: depth}
	if v, ok := s.chance[key]; ok {
		s.stats.ChanceHits++
		return v
	}

	empty := g.EmptyCells()
	if len(empty) == 0 {
		v := s.eval.Evaluate(g)
		s.chance[key] = v
		return v
	}

	total := 0.0
	for _, cell := range empty {
		v2 := s.maxNode(g.With(cell, 2), depth).ExpectedScore
		v4 := s.maxNode(g.With(cell, 4), depth).ExpectedScore
		total += engine.SpawnProbability2*v2 + engine.SpawnProbability4*v4
	}

	v := total / float64(len(empty))
	s.chance[key] = v
	return v
}
