package ai

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Single-ply bonus scales used by QuickMove.
const (
	cornerTileBonus      = 100.0
	cornerNeighbourBonus = 20.0
	monotoneLineBonus    = 10.0
)

// Selector picks moves for a difficulty tier. It shares one Evaluator
// across calls and is safe for concurrent use.
type Selector struct {
	eval     *Evaluator
	profiles Profiles
}

// NewSelector creates a selector. A nil profiles map uses DefaultProfiles.
func NewSelector(eval *Evaluator, profiles Profiles) *Selector {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	return &Selector{eval: eval, profiles: profiles}
}

// Evaluator returns the shared evaluator.
func (s *Selector) Evaluator() *Evaluator {
	return s.eval
}

// Profile returns the profile used for level.
func (s *Selector) Profile(level Level) Profile {
	return s.profiles.Get(level)
}

// SelectMove runs Expectimax at the level's search depth. It returns
// false when no direction moves, which only happens on a finished grid.
func (s *Selector) SelectMove(g engine.Grid, level Level) (engine.Direction, bool) {
	res, _ := s.Search(g, level)
	return res.Direction, res.HasMove
}

// Search is SelectMove with the full result and search counters.
func (s *Selector) Search(g engine.Grid, level Level) (SearchResult, SearchStats) {
	return s.SearchDepth(g, s.Profile(level).SearchDepth)
}

// SearchDepth runs Expectimax to an explicit depth. Depths below one are
// raised to one so a live grid always yields a move.
func (s *Selector) SearchDepth(g engine.Grid, depth int) (SearchResult, SearchStats) {
	if depth < 1 {
		depth = 1
	}
	searcher := NewSearcher(s.eval)
	res := searcher.Search(g, depth, true)
	return res, searcher.Stats()
}

// DirectionScore is the single-ply rating of one direction.
type DirectionScore struct {
	Direction engine.Direction
	Moved     bool
	Score     float64
}

// QuickScores rates every direction by its post-move grid without
// looking at spawns. Directions that do not move score -Inf.
func (s *Selector) QuickScores(g engine.Grid, level Level) [4]DirectionScore {
	prof := s.Profile(level)
	mult := prof.Multiplier
	if mult == 0 {
		mult = 1
	}

	var scores [4]DirectionScore
	for i, dir := range engine.Directions {
		res := engine.ApplyMove(g, dir)
		scores[i] = DirectionScore{Direction: dir, Moved: res.Moved, Score: math.Inf(-1)}
		if !res.Moved {
			continue
		}

		base := s.eval.Evaluate(res.Grid) + cornerAdjacencyBonus(res.Grid) + monotoneBonus(res.Grid)
		scores[i].Score = base*mult + prof.StrategicBonus*cornerMax(res.Grid)
	}
	return scores
}

// QuickMove picks the best single-ply direction; it is the cheap
// alternative when a full search is too slow.
func (s *Selector) QuickMove(g engine.Grid, level Level) (engine.Direction, bool) {
	var best DirectionScore
	found := false
	for _, ds := range s.QuickScores(g, level) {
		if !ds.Moved {
			continue
		}
		if !found || ds.Score > best.Score {
			best = ds
			found = true
		}
	}
	return best.Direction, found
}

// FallbackMove scans all four directions in random order and returns the
// first that moves. False means the game is over.
func FallbackMove(g engine.Grid, rng *rand.Rand) (engine.Direction, bool) {
	for _, i := range rng.Perm(len(engine.Directions)) {
		dir := engine.Directions[i]
		if engine.ApplyMove(g, dir).Moved {
			return dir, true
		}
	}
	return 0, false
}

// cornerAdjacencyBonus rewards a corner-anchored maximum tile and large
// tiles lined up next to it.
func cornerAdjacencyBonus(g engine.Grid) float64 {
	maxVal := g.MaxTile()
	if maxVal == 0 {
		return 0
	}
	last := engine.Size - 1
	corners := [4]engine.Cell{{Row: 0, Col: 0}, {Row: 0, Col: last}, {Row: last, Col: 0}, {Row: last, Col: last}}

	for _, corner := range corners {
		if g[corner.Row][corner.Col] != maxVal {
			continue
		}
		bonus := cornerTileBonus * math.Log2(float64(maxVal))
		for _, off := range neighbourOffsets {
			y, x := corner.Row+off[0], corner.Col+off[1]
			if y < 0 || y > last || x < 0 || x > last {
				continue
			}
			if v := g[y][x]; v > 0 && v*2 >= maxVal {
				bonus += cornerNeighbourBonus * math.Log2(float64(v))
			}
		}
		return bonus
	}
	return 0
}

// monotoneBonus counts rows and columns that are fully ordered either way.
func monotoneBonus(g engine.Grid) float64 {
	logs := logGrid(g)
	count := 0
	for i := range engine.Size {
		var row, col [engine.Size]float64
		for j := range engine.Size {
			row[j] = logs[i][j]
			col[j] = logs[j][i]
		}
		if lineMonotonicity(row) == 0 {
			count++
		}
		if lineMonotonicity(col) == 0 {
			count++
		}
	}
	return monotoneLineBonus * float64(count)
}
