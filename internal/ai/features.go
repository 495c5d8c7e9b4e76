// Package ai scores 2048 grids and picks moves with depth-limited Expectimax.
package ai

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// positionalWeights is a snake path anchored in the top-left corner.
var positionalWeights = [engine.Size][engine.Size]float64{
	{15, 14, 13, 12},
	{8, 9, 10, 11},
	{7, 6, 5, 4},
	{0, 1, 2, 3},
}

// FeatureSet holds the raw, unweighted heuristic features of one grid.
type FeatureSet struct {
	EmptyCells      float64
	Smoothness      float64
	Monotonicity    float64
	MaxValue        float64
	PositionScore   float64
	PotentialMerges float64
	CornerMax       float64
	TrappedPenalty  float64
}

// Score combines the features with the given weights. The trapped penalty
// is subtracted; every other term is added.
func (f FeatureSet) Score(w Weights) float64 {
	return w.EmptyCells*f.EmptyCells +
		w.Smoothness*f.Smoothness +
		w.Monotonicity*f.Monotonicity +
		w.MaxValue*f.MaxValue +
		w.PositionScore*f.PositionScore +
		w.PotentialMerges*f.PotentialMerges +
		w.CornerMax*f.CornerMax -
		w.TrappedPenalty*f.TrappedPenalty
}

// Features computes every heuristic feature of g.
func Features(g engine.Grid) FeatureSet {
	logs := logGrid(g)
	return FeatureSet{
		EmptyCells:      float64(g.EmptyCount()),
		Smoothness:      smoothness(logs),
		Monotonicity:    monotonicity(logs),
		MaxValue:        float64(g.MaxTile()),
		PositionScore:   positionScore(logs),
		PotentialMerges: float64(potentialMerges(g)),
		CornerMax:       cornerMax(g),
		TrappedPenalty:  trappedPenalty(g, logs),
	}
}

// logGrid maps every tile to log2(value); empty cells stay 0.
func logGrid(g engine.Grid) [engine.Size][engine.Size]float64 {
	var logs [engine.Size][engine.Size]float64
	for r := range engine.Size {
		for c := range engine.Size {
			if v := g[r][c]; v > 0 {
				logs[r][c] = math.Log2(float64(v))
			}
		}
	}
	return logs
}

// smoothness is the negated sum of log2 differences between each tile and
// its nearest non-empty neighbour to the right and below.
func smoothness(logs [engine.Size][engine.Size]float64) float64 {
	total := 0.0
	for r := range engine.Size {
		for c := range engine.Size {
			v := logs[r][c]
			if v == 0 {
				continue
			}
			for x := c + 1; x < engine.Size; x++ {
				if n := logs[r][x]; n != 0 {
					total += math.Abs(v - n)
					break
				}
			}
			for y := r + 1; y < engine.Size; y++ {
				if n := logs[y][c]; n != 0 {
					total += math.Abs(v - n)
					break
				}
			}
		}
	}
	return -total
}

// monotonicity scores each row and column by its smaller violation: the
// increases that break a non-increasing order versus the decreases that
// break a non-decreasing one. Both accumulators are <= 0, so the max is the
// least violated ordering. A perfectly ordered board scores 0.
func monotonicity(logs [engine.Size][engine.Size]float64) float64 {
	total := 0.0
	for i := range engine.Size {
		var row, col [engine.Size]float64
		for j := range engine.Size {
			row[j] = logs[i][j]
			col[j] = logs[j][i]
		}
		total += lineMonotonicity(row) + lineMonotonicity(col)
	}
	return total
}

func lineMonotonicity(line [engine.Size]float64) float64 {
	increasing, decreasing := 0.0, 0.0
	for k := 0; k < engine.Size-1; k++ {
		cur, next := line[k], line[k+1]
		if cur > next {
			increasing += next - cur
		} else {
			decreasing += cur - next
		}
	}
	return math.Max(increasing, decreasing)
}

func positionScore(logs [engine.Size][engine.Size]float64) float64 {
	score := 0.0
	for r := range engine.Size {
		for c := range engine.Size {
			score += logs[r][c] * positionalWeights[r][c]
		}
	}
	return score
}

// potentialMerges counts equal non-empty pairs to the right and below.
func potentialMerges(g engine.Grid) int {
	count := 0
	for r := range engine.Size {
		for c := range engine.Size {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if c < engine.Size-1 && g[r][c+1] == v {
				count++
			}
			if r < engine.Size-1 && g[r+1][c] == v {
				count++
			}
		}
	}
	return count
}

// cornerMax is 1 when a maximum-value tile sits in a corner.
func cornerMax(g engine.Grid) float64 {
	maxVal := g.MaxTile()
	if maxVal == 0 {
		return 0
	}
	last := engine.Size - 1
	if g[0][0] == maxVal || g[0][last] == maxVal || g[last][0] == maxVal || g[last][last] == maxVal {
		return 1
	}
	return 0
}

// trappedPenalty sums log2 of tiles with no empty and no equal neighbour.
func trappedPenalty(g engine.Grid, logs [engine.Size][engine.Size]float64) float64 {
	penalty := 0.0
	for r := range engine.Size {
		for c := range engine.Size {
			if g[r][c] != 0 && isTrapped(g, r, c) {
				penalty += logs[r][c]
			}
		}
	}
	return penalty
}

var neighbourOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func isTrapped(g engine.Grid, r, c int) bool {
	v := g[r][c]
	for _, off := range neighbourOffsets {
		y, x := r+off[0], c+off[1]
		if y < 0 || y >= engine.Size || x < 0 || x >= engine.Size {
			continue
		}
		if n := g[y][x]; n == 0 || n == v {
			return false
		}
	}
	return true
}
