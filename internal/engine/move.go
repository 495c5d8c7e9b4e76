package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the fixed order used for
// iteration and tie-breaking.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or its first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// MoveResult is the outcome of applying one direction to a grid.
// When Moved is false Grid equals the input and no tile should be spawned.
type MoveResult struct {
	Grid        Grid
	Moved       bool
	ScoreGained int
	MergeCount  int
}

// ApplyMove slides every line of the grid in the given direction.
// It never spawns a tile; see Spawner. The grid is assumed valid.
func ApplyMove(g Grid, dir Direction) MoveResult {
	res := MoveResult{Grid: g}
	if dir < Up || dir > Right {
		return res
	}

	for i := range Size {
		lr := TransformLine(extractLine(g, dir, i))
		if !lr.Changed {
			continue
		}
		writeLine(&res.Grid, dir, i, lr.Line)
		res.Moved = true
		res.ScoreGained += lr.Score
		res.MergeCount += lr.Merges
	}

	return res
}

// extractLine reads row or column i oriented toward the direction of travel.
// Rows are reversed for Right, columns for Down.
func extractLine(g Grid, dir Direction, i int) Line {
	var line Line
	for j := range Size {
		switch dir {
		case Left:
			line[j] = g[i][j]
		case Right:
			line[j] = g[i][Size-1-j]
		case Up:
			line[j] = g[j][i]
		case Down:
			line[j] = g[Size-1-j][i]
		}
	}
	return line
}

// writeLine is the inverse of extractLine.
func writeLine(g *Grid, dir Direction, i int, line Line) {
	for j := range Size {
		switch dir {
		case Left:
			g[i][j] = line[j]
		case Right:
			g[i][Size-1-j] = line[j]
		case Up:
			g[j][i] = line[j]
		case Down:
			g[Size-1-j][i] = line[j]
		}
	}
}
