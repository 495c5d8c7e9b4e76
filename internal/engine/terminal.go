package engine

// DefaultTarget is the tile value that counts as a win.
const DefaultTarget = 2048

// HasPossibleMerge returns true if any two orthogonal neighbours are equal.
func HasPossibleMerge(g Grid) bool {
	for r := range Size {
		for c := range Size {
			val := g[r][c]
			if val == 0 {
				continue
			}
			if c < Size-1 && g[r][c+1] == val {
				return true
			}
			if r < Size-1 && g[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the grid.
func CanMove(g Grid) bool {
	return g.EmptyCount() > 0 || HasPossibleMerge(g)
}

// IsGameOver reports a full grid with no equal row or column neighbours.
// Call it on the grid after the post-move spawn.
func IsGameOver(g Grid) bool {
	return !CanMove(g)
}

// HasReachedTarget returns true if any cell equals target.
func HasReachedTarget(g Grid, target int) bool {
	if target <= 0 {
		return false
	}
	for r := range Size {
		for c := range Size {
			if g[r][c] == target {
				return true
			}
		}
	}
	return false
}
