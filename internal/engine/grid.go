// Package engine implements the 2048 grid transition rules: line collapse,
// four-direction moves, random tile spawns and terminal detection.
// It has no UI, storage or logging dependencies.
//
// Tile values are checked once, when a grid is built with FromRows or
// ParseGrid. The transition functions trust their input, so a Grid written
// as a literal should go through Grid.Validate first.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// ErrInvalidGridShape is returned when input is not a Size x Size matrix of
// zeros and powers of two.
var ErrInvalidGridShape = errors.New("engine: invalid grid shape")

// Grid is a 4x4 board. Zero is an empty cell; any other value is a tile.
// Grid is a value type, so every transition works on its own copy.
type Grid [Size][Size]int

// Cell addresses a single grid position.
type Cell struct {
	Row int
	Col int
}

// FromRows builds a Grid from a row-major matrix, validating its shape and values.
func FromRows(rows [][]int) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidGridShape, len(rows), Size)
	}
	for r, row := range rows {
		if len(row) != Size {
			return g, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGridShape, r, len(row), Size)
		}
		copy(g[r][:], row)
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// ParseGrid parses the compact form produced by Grid.String,
// rows separated by '/' and cells by ','. Example: "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0".
func ParseGrid(s string) (Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "/")
	rows := make([][]int, 0, len(lines))
	for r, line := range lines {
		fields := strings.Split(line, ",")
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return Grid{}, fmt.Errorf("%w: row %d: %q is not a number", ErrInvalidGridShape, r, f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Validate checks that every cell is zero or a power of two >= 2.
func (g Grid) Validate() error {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if v != 0 && !isTileValue(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGridShape, r, c, v)
			}
		}
	}
	return nil
}

func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// EmptyCells returns all empty positions in row-major order.
func (g Grid) EmptyCells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// TileCount returns the number of occupied cells.
func (g Grid) TileCount() int {
	return Size*Size - g.EmptyCount()
}

// MaxTile returns the largest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// With returns a copy of the grid with the cell set to value.
func (g Grid) With(cell Cell, value int) Grid {
	g[cell.Row][cell.Col] = value
	return g
}

// Rows returns the grid as a freshly allocated row-major matrix.
func (g Grid) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range Size {
		rows[r] = append([]int(nil), g[r][:]...)
	}
	return rows
}

// String returns the compact "a,b,c,d/e,f,g,h/..." form accepted by ParseGrid.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(g[r][c]))
		}
	}
	return sb.String()
}

// transpose returns the matrix transpose.
func transpose(g Grid) Grid {
	var result Grid
	for r := range Size {
		for c := range Size {
			result[r][c] = g[c][r]
		}
	}
	return result
}

// rotate180 returns the grid turned half a revolution.
func rotate180(g Grid) Grid {
	var result Grid
	for r := range Size {
		for c := range Size {
			result[r][c] = g[Size-1-r][Size-1-c]
		}
	}
	return result
}
