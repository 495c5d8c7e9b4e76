package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	tileWidth  = 8
	tileHeight = 3
)

// tileColors maps a tile value to background and foreground colours.
var tileColors = map[int][2]string{
	0:    {"#cdc1b4", "#cdc1b4"},
	2:    {"#eee4da", "#776e65"},
	4:    {"#ede0c8", "#776e65"},
	8:    {"#f2b179", "#f9f6f2"},
	16:   {"#f59563", "#f9f6f2"},
	32:   {"#f67c5f", "#f9f6f2"},
	64:   {"#f65e3b", "#f9f6f2"},
	128:  {"#edcf72", "#f9f6f2"},
	256:  {"#edcc61", "#f9f6f2"},
	512:  {"#edc850", "#f9f6f2"},
	1024: {"#edc53f", "#f9f6f2"},
	2048: {"#edc22e", "#f9f6f2"},
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bbada0")).
			Background(lipgloss.Color("#bbada0"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	bestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#edc22e"))
)

// tileStyle returns the style for a tile value. Values past 2048 share one colour.
func tileStyle(v int) lipgloss.Style {
	colors, ok := tileColors[v]
	if !ok {
		colors = [2]string{"#3c3a32", "#f9f6f2"}
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(v >= 8).
		Background(lipgloss.Color(colors[0])).
		Foreground(lipgloss.Color(colors[1]))
}

// RenderBoard draws the grid as coloured tiles. The spawned cell, when
// given, is underlined.
func RenderBoard(g engine.Grid, spawned *engine.Cell) string {
	rows := make([]string, engine.Size)
	for y := range engine.Size {
		cells := make([]string, engine.Size)
		for x := range engine.Size {
			v := g[y][x]
			label := ""
			if v != 0 {
				label = strconv.Itoa(v)
			}
			style := tileStyle(v)
			if spawned != nil && spawned.Row == y && spawned.Col == x {
				style = style.Underline(true)
			}
			cells[x] = style.Render(label)
		}
		rows[y] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderQuickScores formats single-ply direction scores, marking best.
func RenderQuickScores(scores [4]ai.DirectionScore, best engine.Direction, hasBest bool) string {
	var b strings.Builder
	for _, ds := range scores {
		line := fmt.Sprintf("%-6s %s", ds.Direction, formatScore(ds))
		if hasBest && ds.Direction == best {
			b.WriteString(bestStyle.Render("> " + line))
		} else {
			b.WriteString(dimStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatScore(ds ai.DirectionScore) string {
	if !ds.Moved || math.IsInf(ds.Score, -1) {
		return "blocked"
	}
	return fmt.Sprintf("%.1f", ds.Score)
}

// RenderFeatures lists the heuristic features of a grid.
func RenderFeatures(f ai.FeatureSet) string {
	lines := []string{
		fmt.Sprintf("empty cells       %6.0f", f.EmptyCells),
		fmt.Sprintf("smoothness        %6.2f", f.Smoothness),
		fmt.Sprintf("monotonicity      %6.2f", f.Monotonicity),
		fmt.Sprintf("max tile          %6.0f", f.MaxValue),
		fmt.Sprintf("position score    %6.1f", f.PositionScore),
		fmt.Sprintf("potential merges  %6.0f", f.PotentialMerges),
		fmt.Sprintf("corner max        %6.0f", f.CornerMax),
		fmt.Sprintf("trapped penalty   %6.1f", f.TrappedPenalty),
	}
	return strings.Join(lines, "\n")
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
