// Package tui provides the Bubble Tea front end: an interactive 2048 board
// with AI hints and an AI watch mode, a results table, and an SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// TickMsg paces the AI in watch mode.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// searchMsg carries a finished search. Grid is the position that was
// searched, so a stale answer for an older position can be dropped.
type searchMsg struct {
	grid   engine.Grid
	result ai.SearchResult
	stats  ai.SearchStats
	hint   bool
}

// searchCmd runs Expectimax off the UI goroutine.
func searchCmd(sel *ai.Selector, g engine.Grid, level ai.Level, hint bool) tea.Cmd {
	return func() tea.Msg {
		res, stats := sel.Search(g, level)
		return searchMsg{grid: g, result: res, stats: stats, hint: hint}
	}
}
