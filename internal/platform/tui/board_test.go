package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"

	_ "github.com/vovakirdan/tui-2048/internal/strategies"
)

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

func TestRenderBoardShowsTiles(t *testing.T) {
	g, err := engine.ParseGrid("2,4,8,16/32,64,128,256/512,1024,2048,4096/0,0,0,0")
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}

	out := RenderBoard(g, &engine.Cell{Row: 0, Col: 0})
	for _, want := range []string{"2", "16", "256", "2048", "4096"} {
		if !contains(out, want) {
			t.Errorf("RenderBoard() missing tile %s", want)
		}
	}
	if contains(out, " 0 ") {
		t.Error("empty cells should render blank")
	}
}

func TestRenderQuickScores(t *testing.T) {
	scores := [4]ai.DirectionScore{
		{Direction: engine.Up, Moved: true, Score: 12.5},
		{Direction: engine.Down, Moved: false, Score: math.Inf(-1)},
		{Direction: engine.Left, Moved: true, Score: 40},
		{Direction: engine.Right, Moved: true, Score: 3},
	}

	out := RenderQuickScores(scores, engine.Left, true)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !contains(lines[2], "> left") || !contains(lines[2], "40.0") {
		t.Errorf("best line = %q", lines[2])
	}
	if !contains(lines[1], "blocked") {
		t.Errorf("blocked line = %q", lines[1])
	}

	out = RenderQuickScores(scores, engine.Left, false)
	if contains(out, ">") {
		t.Error("no direction should be marked without a best move")
	}
}

func TestRenderFeatures(t *testing.T) {
	var g engine.Grid
	g[0][0] = 64
	out := RenderFeatures(ai.Features(g))

	if got := len(strings.Split(out, "\n")); got != 8 {
		t.Errorf("got %d feature lines, want 8", got)
	}
	for _, want := range []string{"empty cells", "15", "max tile", "64"} {
		if !contains(out, want) {
			t.Errorf("RenderFeatures() missing %q", want)
		}
	}
}

func TestBoardName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "classic"},
		{-1, "classic"},
		{1, "level-1"},
		{7, "level-7"},
	}

	for _, tt := range tests {
		if got := BoardName(tt.level); got != tt.want {
			t.Errorf("BoardName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestResultTabs(t *testing.T) {
	tabs := ResultTabs()

	if tabs[0].Board != "classic" {
		t.Errorf("first tab = %+v, want classic scores", tabs[0])
	}
	humans, strategies := 0, map[string]bool{}
	for _, tab := range tabs {
		if tab.Board != "" {
			humans++
		}
		if tab.Strategy != "" {
			strategies[tab.Strategy] = true
		}
	}
	if humans != engine.LevelCount()+1 {
		t.Errorf("got %d human tabs, want %d", humans, engine.LevelCount()+1)
	}
	for _, id := range []string{"expectimax", "greedy", "random"} {
		if !strategies[id] {
			t.Errorf("missing strategy tab %q", id)
		}
	}
}

func TestResultsWithoutStore(t *testing.T) {
	m := NewResultsModel(nil, 100, 30)
	if !contains(m.View(), "No results database.") {
		t.Error("View() should explain the missing database")
	}
}

func TestResultsTabsCycle(t *testing.T) {
	m := NewResultsModel(nil, 100, 30)
	n := len(m.tabs)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after tab, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ResultsModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ResultsModel)
	if m.cursor != n-1 {
		t.Errorf("cursor = %d, want wrap to %d", m.cursor, n-1)
	}
}

func TestResultsShowStoredRows(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.SaveScore("classic", 4321, 256); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveRun(storage.Run{Strategy: "greedy", Level: "medium", Score: 9876, MaxTile: 512, Moves: 600}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewResultsModel(store, 120, 30)
	if view := m.View(); !contains(view, "4321") {
		t.Errorf("classic tab should list the saved score:\n%s", view)
	}

	for m.current().Strategy != "greedy" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ResultsModel)
	}
	view := m.View()
	if !contains(view, "9876") || !contains(view, "medium") {
		t.Errorf("greedy tab should list the saved run:\n%s", view)
	}
}
