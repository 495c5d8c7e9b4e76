package engine

import (
	"math/rand"
	"testing"
)

func TestApplyMoveLeft(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	res := ApplyMove(g, Left)

	if res.Grid != expected {
		t.Errorf("ApplyMove(Left): got\n%v\nwant\n%v", res.Grid, expected)
	}
	if !res.Moved {
		t.Error("ApplyMove(Left) should report moved")
	}
	if res.ScoreGained != 4+8+4+4 {
		t.Errorf("ApplyMove(Left) score = %d, want 20", res.ScoreGained)
	}
	if res.MergeCount != 4 {
		t.Errorf("ApplyMove(Left) merges = %d, want 4", res.MergeCount)
	}
}

func TestApplyMoveRight(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	res := ApplyMove(g, Right)

	if res.Grid != expected {
		t.Errorf("ApplyMove(Right): got\n%v\nwant\n%v", res.Grid, expected)
	}
	if !res.Moved {
		t.Error("ApplyMove(Right) should report moved")
	}
}

func TestApplyMoveUp(t *testing.T) {
	g := Grid{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Grid{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := ApplyMove(g, Up)

	if res.Grid != expected {
		t.Errorf("ApplyMove(Up): got\n%v\nwant\n%v", res.Grid, expected)
	}
	if !res.Moved {
		t.Error("ApplyMove(Up) should report moved")
	}
}

func TestApplyMoveDown(t *testing.T) {
	g := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	res := ApplyMove(g, Down)

	if res.Grid != expected {
		t.Errorf("ApplyMove(Down): got\n%v\nwant\n%v", res.Grid, expected)
	}
	if !res.Moved {
		t.Error("ApplyMove(Down) should report moved")
	}
}

func TestApplyMoveScenario(t *testing.T) {
	g := Grid{{2, 2, 0, 0}}
	res := ApplyMove(g, Left)

	want := Grid{{4, 0, 0, 0}}
	if res.Grid != want || !res.Moved || res.ScoreGained != 4 || res.MergeCount != 1 {
		t.Errorf("ApplyMove(%v, Left) = %+v, want grid %v moved score 4 merges 1", g, res, want)
	}
}

func TestNoChangeNoMove(t *testing.T) {
	g := Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	for _, dir := range []Direction{Left, Up} {
		res := ApplyMove(g, dir)
		if res.Moved {
			t.Errorf("ApplyMove(%s) should not move already packed tiles", dir)
		}
		if res.Grid != g {
			t.Errorf("ApplyMove(%s) changed grid on a no-op:\n%v", dir, res.Grid)
		}
		if res.ScoreGained != 0 || res.MergeCount != 0 {
			t.Errorf("ApplyMove(%s) no-op reported score %d merges %d", dir, res.ScoreGained, res.MergeCount)
		}
	}
}

func TestApplyMoveUnknownDirection(t *testing.T) {
	g := Grid{{2, 2, 0, 0}}
	res := ApplyMove(g, Direction(9))
	if res.Moved || res.Grid != g {
		t.Errorf("ApplyMove(unknown) = %+v, want no-op", res)
	}
}

// randomGrid fills roughly 60% of cells with tiles up to 64.
func randomGrid(rng *rand.Rand) Grid {
	var g Grid
	for r := range Size {
		for c := range Size {
			if rng.Float64() < 0.6 {
				g[r][c] = 1 << (1 + rng.Intn(6))
			}
		}
	}
	return g
}

func gridSum(g Grid) int {
	sum := 0
	for r := range Size {
		for c := range Size {
			sum += g[r][c]
		}
	}
	return sum
}

func TestMoveConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		g := randomGrid(rng)
		for _, dir := range Directions {
			res := ApplyMove(g, dir)

			if got, want := res.Grid.TileCount(), g.TileCount()-res.MergeCount; got != want {
				t.Fatalf("ApplyMove(%v, %s) tile count = %d, want %d", g, dir, got, want)
			}
			if gridSum(res.Grid) != gridSum(g) {
				t.Fatalf("ApplyMove(%v, %s) changed tile sum %d -> %d", g, dir, gridSum(g), gridSum(res.Grid))
			}
			if res.ScoreGained < 0 {
				t.Fatalf("ApplyMove(%v, %s) negative score %d", g, dir, res.ScoreGained)
			}
			if res.MergeCount == 0 && res.ScoreGained != 0 {
				t.Fatalf("ApplyMove(%v, %s) scored %d without merges", g, dir, res.ScoreGained)
			}
			if res.MergeCount > 0 && res.ScoreGained < 4*res.MergeCount {
				t.Fatalf("ApplyMove(%v, %s) score %d too low for %d merges", g, dir, res.ScoreGained, res.MergeCount)
			}
			if !res.Moved && res.Grid != g {
				t.Fatalf("ApplyMove(%v, %s) reported no move but changed grid", g, dir)
			}

			merges, score, ok := mergeAccount(g, res.Grid)
			if !ok {
				t.Fatalf("ApplyMove(%v, %s) = %v is not the input with pairs doubled", g, dir, res.Grid)
			}
			if merges != res.MergeCount {
				t.Fatalf("ApplyMove(%v, %s) doubled %d pairs, MergeCount %d", g, dir, merges, res.MergeCount)
			}
			if score != res.ScoreGained {
				t.Fatalf("ApplyMove(%v, %s) merged tiles sum to %d, ScoreGained %d", g, dir, score, res.ScoreGained)
			}
		}
	}
}

// mergeAccount explains the tile values of after as those of before with
// some equal pairs replaced by their sum. It returns the number of pairs
// and the sum of the merged tiles, or false when no such pairing exists.
func mergeAccount(before, after Grid) (merges, score int, ok bool) {
	have := map[int]int{}
	want := map[int]int{}
	for r := range Size {
		for c := range Size {
			if v := before[r][c]; v != 0 {
				have[v]++
			}
			if v := after[r][c]; v != 0 {
				want[v]++
			}
		}
	}

	for v := 2; v <= 1<<17; v *= 2 {
		extra := have[v] - want[v]
		if extra < 0 || extra%2 != 0 {
			return 0, 0, false
		}
		pairs := extra / 2
		have[2*v] += pairs
		merges += pairs
		score += pairs * 2 * v
	}
	return merges, score, true
}

func TestDirectionalSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		g := randomGrid(rng)

		left := ApplyMove(g, Left)
		right := ApplyMove(rotate180(g), Right)
		if left.Grid != rotate180(right.Grid) || left.ScoreGained != right.ScoreGained || left.Moved != right.Moved {
			t.Fatalf("Left/Right asymmetry on %v", g)
		}

		up := ApplyMove(g, Up)
		viaLeft := ApplyMove(transpose(g), Left)
		if up.Grid != transpose(viaLeft.Grid) || up.MergeCount != viaLeft.MergeCount {
			t.Fatalf("Up/transpose-Left asymmetry on %v", g)
		}

		down := ApplyMove(g, Down)
		viaRight := ApplyMove(transpose(g), Right)
		if down.Grid != transpose(viaRight.Grid) || down.MergeCount != viaRight.MergeCount {
			t.Fatalf("Down/transpose-Right asymmetry on %v", g)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", Up},
		{"DOWN", Down},
		{" l ", Left},
		{"r", Right},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) should fail")
	}
}
