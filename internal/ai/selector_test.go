package ai

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

func TestSelectMoveSingleLegalMove(t *testing.T) {
	s := NewSelector(NewEvaluator(DefaultWeights(), 0), nil)

	for _, level := range []Level{LevelEasy, LevelMedium} {
		dir, ok := s.SelectMove(onlyLeft, level)
		if !ok || dir != engine.Left {
			t.Errorf("SelectMove(onlyLeft, %s) = %s, %v, want left", level, dir, ok)
		}
	}
}

func TestSelectMoveGameOver(t *testing.T) {
	s := NewSelector(NewEvaluator(DefaultWeights(), 0), nil)

	if _, ok := s.SelectMove(noMoves, LevelHard); ok {
		t.Error("SelectMove(noMoves) should report no move")
	}
	if _, ok := s.QuickMove(noMoves, LevelHard); ok {
		t.Error("QuickMove(noMoves) should report no move")
	}
}

func TestSelectMoveDepthZeroProfile(t *testing.T) {
	profiles := DefaultProfiles()
	prof := profiles[LevelMedium]
	prof.SearchDepth = 0
	profiles[LevelMedium] = prof
	s := NewSelector(NewEvaluator(DefaultWeights(), 0), profiles)

	live := engine.Grid{{2, 2, 0, 0}}
	if engine.IsGameOver(live) {
		t.Fatal("test grid should still have moves")
	}
	if _, ok := s.SelectMove(live, LevelMedium); !ok {
		t.Error("SelectMove() with depth 0 should still find a move on a live grid")
	}
	if dir, ok := s.SelectMove(onlyLeft, LevelMedium); !ok || dir != engine.Left {
		t.Errorf("SelectMove(onlyLeft) = %s, %v, want left", dir, ok)
	}
	if res, _ := s.SearchDepth(live, -3); !res.HasMove {
		t.Error("SearchDepth() with a negative depth should still find a move")
	}
}

func TestQuickScores(t *testing.T) {
	s := NewSelector(NewEvaluator(DefaultWeights(), 0), nil)
	scores := s.QuickScores(onlyLeft, LevelExpert)

	for _, ds := range scores {
		if ds.Direction == engine.Left {
			continue
		}
		if ds.Moved || !math.IsInf(ds.Score, -1) {
			t.Errorf("QuickScores[%s] = %+v, want unmoved with -Inf", ds.Direction, ds)
		}
	}

	moved := engine.ApplyMove(onlyLeft, engine.Left).Grid
	base := s.Evaluator().Evaluate(moved) + cornerAdjacencyBonus(moved) + monotoneBonus(moved)
	want := base*1.5 + 1000*cornerMax(moved)

	left := scores[engine.Left]
	if !left.Moved || !almostEqual(left.Score, want) {
		t.Errorf("QuickScores[left] = %+v, want score %v", left, want)
	}

	if dir, ok := s.QuickMove(onlyLeft, LevelExpert); !ok || dir != engine.Left {
		t.Errorf("QuickMove(onlyLeft) = %s, %v, want left", dir, ok)
	}
}

func TestFallbackMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for range 10 {
		if dir, ok := FallbackMove(onlyLeft, rng); !ok || dir != engine.Left {
			t.Fatalf("FallbackMove(onlyLeft) = %s, %v, want left", dir, ok)
		}
	}
	if _, ok := FallbackMove(noMoves, rng); ok {
		t.Error("FallbackMove(noMoves) should report no move")
	}
}

func TestProfilesGet(t *testing.T) {
	custom := Profile{SearchDepth: 1}

	tests := []struct {
		name     string
		profiles Profiles
		level    Level
		want     Profile
	}{
		{"present", DefaultProfiles(), LevelHard, DefaultProfiles()[LevelHard]},
		{"falls back to medium", Profiles{LevelMedium: custom}, LevelExpert, custom},
		{"falls back to stock medium", Profiles{}, LevelEasy, DefaultProfiles()[LevelMedium]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profiles.Get(tt.level); got != tt.want {
				t.Errorf("Get(%s) = %+v, want %+v", tt.level, got, tt.want)
			}
		})
	}
}

func TestDefaultProfilesGrowStronger(t *testing.T) {
	p := DefaultProfiles()
	for i := 1; i < len(Levels); i++ {
		prev, cur := p[Levels[i-1]], p[Levels[i]]
		if cur.SearchDepth <= prev.SearchDepth {
			t.Errorf("%s depth %d not above %s depth %d", Levels[i], cur.SearchDepth, Levels[i-1], prev.SearchDepth)
		}
		if cur.MoveIntervalMs >= prev.MoveIntervalMs {
			t.Errorf("%s interval %d not below %s interval %d", Levels[i], cur.MoveIntervalMs, Levels[i-1], prev.MoveIntervalMs)
		}
		if cur.SearchDepth > MaxDepth {
			t.Errorf("%s depth %d exceeds MaxDepth", Levels[i], cur.SearchDepth)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"easy", LevelEasy, false},
		{" Hard ", LevelHard, false},
		{"EXPERT", LevelExpert, false},
		{"insane", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLevelSteps(t *testing.T) {
	if got := LevelExpert.Harder(); got != LevelExpert {
		t.Errorf("expert.Harder() = %s, want expert", got)
	}
	if got := LevelEasy.Easier(); got != LevelEasy {
		t.Errorf("easy.Easier() = %s, want easy", got)
	}
	if got := LevelMedium.Harder(); got != LevelHard {
		t.Errorf("medium.Harder() = %s, want hard", got)
	}
	if got := LevelMedium.Easier(); got != LevelEasy {
		t.Errorf("medium.Easier() = %s, want easy", got)
	}
}
