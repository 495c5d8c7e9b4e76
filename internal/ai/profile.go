package ai

import (
	"fmt"
	"strings"
)

// Level is a named AI difficulty tier.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
	LevelExpert Level = "expert"
)

// Levels lists the tiers from weakest to strongest.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard, LevelExpert}

// ParseLevel converts a name to a Level, case-insensitively.
func ParseLevel(s string) (Level, error) {
	lvl := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range Levels {
		if l == lvl {
			return l, nil
		}
	}
	return "", fmt.Errorf("ai: unknown level %q (want easy, medium, hard or expert)", s)
}

func (l Level) index() int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return -1
}

// Harder returns the next tier up, or l itself at the top.
func (l Level) Harder() Level {
	i := l.index()
	if i < 0 || i == len(Levels)-1 {
		return l
	}
	return Levels[i+1]
}

// Easier returns the next tier down, or l itself at the bottom.
func (l Level) Easier() Level {
	i := l.index()
	if i <= 0 {
		return l
	}
	return Levels[i-1]
}

// Profile controls search strength and move pacing for one tier.
type Profile struct {
	SearchDepth     int
	MoveIntervalMs  int
	ThinkingDelayMs int
	// Multiplier scales single-ply scores in QuickMove.
	Multiplier float64
	// StrategicBonus rewards keeping the largest tile in a corner in QuickMove.
	StrategicBonus float64
}

// Profiles maps each tier to its profile.
type Profiles map[Level]Profile

// DefaultProfiles returns the stock tiers.
func DefaultProfiles() Profiles {
	return Profiles{
		LevelEasy:   {SearchDepth: 2, MoveIntervalMs: 600, ThinkingDelayMs: 300, Multiplier: 0.8},
		LevelMedium: {SearchDepth: 3, MoveIntervalMs: 400, ThinkingDelayMs: 200, Multiplier: 1.0},
		LevelHard:   {SearchDepth: 4, MoveIntervalMs: 250, ThinkingDelayMs: 100, Multiplier: 1.2},
		LevelExpert: {SearchDepth: 5, MoveIntervalMs: 150, ThinkingDelayMs: 50, Multiplier: 1.5, StrategicBonus: 1000},
	}
}

// Get returns the profile for l, falling back to the medium tier
// and then to the stock medium profile.
func (p Profiles) Get(l Level) Profile {
	if prof, ok := p[l]; ok {
		return prof
	}
	if prof, ok := p[LevelMedium]; ok {
		return prof
	}
	return DefaultProfiles()[LevelMedium]
}
