package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/ai"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks profile names and numeric ranges.
func (c AIConfig) Validate() error {
	for name, p := range c.Profiles {
		if _, err := ai.ParseLevel(name); err != nil {
			return fmt.Errorf("%w: unknown profile %q", ErrInvalidConfig, name)
		}
		if p.SearchDepth < 1 || p.SearchDepth > ai.MaxDepth {
			return fmt.Errorf("%w: profile %s: search_depth %d out of range 1..%d",
				ErrInvalidConfig, name, p.SearchDepth, ai.MaxDepth)
		}
		if p.MoveIntervalMs < 0 || p.ThinkingDelayMs < 0 {
			return fmt.Errorf("%w: profile %s: negative delay", ErrInvalidConfig, name)
		}
	}
	if c.Adaptive.RiseRatio < 0 || c.Adaptive.FallRatio < 0 || c.Adaptive.FallRatio > 1 {
		return fmt.Errorf("%w: adaptive ratios out of range", ErrInvalidConfig)
	}
	if c.Runner.MoveBudgetMs < 0 || c.Runner.MaxMoves < 0 || c.Runner.Workers < 0 {
		return fmt.Errorf("%w: runner limits must not be negative", ErrInvalidConfig)
	}
	if c.Runner.Target < 0 {
		return fmt.Errorf("%w: runner target %d must not be negative", ErrInvalidConfig, c.Runner.Target)
	}
	return nil
}

// ToWeights converts the weights section.
func (c AIConfig) ToWeights() ai.Weights {
	w := c.Weights
	return ai.Weights{
		EmptyCells:      w.EmptyCells,
		Smoothness:      w.Smoothness,
		Monotonicity:    w.Monotonicity,
		MaxValue:        w.MaxValue,
		PositionScore:   w.PositionScore,
		PotentialMerges: w.PotentialMerges,
		CornerMax:       w.CornerMax,
		TrappedPenalty:  w.TrappedPenalty,
	}
}

// ToProfiles converts the profiles section. Unknown level names are skipped.
func (c AIConfig) ToProfiles() ai.Profiles {
	profiles := make(ai.Profiles, len(c.Profiles))
	for name, p := range c.Profiles {
		level, err := ai.ParseLevel(name)
		if err != nil {
			continue
		}
		profiles[level] = ai.Profile{
			SearchDepth:     p.SearchDepth,
			MoveIntervalMs:  p.MoveIntervalMs,
			ThinkingDelayMs: p.ThinkingDelayMs,
			Multiplier:      p.Multiplier,
			StrategicBonus:  p.StrategicBonus,
		}
	}
	return profiles
}

// ToAdaptive converts the adaptive section.
func (c AIConfig) ToAdaptive() ai.AdaptiveConfig {
	return ai.AdaptiveConfig{
		Window:      c.Adaptive.Window,
		AdjustEvery: c.Adaptive.AdjustEvery,
		RiseRatio:   c.Adaptive.RiseRatio,
		FallRatio:   c.Adaptive.FallRatio,
	}
}

// ParsePreset converts a name to a DifficultyPreset, case-insensitively.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium, hard, expert or adaptive)", s)
}

// LevelForPreset returns the starting AI tier for a preset.
// The adaptive preset starts at medium.
func LevelForPreset(preset DifficultyPreset) ai.Level {
	switch preset {
	case DifficultyEasy:
		return ai.LevelEasy
	case DifficultyHard:
		return ai.LevelHard
	case DifficultyExpert:
		return ai.LevelExpert
	default:
		return ai.LevelMedium
	}
}
