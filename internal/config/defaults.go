package config

import (
	_ "embed"
)

//go:embed defaults/ai.yaml
var defaultAIYAML []byte

// DefaultAIConfig returns the default AI configuration.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Weights: WeightsConfig{
			EmptyCells:      270,
			Smoothness:      0.1,
			Monotonicity:    47,
			MaxValue:        1,
			PositionScore:   10,
			PotentialMerges: 700,
			CornerMax:       500,
			TrappedPenalty:  100,
		},
		Profiles: map[string]ProfileConfig{
			"easy": {
				SearchDepth:     2,
				MoveIntervalMs:  600,
				ThinkingDelayMs: 300,
				Multiplier:      0.8,
			},
			"medium": {
				SearchDepth:     3,
				MoveIntervalMs:  400,
				ThinkingDelayMs: 200,
				Multiplier:      1.0,
			},
			"hard": {
				SearchDepth:     4,
				MoveIntervalMs:  250,
				ThinkingDelayMs: 100,
				Multiplier:      1.2,
			},
			"expert": {
				SearchDepth:     5,
				MoveIntervalMs:  150,
				ThinkingDelayMs: 50,
				Multiplier:      1.5,
				StrategicBonus:  1000,
			},
		},
		Adaptive: AdaptiveConfig{
			Enabled:     false,
			Window:      20,
			AdjustEvery: 10,
			RiseRatio:   0.5,
			FallRatio:   0.7,
		},
		Runner: RunnerConfig{
			MoveBudgetMs: 2000,
			CacheSize:    1 << 16,
			Target:       2048,
			MaxMoves:     0,
			Workers:      4,
		},
	}
}
