// Package config provides YAML-based configuration for the 2048 AI:
// heuristic weights, difficulty profiles, adaptive difficulty and autoplay settings.
package config

// AIConfig contains all tunable settings for the AI and the autoplay runner.
type AIConfig struct {
	Weights  WeightsConfig            `yaml:"weights"`
	Profiles map[string]ProfileConfig `yaml:"profiles"` // keyed by level name
	Adaptive AdaptiveConfig           `yaml:"adaptive"`
	Runner   RunnerConfig             `yaml:"runner"`
}

// WeightsConfig holds the coefficient for each heuristic feature.
type WeightsConfig struct {
	EmptyCells      float64 `yaml:"empty_cells"`
	Smoothness      float64 `yaml:"smoothness"`
	Monotonicity    float64 `yaml:"monotonicity"`
	MaxValue        float64 `yaml:"max_value"`
	PositionScore   float64 `yaml:"position_score"`
	PotentialMerges float64 `yaml:"potential_merges"`
	CornerMax       float64 `yaml:"corner_max"`
	TrappedPenalty  float64 `yaml:"trapped_penalty"`
}

// ProfileConfig defines one difficulty tier.
type ProfileConfig struct {
	SearchDepth     int     `yaml:"search_depth"`
	MoveIntervalMs  int     `yaml:"move_interval_ms"`
	ThinkingDelayMs int     `yaml:"thinking_delay_ms"`
	Multiplier      float64 `yaml:"multiplier"`
	StrategicBonus  float64 `yaml:"strategic_bonus"`
}

// AdaptiveConfig defines how the tier follows the player's performance.
type AdaptiveConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Window      int     `yaml:"window"`       // trailing samples kept
	AdjustEvery int     `yaml:"adjust_every"` // min moves between tier changes
	RiseRatio   float64 `yaml:"rise_ratio"`   // fraction of best score needed to step up
	FallRatio   float64 `yaml:"fall_ratio"`   // recent/older rate below which to step down
}

// RunnerConfig defines autoplay limits.
type RunnerConfig struct {
	MoveBudgetMs int `yaml:"move_budget_ms"` // 0 disables the budget
	CacheSize    int `yaml:"cache_size"`
	Target       int `yaml:"target"`
	MaxMoves     int `yaml:"max_moves"` // 0 means play to the end
	Workers      int `yaml:"workers"`   // concurrent games in batch mode
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyMedium   DifficultyPreset = "medium"
	DifficultyHard     DifficultyPreset = "hard"
	DifficultyExpert   DifficultyPreset = "expert"
	DifficultyAdaptive DifficultyPreset = "adaptive"
)

// Presets lists every accepted preset.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyExpert,
	DifficultyAdaptive,
}

// IsAdaptivePreset returns true if the preset enables adaptive difficulty.
func IsAdaptivePreset(preset DifficultyPreset) bool {
	return preset == DifficultyAdaptive
}
