package ai

// Sample is one turn's cumulative game score and move count.
type Sample struct {
	Score int
	Moves int
}

// AdaptiveConfig controls how the active tier follows performance.
type AdaptiveConfig struct {
	// Window is the number of trailing samples kept.
	Window int
	// AdjustEvery is the minimum number of recorded moves between tier changes.
	AdjustEvery int
	// RiseRatio is the fraction of the best score the current score must
	// reach before a rising trend raises the tier.
	RiseRatio float64
	// FallRatio is how far the recent scoring rate may drop, relative to the
	// older half of the window, before the tier is lowered.
	FallRatio float64
}

// DefaultAdaptiveConfig returns the stock adaptive settings.
func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{
		Window:      20,
		AdjustEvery: 10,
		RiseRatio:   0.5,
		FallRatio:   0.7,
	}
}

// Adaptive moves between tiers based on a trailing window of samples.
// Not safe for concurrent use.
type Adaptive struct {
	cfg         AdaptiveConfig
	level       Level
	samples     []Sample
	best        int
	sinceChange int
	pendingDrop bool
	changes     int
}

// NewAdaptive starts at level with a known historical best score.
func NewAdaptive(cfg AdaptiveConfig, start Level, historicalBest int) *Adaptive {
	def := DefaultAdaptiveConfig()
	if cfg.Window <= 1 {
		cfg.Window = def.Window
	}
	if cfg.AdjustEvery <= 0 {
		cfg.AdjustEvery = def.AdjustEvery
	}
	if cfg.RiseRatio <= 0 {
		cfg.RiseRatio = def.RiseRatio
	}
	if cfg.FallRatio <= 0 {
		cfg.FallRatio = def.FallRatio
	}
	if start.index() < 0 {
		start = LevelMedium
	}
	return &Adaptive{
		cfg:     cfg,
		level:   start,
		samples: make([]Sample, 0, cfg.Window),
		best:    historicalBest,
	}
}

// Level returns the active tier.
func (a *Adaptive) Level() Level {
	return a.level
}

// Changes returns how many times the tier has changed.
func (a *Adaptive) Changes() int {
	return a.changes
}

// Record adds a turn sample and returns the possibly adjusted tier.
func (a *Adaptive) Record(score, moves int) Level {
	if len(a.samples) == a.cfg.Window {
		copy(a.samples, a.samples[1:])
		a.samples = a.samples[:len(a.samples)-1]
	}
	a.samples = append(a.samples, Sample{Score: score, Moves: moves})
	a.sinceChange++

	if a.sinceChange < a.cfg.AdjustEvery {
		return a.level
	}

	switch {
	case a.pendingDrop:
		a.setLevel(a.level.Easier())
		a.pendingDrop = false
	case a.trend() < 0:
		a.setLevel(a.level.Easier())
	case a.trend() > 0 && float64(score) >= a.cfg.RiseRatio*float64(a.best):
		a.setLevel(a.level.Harder())
	}

	if score > a.best {
		a.best = score
	}
	return a.level
}

// RecordLoss notes a finished, lost game. The drop still honours the rate
// limit; if it is too soon the drop is applied at the next eligible turn.
func (a *Adaptive) RecordLoss(finalScore int) Level {
	if finalScore > a.best {
		a.best = finalScore
	}
	a.samples = a.samples[:0]
	if a.sinceChange >= a.cfg.AdjustEvery {
		a.setLevel(a.level.Easier())
	} else {
		a.pendingDrop = true
	}
	return a.level
}

func (a *Adaptive) setLevel(l Level) {
	if l != a.level {
		a.changes++
	}
	a.level = l
	a.sinceChange = 0
}

// trend compares the scoring rate of the newer half of the window to the
// older half: +1 rising, -1 falling, 0 flat or not enough data.
func (a *Adaptive) trend() int {
	if len(a.samples) < 4 {
		return 0
	}
	mid := len(a.samples) / 2
	older := rate(a.samples[:mid+1])
	newer := rate(a.samples[mid:])

	switch {
	case newer > older:
		return 1
	case newer < older*a.cfg.FallRatio:
		return -1
	default:
		return 0
	}
}

// rate is score gained per move across a run of samples.
func rate(samples []Sample) float64 {
	first, last := samples[0], samples[len(samples)-1]
	moves := last.Moves - first.Moves
	if moves <= 0 {
		return 0
	}
	return float64(last.Score-first.Score) / float64(moves)
}
