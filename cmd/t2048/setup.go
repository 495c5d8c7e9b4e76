package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadAIConfig loads --config and applies a difficulty preset.
// An empty difficulty keeps the config's adaptive setting and starts at medium.
func loadAIConfig(difficulty string) (config.AIConfig, ai.Level) {
	cfg, err := config.LoadAI(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if difficulty == "" {
		return cfg, ai.LevelMedium
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, config.LevelForPreset(preset)
}

// newSelector builds the shared move selector from config.
func newSelector(cfg config.AIConfig) *ai.Selector {
	eval := ai.NewEvaluator(cfg.ToWeights(), cfg.Runner.CacheSize)
	return ai.NewSelector(eval, cfg.ToProfiles())
}

// openStore opens the results database. Failure is logged and yields nil;
// every command keeps working without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// seed returns --seed, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
