// Package registry provides a global registry for move strategies.
// Strategies register themselves in init() functions, allowing the CLI
// and the autoplay runner to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Strategy chooses moves for a 2048 grid.
// Implementations hold no game state; the caller owns the engine.Game.
type Strategy interface {
	// ID returns a unique identifier (e.g., "expectimax").
	// Used for CLI flags and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// NextMove returns the direction to play on g at the given tier.
	// It returns false only when no direction moves.
	NextMove(g engine.Grid, level ai.Level) (engine.Direction, bool)
}

// Deps are the shared services handed to a strategy factory.
// A zero Deps must be accepted; Register builds one instance with it
// to read the title.
type Deps struct {
	Selector *ai.Selector
	Seed     int64
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory creates a new strategy instance.
type Factory func(Deps) Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Deps{}).Title()
}

// List returns all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a strategy by its ID.
// Returns an error if the ID is not registered.
func Create(id string, deps Deps) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(deps), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
