package engine

import "math/rand"

// Spawn odds. The search's chance layer uses the same values, so live
// play and the AI's expectations agree.
const (
	SpawnProbability2 = 0.9
	SpawnProbability4 = 0.1
)

// Spawner places random tiles using its own seeded source.
// A Spawner is not safe for concurrent use.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with a deterministic seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// SpawnRandomTile returns a copy of g with a 2 (90%) or 4 (10%) placed in a
// uniformly chosen empty cell. A full grid is returned unchanged.
func (s *Spawner) SpawnRandomTile(g Grid) Grid {
	g, _, _ = s.spawn(g)
	return g
}

// spawn also reports where the tile landed, for callers that animate or log it.
func (s *Spawner) spawn(g Grid) (Grid, Cell, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, Cell{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < SpawnProbability4 {
		value = 4
	}

	return g.With(cell, value), cell, true
}

// NewGrid returns an opening position with two spawned tiles.
func (s *Spawner) NewGrid() Grid {
	var g Grid
	g = s.SpawnRandomTile(g)
	return s.SpawnRandomTile(g)
}
