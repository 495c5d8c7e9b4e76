package engine

// State is the progression state of a Game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateOver    State = "game_over"
)

// Game tracks one play-through: the current grid, score and terminal state.
// It is the only type in this package that owns mutable state.
type Game struct {
	spawner     *Spawner
	seed        int64
	grid        Grid
	score       int
	moves       int
	target      int
	keepPlaying bool
	state       State
	lastSpawn   *Cell
}

// NewGame creates a game seeded for reproducible spawns.
// A target of zero or less disables win detection.
func NewGame(seed int64, target int) *Game {
	g := &Game{seed: seed, target: target}
	g.Reset()
	return g
}

// Reset restarts the game from a fresh two-tile opening with the same seed.
func (g *Game) Reset() {
	g.spawner = NewSpawner(g.seed)
	g.grid = g.spawner.NewGrid()
	g.score = 0
	g.moves = 0
	g.keepPlaying = false
	g.state = StatePlaying
	g.lastSpawn = nil
	if IsGameOver(g.grid) {
		g.state = StateOver
	}
}

// Move applies a direction, spawns a tile if anything moved, then
// re-evaluates win and game over on the post-spawn grid.
// Moving in a finished game, or after a win without KeepPlaying, is a
// no-op that reports Moved=false.
func (g *Game) Move(dir Direction) MoveResult {
	if !g.CanAct() {
		return MoveResult{Grid: g.grid}
	}

	res := ApplyMove(g.grid, dir)
	if !res.Moved {
		return res
	}

	g.score += res.ScoreGained
	g.moves++

	grid, cell, ok := g.spawner.spawn(res.Grid)
	g.grid = grid
	g.lastSpawn = nil
	if ok {
		g.lastSpawn = &cell
	}

	if g.state == StatePlaying && HasReachedTarget(g.grid, g.target) {
		g.state = StateWon
	}
	if IsGameOver(g.grid) {
		g.state = StateOver
	}

	return res
}

// CanAct reports whether Move would be considered at all.
func (g *Game) CanAct() bool {
	switch g.state {
	case StateOver:
		return false
	case StateWon:
		return g.keepPlaying
	default:
		return true
	}
}

// KeepPlaying lets play continue past the win target.
func (g *Game) KeepPlaying() {
	g.keepPlaying = true
}

// Grid returns the current grid.
func (g *Game) Grid() Grid { return g.grid }

// Score returns the accumulated merge score.
func (g *Game) Score() int { return g.score }

// Moves returns the number of successful moves.
func (g *Game) Moves() int { return g.moves }

// Target returns the win target.
func (g *Game) Target() int { return g.target }

// State returns the progression state.
func (g *Game) State() State { return g.state }

// Won reports whether the target was reached at any point.
func (g *Game) Won() bool {
	return g.state == StateWon || (g.target > 0 && g.grid.MaxTile() >= g.target)
}

// LastSpawn returns where the most recent tile appeared, if any.
func (g *Game) LastSpawn() (Cell, bool) {
	if g.lastSpawn == nil {
		return Cell{}, false
	}
	return *g.lastSpawn, true
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Seed        int64
	Grid        Grid
	Score       int
	Moves       int
	Target      int
	MaxTile     int
	KeepPlaying bool
	State       State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Seed:        g.seed,
		Grid:        g.grid,
		Score:       g.score,
		Moves:       g.moves,
		Target:      g.target,
		MaxTile:     g.grid.MaxTile(),
		KeepPlaying: g.keepPlaying,
		State:       g.state,
	}
}
