package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished autoplay game.
type Run struct {
	ID            string // UUID; assigned by SaveRun when empty
	Strategy      string
	Level         string // AI tier at the end of the game
	Seed          int64
	Target        int
	Score         int
	MaxTile       int
	Moves         int
	Won           bool
	FallbackMoves int // moves chosen by a fallback after a search overran its budget
	LevelChanges  int
	Duration      time.Duration
	CreatedAt     time.Time
}

// StrategyStats aggregates runs for one strategy and level.
type StrategyStats struct {
	Strategy  string
	Level     string
	Games     int
	Wins      int
	BestScore int
	AvgScore  float64
	BestTile  int
	AvgMoves  float64
	LastRun   time.Time
}

// WinRate returns Wins / Games, or 0 with no games.
func (s StrategyStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// SaveRun records a finished autoplay game and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, strategy, level, seed, target, score, max_tile, moves, won, fallback_moves, level_changes, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Strategy,
		run.Level,
		run.Seed,
		run.Target,
		run.Score,
		run.MaxTile,
		run.Moves,
		run.Won,
		run.FallbackMoves,
		run.LevelChanges,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `id, strategy, level, seed, target, score, max_tile, moves,
	won, fallback_moves, level_changes, duration_ms, created_at`

// TopRuns retrieves the best runs by score. An empty strategy matches all.
func (s *Store) TopRuns(strategy string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR strategy = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		strategy, strategy, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunByID retrieves one run. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Strategy,
			&r.Level,
			&r.Seed,
			&r.Target,
			&r.Score,
			&r.MaxTile,
			&r.Moves,
			&r.Won,
			&r.FallbackMoves,
			&r.LevelChanges,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestRunScore returns the highest score recorded for a strategy.
// Returns 0 if the strategy has no runs.
func (s *Store) BestRunScore(strategy string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE strategy = ?",
		strategy,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates runs per strategy and level, ordered by strategy then level.
func (s *Store) Stats() ([]StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT strategy, level, COUNT(*), SUM(won), MAX(score), AVG(score),
		        MAX(max_tile), AVG(moves), MAX(created_at)
		 FROM runs
		 GROUP BY strategy, level
		 ORDER BY strategy, level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	var stats []StrategyStats
	for rows.Next() {
		var st StrategyStats
		var lastRun any
		if err := rows.Scan(
			&st.Strategy,
			&st.Level,
			&st.Games,
			&st.Wins,
			&st.BestScore,
			&st.AvgScore,
			&st.BestTile,
			&st.AvgMoves,
			&lastRun,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTimestamp(lastRun)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
