package engine

// Level is a campaign stage defined by the tile needed to clear it.
type Level struct {
	ID     int
	Name   string
	Target int
}

// Levels is the campaign target ladder. Spawn odds are the same on every level.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128},
	{ID: 2, Name: "Getting Started", Target: 256},
	{ID: 3, Name: "Building Momentum", Target: 512},
	{ID: 4, Name: "The Climb", Target: 1024},
	{ID: 5, Name: "Classic 2048", Target: 2048},
	{ID: 6, Name: "Beyond Limits", Target: 4096},
	{ID: 7, Name: "Master Class", Target: 8192},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level with the given 1-based ID, or nil if out of range.
func GetLevel(id int) *Level {
	if id < 1 || id > len(Levels) {
		return nil
	}
	return &Levels[id-1]
}

// TargetForLevel returns the level's target, or DefaultTarget for unknown IDs.
func TargetForLevel(id int) int {
	if lvl := GetLevel(id); lvl != nil {
		return lvl.Target
	}
	return DefaultTarget
}
