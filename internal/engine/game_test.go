package engine

import "testing"

func TestDeterministicSpawn(t *testing.T) {
	g1 := NewGame(12345, DefaultTarget)
	g2 := NewGame(12345, DefaultTarget)

	if g1.Grid() != g2.Grid() {
		t.Errorf("Same seed should produce same opening:\n%v\nvs\n%v", g1.Grid(), g2.Grid())
	}

	for _, dir := range []Direction{Left, Up, Right, Down, Left, Up} {
		g1.Move(dir)
		g2.Move(dir)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Same seed and moves diverged:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestOpeningHasTwoTiles(t *testing.T) {
	g := NewGame(1, DefaultTarget)
	if n := g.Grid().TileCount(); n != 2 {
		t.Errorf("opening tile count = %d, want 2", n)
	}
	for r := range Size {
		for c := range Size {
			if v := g.Grid()[r][c]; v != 0 && v != 2 && v != 4 {
				t.Errorf("opening tile %d at (%d,%d), want 2 or 4", v, r, c)
			}
		}
	}
}

func TestSpawnRandomTile(t *testing.T) {
	s := NewSpawner(99)

	counts := map[int]int{}
	for i := 0; i < 2000; i++ {
		var g Grid
		g = s.SpawnRandomTile(g)
		if g.TileCount() != 1 {
			t.Fatalf("SpawnRandomTile placed %d tiles, want 1", g.TileCount())
		}
		counts[g.MaxTile()]++
	}

	if counts[2]+counts[4] != 2000 {
		t.Fatalf("SpawnRandomTile produced values other than 2/4: %v", counts)
	}
	// 10% fours, with generous slack
	if counts[4] < 120 || counts[4] > 300 {
		t.Errorf("SpawnRandomTile fours = %d of 2000, want about 200", counts[4])
	}

	full := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	if s.SpawnRandomTile(full) != full {
		t.Error("SpawnRandomTile should leave a full grid unchanged")
	}
}

func TestMoveSpawnsOnlyWhenMoved(t *testing.T) {
	g := NewGame(5, DefaultTarget)
	g.grid = Grid{{4, 2}}

	res := g.Move(Left)
	if res.Moved {
		t.Fatal("Move(Left) on packed row should not move")
	}
	if g.Grid().TileCount() != 2 || g.Moves() != 0 {
		t.Errorf("no-op move spawned or counted: %v moves=%d", g.Grid(), g.Moves())
	}

	res = g.Move(Right)
	if !res.Moved {
		t.Fatal("Move(Right) should move")
	}
	if g.Grid().TileCount() != 3 || g.Moves() != 1 {
		t.Errorf("move did not spawn exactly one tile: %v moves=%d", g.Grid(), g.Moves())
	}
	if _, ok := g.LastSpawn(); !ok {
		t.Error("LastSpawn should be set after a move")
	}
}

func TestGameOverCheckedAfterSpawn(t *testing.T) {
	g := NewGame(3, DefaultTarget)
	g.grid = Grid{
		{2, 4, 8, 16},
		{16, 8, 4, 2},
		{2, 4, 8, 16},
		{0, 32, 64, 128},
	}

	res := g.Move(Left)
	if !res.Moved {
		t.Fatal("Move(Left) should slide the bottom row")
	}
	if IsGameOver(res.Grid) {
		t.Fatal("pre-spawn grid still has an empty cell")
	}
	if g.State() != StateOver {
		t.Errorf("State = %s, want %s once the spawn fills the last cell", g.State(), StateOver)
	}

	before := g.Grid()
	res = g.Move(Right)
	if res.Moved || g.Grid() != before {
		t.Error("Move after game over should be a no-op")
	}
}

func TestWinBlocksUntilKeepPlaying(t *testing.T) {
	g := NewGame(8, 128)
	g.grid = Grid{{64, 64}}

	g.Move(Left)
	if g.State() != StateWon {
		t.Fatalf("State = %s, want %s", g.State(), StateWon)
	}
	if !g.Won() {
		t.Error("Won() should be true")
	}

	before := g.Snapshot()
	if res := g.Move(Right); res.Moved {
		t.Error("Move after win without KeepPlaying should be a no-op")
	}
	if g.Snapshot() != before {
		t.Error("blocked move changed the game")
	}

	g.KeepPlaying()
	if res := g.Move(Right); !res.Moved {
		t.Error("Move after KeepPlaying should be allowed")
	}
}

func TestZeroTargetNeverWins(t *testing.T) {
	g := NewGame(8, 0)
	g.grid = Grid{{4096, 4096}}
	g.Move(Left)
	if g.State() == StateWon {
		t.Error("endless game should not enter the won state")
	}
}

func TestLevels(t *testing.T) {
	if LevelCount() != 7 {
		t.Errorf("LevelCount() = %d, want 7", LevelCount())
	}
	if GetLevel(1).Name != "Warm-up" {
		t.Errorf("GetLevel(1).Name = %s, want Warm-up", GetLevel(1).Name)
	}
	if GetLevel(0) != nil || GetLevel(8) != nil {
		t.Error("GetLevel out of range should be nil")
	}
	if TargetForLevel(5) != DefaultTarget {
		t.Errorf("TargetForLevel(5) = %d, want %d", TargetForLevel(5), DefaultTarget)
	}
	if TargetForLevel(42) != DefaultTarget {
		t.Errorf("TargetForLevel(42) = %d, want default", TargetForLevel(42))
	}
}
