package engine

import (
	"strings"
	"testing"
)

// createTestConfig returns the classic config, optionally with a fixed starting layout
func createTestConfig(layout ...string) *GameConfig {
	config := DefaultGameConfig()
	config.Name = "Engine Test Config"
	config.Description = "Configuration for engine tests"
	if len(layout) > 0 {
		config.Layout = layout
		config.Height = len(layout)
		config.Width = len(strings.Fields(layout[0]))
	}
	return config
}

func createTestEngine(t *testing.T, config *GameConfig, seed uint64) *GameEngine {
	t.Helper()
	e, err := NewEngine(config, NewRand(seed))
	if err != nil {
		t.Fatalf("Failed to create new engine: %v", err)
	}
	if err := e.SpawnInitialTiles(); err != nil {
		t.Fatalf("Failed to spawn initial tiles: %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create new engine: %v", err)
	}

	if e.Config().Name != "classic" {
		t.Errorf("Expected default config, got %q", e.Config().Name)
	}
	grid := e.Grid()
	if grid.Width() != DefaultGridSize || grid.Height() != DefaultGridSize {
		t.Errorf("Expected %dx%d grid, got %dx%d", DefaultGridSize, DefaultGridSize, grid.Width(), grid.Height())
	}
	if grid.Occupied() != 0 {
		t.Errorf("Expected empty grid, got %d tiles", grid.Occupied())
	}
	if e.Status() != Playing {
		t.Errorf("Expected status %s, got %s", Playing, e.Status())
	}

	// Undo on a fresh engine changes nothing
	result := e.ResolveMove(Undo)
	if result.Changed {
		t.Error("Expected undo on a fresh engine to change nothing")
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.Width = 1

	if _, err := NewEngine(config, NewRand(1)); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestSpawnInitialTiles(t *testing.T) {
	t.Run("random starting tiles", func(t *testing.T) {
		e := createTestEngine(t, createTestConfig(), 1)

		grid := e.Grid()
		if grid.Occupied() != 2 {
			t.Errorf("Expected 2 starting tiles, got %d", grid.Occupied())
		}
		if grid.Sum() != 4 {
			t.Errorf("Expected starting sum 4, got %d", grid.Sum())
		}
		if e.UndoAvailable() != 0 {
			t.Errorf("Expected no undo history, got %d", e.UndoAvailable())
		}
		if e.MoveCount() != 0 {
			t.Errorf("Expected move count 0, got %d", e.MoveCount())
		}
	})

	t.Run("fixed layout", func(t *testing.T) {
		e := createTestEngine(t, createTestConfig(
			"2 . . .",
			". 4 . .",
			". . 8 .",
			". . . 16",
		), 1)

		for i, want := range []Tile{2, 4, 8, 16} {
			if got := e.Read(Position{X: i, Y: i}); got != want {
				t.Errorf("Expected %d at (%d,%d), got %d", want, i, i, got)
			}
		}
	})

	t.Run("resets history", func(t *testing.T) {
		e := createTestEngine(t, createTestConfig("2 2 . .", ". . . .", ". . . .", ". . . ."), 1)
		e.ResolveMove(Left)
		if e.UndoAvailable() != 1 {
			t.Fatalf("Expected one undo step, got %d", e.UndoAvailable())
		}

		if err := e.Reset(); err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		if e.UndoAvailable() != 0 {
			t.Errorf("Expected no undo history after reset, got %d", e.UndoAvailable())
		}
		if e.Read(Position{X: 1, Y: 0}) != 2 {
			t.Error("Expected starting layout after reset")
		}
	})
}

func TestResolveMove(t *testing.T) {
	e := createTestEngine(t, createTestConfig(
		"2 2 4 .",
		". . . .",
		". . . .",
		". . . .",
	), 5)
	before := e.Grid()

	result := e.ResolveMove(Left)

	if !result.Changed {
		t.Fatal("Expected move to change the grid")
	}
	if len(result.Merges) != 1 {
		t.Errorf("Expected 1 merge, got %d", len(result.Merges))
	}
	if result.Spawned == nil {
		t.Fatal("Expected a spawned tile")
	}
	if result.Spawned.Value != DefaultStartTile {
		t.Errorf("Expected spawned value %d, got %d", DefaultStartTile, result.Spawned.Value)
	}
	if result.Grid.Sum() != before.Sum()+DefaultStartTile {
		t.Errorf("Expected sum %d, got %d", before.Sum()+DefaultStartTile, result.Grid.Sum())
	}
	if e.Read(Position{X: 0, Y: 0}) != 4 || e.Read(Position{X: 1, Y: 0}) != 4 {
		t.Errorf("Expected row to start with 4 4, got\n%s", result.Grid)
	}
	if result.MoveNumber != 1 || e.MoveCount() != 1 {
		t.Errorf("Expected move number 1, got %d", result.MoveNumber)
	}
	if result.Status != Playing {
		t.Errorf("Expected status %s, got %s", Playing, result.Status)
	}
}

func TestResolveMoveNoChange(t *testing.T) {
	e := createTestEngine(t, createTestConfig(
		"2 4 . .",
		". . . .",
		". . . .",
		". . . .",
	), 5)
	before := e.Grid()

	result := e.ResolveMove(Up)

	if result.Changed {
		t.Error("Expected no change")
	}
	if result.Spawned != nil {
		t.Errorf("Expected no spawn, got %+v", result.Spawned)
	}
	if !e.Grid().Equal(before) {
		t.Errorf("Expected grid unchanged, got\n%s", e.Grid())
	}
	if e.UndoAvailable() != 0 {
		t.Error("Expected no history entry for an unchanged move")
	}
	if e.MoveCount() != 0 {
		t.Errorf("Expected move count 0, got %d", e.MoveCount())
	}
}

func TestResolveMoveSpawnsIntoLastEmptyCell(t *testing.T) {
	config := createTestConfig(
		"2 4",
		". 8",
	)
	e := createTestEngine(t, config, 9)

	result := e.ResolveMove(Left)

	if result.Spawned == nil {
		t.Fatal("Expected a spawned tile")
	}
	if result.Spawned.Position != (Position{X: 1, Y: 1}) {
		t.Errorf("Expected spawn at (1,1), got %+v", result.Spawned.Position)
	}
	if result.Status != GameOver {
		t.Errorf("Expected status %s, got %s", GameOver, result.Status)
	}
}

func TestResolveMoveInvalidCommandPanics(t *testing.T) {
	e := createTestEngine(t, createTestConfig(), 1)

	for _, cmd := range []Command{0, Terminate, Command(99)} {
		t.Run(cmd.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for %s", cmd)
				}
			}()
			e.ResolveMove(cmd)
		})
	}
}

func TestUndoToggle(t *testing.T) {
	e := createTestEngine(t, createTestConfig(
		"2 2 . .",
		". . . .",
		". . . .",
		". . . .",
	), 2)
	start := e.Grid()

	moved := e.ResolveMove(Left).Grid

	first := e.ResolveMove(Undo)
	if !first.Changed || !first.Grid.Equal(start) {
		t.Errorf("Expected first undo to restore the start\n%s\ngot\n%s", start, first.Grid)
	}

	second := e.ResolveMove(Undo)
	if !second.Changed || !second.Grid.Equal(moved) {
		t.Errorf("Expected second undo to toggle back\n%s\ngot\n%s", moved, second.Grid)
	}
}

func TestUndoStack(t *testing.T) {
	config := createTestConfig()
	config.Undo = UndoConfig{Mode: UndoStack, Depth: 2}
	e := createTestEngine(t, config, 4)

	var boards []*Grid
	for len(boards) < 3 {
		before := e.Grid()
		for _, dir := range e.PossibleMoves() {
			if e.ResolveMove(dir).Changed {
				boards = append(boards, before)
				break
			}
		}
	}

	if e.UndoAvailable() != 2 {
		t.Fatalf("Expected depth-limited history of 2, got %d", e.UndoAvailable())
	}

	if got := e.ResolveMove(Undo); !got.Changed || !got.Grid.Equal(boards[2]) {
		t.Errorf("Expected first undo to step back one move")
	}
	if got := e.ResolveMove(Undo); !got.Changed || !got.Grid.Equal(boards[1]) {
		t.Errorf("Expected second undo to step back two moves")
	}
	if got := e.ResolveMove(Undo); got.Changed {
		t.Error("Expected undo past the configured depth to change nothing")
	}
}

func TestWinReportedOnce(t *testing.T) {
	e := createTestEngine(t, createTestConfig(
		"1024 1024 . .",
		". . . .",
		". . . .",
		". . . .",
	), 3)

	result := e.ResolveMove(Left)
	if !result.ReachedWin {
		t.Error("Expected ReachedWin on the winning move")
	}
	if result.Status != Won {
		t.Errorf("Expected status %s, got %s", Won, result.Status)
	}

	for _, dir := range e.PossibleMoves() {
		if next := e.ResolveMove(dir); next.ReachedWin {
			t.Errorf("Expected win to be reported only once, got it again on %s", dir)
		}
	}
	if e.Status() != Won {
		t.Errorf("Expected play to continue with status %s, got %s", Won, e.Status())
	}
}

func TestGameOver(t *testing.T) {
	e := createTestEngine(t, createTestConfig(
		"2 4",
		"4 2",
	), 1)

	if e.Status() != GameOver {
		t.Fatalf("Expected status %s, got %s", GameOver, e.Status())
	}
	if len(e.PossibleMoves()) != 0 {
		t.Errorf("Expected no possible moves, got %v", e.PossibleMoves())
	}
	for _, dir := range Directions {
		if result := e.ResolveMove(dir); result.Changed || result.Status != GameOver {
			t.Errorf("%s: expected no change and game over, got changed=%v status=%s", dir, result.Changed, result.Status)
		}
	}
}

func TestPossibleMoves(t *testing.T) {
	e := createTestEngine(t, createTestConfig(
		"2 .",
		". .",
	), 1)

	got := e.PossibleMoves()
	want := []Command{Down, Right}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}
	if e.CanMove(Undo) {
		t.Error("Expected CanMove to reject non-directions")
	}
}

func TestReadAndGridCopy(t *testing.T) {
	e := createTestEngine(t, createTestConfig("2 .", ". ."), 1)

	if got := e.Read(Position{X: -1, Y: 0}); got != Empty {
		t.Errorf("Expected Empty off the board, got %d", got)
	}
	if got := e.Read(Position{X: 2, Y: 2}); got != Empty {
		t.Errorf("Expected Empty off the board, got %d", got)
	}

	grid := e.Grid()
	grid.Set(Position{X: 1, Y: 1}, 64)
	if e.Read(Position{X: 1, Y: 1}) != Empty {
		t.Error("Expected Grid to return a copy")
	}
}

func TestSeededGamesAreDeterministic(t *testing.T) {
	play := func() *Grid {
		e := createTestEngine(t, createTestConfig(), 42)
		for i := 0; i < 50; i++ {
			e.ResolveMove(Directions[i%len(Directions)])
		}
		return e.Grid()
	}

	first, second := play(), play()
	if !first.Equal(second) {
		t.Errorf("Expected identical games for the same seed\n%s\n\n%s", first, second)
	}
}

func TestLongRunInvariants(t *testing.T) {
	config := createTestConfig()
	e := createTestEngine(t, config, 77)
	rng := NewRand(78)

	for i := 0; i < 2000 && e.Status() != GameOver; i++ {
		before := e.Grid()
		dir := Directions[rng.IntN(len(Directions))]
		result := e.ResolveMove(dir)

		if !result.Changed {
			if !result.Grid.Equal(before) {
				t.Fatalf("Unchanged move altered the grid")
			}
			continue
		}
		if result.Grid.Sum() != before.Sum()+DefaultStartTile {
			t.Fatalf("Expected sum %d after %s, got %d", before.Sum()+DefaultStartTile, dir, result.Grid.Sum())
		}
		for _, row := range result.Grid.Rows() {
			for _, tile := range row {
				if !ValidTile(tile, config.TileLimit()) {
					t.Fatalf("Invalid tile %d on the board", tile)
				}
			}
		}
	}
}
