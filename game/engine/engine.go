package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Board setup
	SpawnInitialTiles() error
	Reset() error

	// Turn resolution
	ResolveMove(cmd Command) *MoveResult
	CanMove(dir Command) bool
	PossibleMoves() []Command

	// Queries
	Read(p Position) Tile
	Grid() *Grid
	Status() Status
	MoveCount() int
	UndoAvailable() int
	Config() *GameConfig
}

// GameEngine implements the Engine interface. It is not safe for concurrent use.
type GameEngine struct {
	config      *GameConfig
	rng         IntNSource
	grid        *Grid
	history     *history
	moves       int
	winReported bool
}

// NewEngine creates an engine with an empty board for config.
// A nil config selects DefaultGameConfig; a nil rng is seeded from the OS.
func NewEngine(config *GameConfig, rng IntNSource) (*GameEngine, error) {
	if config == nil {
		config = DefaultGameConfig()
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	if rng == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		rng = NewRand(seed)
	}

	e := &GameEngine{
		config:  config,
		rng:     rng,
		grid:    NewGrid(config.Width, config.Height),
		history: newHistory(config.UndoMode(), config.Undo.Depth),
	}
	e.history.reset(e.grid)

	return e, nil
}

// SpawnInitialTiles clears the board and lays out the starting tiles,
// either the configured layout or StartingTiles random tiles.
// Undo history restarts from the resulting board.
func (e *GameEngine) SpawnInitialTiles() error {
	if len(e.config.Layout) > 0 {
		grid, err := ParseLayout(e.config.Layout, e.config.Width, e.config.Height, e.config.TileLimit())
		if err != nil {
			return fmt.Errorf("starting layout: %w", err)
		}
		e.grid = grid
	} else {
		e.grid = NewGrid(e.config.Width, e.config.Height)
		for i := 0; i < e.config.StartingTiles; i++ {
			if _, err := SpawnTile(e.grid, e.rng, DefaultStartTile); err != nil {
				return fmt.Errorf("spawn starting tile %d: %w", i+1, err)
			}
		}
	}

	e.history.reset(e.grid)
	e.moves = 0
	e.winReported = false

	return nil
}

// Reset starts a new game on the same configuration
func (e *GameEngine) Reset() error {
	return e.SpawnInitialTiles()
}

// ResolveMove applies one command and reports what happened.
// Passing anything other than a direction or Undo is a caller bug and panics.
func (e *GameEngine) ResolveMove(cmd Command) *MoveResult {
	if !cmd.Valid() {
		panic(fmt.Sprintf("engine: cannot resolve %s", cmd))
	}

	result := &MoveResult{Command: cmd}

	if cmd == Undo {
		if prev, ok := e.history.undo(e.grid); ok {
			e.grid = prev
			result.Changed = true
		}
		return e.finish(result)
	}

	next, moves, merges := Slide(e.grid, cmd, e.config.Ceiling, e.config.OverflowPolicy())
	if len(moves) == 0 {
		return e.finish(result)
	}

	e.history.record(e.grid)
	e.grid = next
	e.moves++

	result.Changed = true
	result.Moves = moves
	result.Merges = merges

	// A changing move always frees a cell, so this only fails on a corrupt board
	if pos, err := SpawnTile(e.grid, e.rng, DefaultStartTile); err == nil {
		result.Spawned = &SpawnEvent{Position: pos, Value: DefaultStartTile}
	}

	return e.finish(result)
}

func (e *GameEngine) finish(result *MoveResult) *MoveResult {
	result.Grid = e.grid.Clone()
	result.Status = e.Status()
	result.MoveNumber = e.moves

	if !e.winReported && int(e.grid.MaxTile()) >= e.config.Win() {
		e.winReported = true
		result.ReachedWin = true
	}

	return result
}

// Read returns the tile at p, Empty when p is off the board
func (e *GameEngine) Read(p Position) Tile {
	t, _ := e.grid.At(p)
	return t
}

// Grid returns a copy of the board
func (e *GameEngine) Grid() *Grid {
	return e.grid.Clone()
}

// Status reports GameOver when the board is full and no direction changes it,
// Won when a tile reached the win value, Playing otherwise
func (e *GameEngine) Status() Status {
	full := e.grid.Occupied() == e.grid.Width()*e.grid.Height()
	if full && !HasMoves(e.grid, e.config.Ceiling, e.config.OverflowPolicy()) {
		return GameOver
	}
	if int(e.grid.MaxTile()) >= e.config.Win() {
		return Won
	}
	return Playing
}

// CanMove reports whether dir would change the board
func (e *GameEngine) CanMove(dir Command) bool {
	if !dir.IsDirection() {
		return false
	}
	return CanSlide(e.grid, dir, e.config.Ceiling, e.config.OverflowPolicy())
}

// PossibleMoves returns every direction that changes the board
func (e *GameEngine) PossibleMoves() []Command {
	var possible []Command
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// MoveCount returns the number of changing moves since the game started
func (e *GameEngine) MoveCount() int {
	return e.moves
}

// UndoAvailable returns how many undo steps would change the board
func (e *GameEngine) UndoAvailable() int {
	return e.history.available(e.grid)
}

// Config returns the engine configuration
func (e *GameEngine) Config() *GameConfig {
	return e.config
}
