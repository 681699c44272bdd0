package engine

// Status represents where a game currently stands
type Status string

const (
	Playing  Status = "playing"
	Won      Status = "won"
	GameOver Status = "game_over"
)

// OverflowPolicy decides what happens when two tiles at the ceiling meet
type OverflowPolicy string

const (
	// OverflowClamp keeps tiles at the ceiling from merging any further
	OverflowClamp OverflowPolicy = "clamp"
	// OverflowExtend keeps doubling past the ceiling up to MaxTileValue
	OverflowExtend OverflowPolicy = "extend"
)

// UndoMode selects how previous board states are kept
type UndoMode string

const (
	// UndoToggle keeps a single previous board; undo swaps it with the current one
	UndoToggle UndoMode = "toggle"
	// UndoStack keeps up to Depth previous boards; each undo steps back one
	UndoStack UndoMode = "stack"
)

const (
	// Validation constants
	MinGridSize      = 2
	MaxGridSize      = 16
	MinCeiling       = 4
	MaxTileValue     = 1 << 30
	MaxUndoDepth     = 64
	DefaultGridSize  = 4
	DefaultCeiling   = 2048
	DefaultStartTile = 2
)

// Position represents x,y coordinates. X is the column, Y is the row, row 0 is the top.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileMove records a tile sliding from one cell to another
type TileMove struct {
	From  Position `json:"from"`
	To    Position `json:"to"`
	Value Tile     `json:"value"`
}

// MergeEvent records two equal tiles combining into one
type MergeEvent struct {
	Sources [2]Position `json:"sources"`
	Into    Position    `json:"into"`
	From    Tile        `json:"from"`
	Value   Tile        `json:"value"`
}

// SpawnEvent records a new tile placed on the board
type SpawnEvent struct {
	Position Position `json:"position"`
	Value    Tile     `json:"value"`
}

// MoveResult is the outcome of resolving one command
type MoveResult struct {
	Command    Command      `json:"command"`
	Changed    bool         `json:"changed"`
	Moves      []TileMove   `json:"moves,omitempty"`
	Merges     []MergeEvent `json:"merges,omitempty"`
	Spawned    *SpawnEvent  `json:"spawned,omitempty"`
	Grid       *Grid        `json:"grid"`
	Status     Status       `json:"status"`
	ReachedWin bool         `json:"reached_win,omitempty"`
	MoveNumber int          `json:"move_number"`
}
