package service

import (
	"time"

	"github.com/wricardo/game2048/game/engine"
)

// Event types emitted by Apply, NewGame and Reset
const (
	EventMove     = "move"
	EventMerge    = "merge"
	EventSpawn    = "spawn"
	EventUndo     = "undo"
	EventNoChange = "no_change"
	EventWon      = "won"
	EventGameOver = "game_over"
	EventReset    = "reset"
)

// GameState is a read-only snapshot of the current game for front ends
type GameState struct {
	ConfigID      string           `json:"config_id"`
	ConfigName    string           `json:"config_name"`
	Grid          *engine.Grid     `json:"grid"`
	Status        engine.Status    `json:"status"`
	Message       string           `json:"message"`
	MoveCount     int              `json:"move_count"`
	MaxTile       engine.Tile      `json:"max_tile"`
	WinValue      int              `json:"win_value"`
	UndoAvailable int              `json:"undo_available"`
	PossibleMoves []engine.Command `json:"possible_moves,omitempty"`
	Seed          uint64           `json:"seed"`
}

// MoveResult contains the result of applying one command
type MoveResult struct {
	Changed bool               `json:"changed"`
	Turn    *engine.MoveResult `json:"turn"`
	State   *GameState         `json:"state"`
	Message string             `json:"message"`
	Events  []GameEvent        `json:"events,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string          `json:"type"` // "move", "merge", "spawn", "undo", "no_change", "won", "game_over", "reset"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position,omitempty"`
	Value     engine.Tile     `json:"value,omitempty"`
}
