package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// GameConfig defines the board, the tile sequence and the rules of one puzzle variant
type GameConfig struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	Ceiling       int            `json:"ceiling"`
	WinValue      int            `json:"win_value,omitempty"`
	StartingTiles int            `json:"starting_tiles"`
	Overflow      OverflowPolicy `json:"overflow,omitempty"`
	Undo          UndoConfig     `json:"undo"`
	// Layout optionally fixes the starting board: one string per row,
	// space-separated values with "." for an empty cell
	Layout   []string `json:"layout,omitempty"`
	Messages Messages `json:"messages"`
}

// UndoConfig selects the undo mode. Depth only applies to UndoStack.
type UndoConfig struct {
	Mode  UndoMode `json:"mode,omitempty"`
	Depth int      `json:"depth,omitempty"`
}

// Messages shown by front ends after a turn
type Messages struct {
	Welcome  string `json:"welcome"`
	Won      string `json:"won"`
	GameOver string `json:"game_over"`
	Undo     string `json:"undo,omitempty"`
	NoChange string `json:"no_change,omitempty"`
}

// Win returns the tile value that wins the game
func (c *GameConfig) Win() int {
	if c.WinValue == 0 {
		return c.Ceiling
	}
	return c.WinValue
}

// OverflowPolicy returns the configured policy, OverflowClamp when unset
func (c *GameConfig) OverflowPolicy() OverflowPolicy {
	if c.Overflow == "" {
		return OverflowClamp
	}
	return c.Overflow
}

// UndoMode returns the configured undo mode, UndoToggle when unset
func (c *GameConfig) UndoMode() UndoMode {
	if c.Undo.Mode == "" {
		return UndoToggle
	}
	return c.Undo.Mode
}

// TileLimit returns the highest value a tile can reach under the overflow policy
func (c *GameConfig) TileLimit() int {
	if c.OverflowPolicy() == OverflowExtend {
		return MaxTileValue
	}
	return c.Ceiling
}

// DefaultGameConfig returns the classic 4x4 board played to 2048
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:          "classic",
		Description:   "Classic 4x4 board, reach 2048",
		Width:         DefaultGridSize,
		Height:        DefaultGridSize,
		Ceiling:       DefaultCeiling,
		StartingTiles: 2,
		Overflow:      OverflowClamp,
		Undo:          UndoConfig{Mode: UndoToggle},
		Messages: Messages{
			Welcome:  "Join the tiles, get to 2048!",
			Won:      "You reached 2048! Keep going if you like.",
			GameOver: "No moves left. Game over!",
			Undo:     "Move undone",
			NoChange: "Nothing moved",
		},
	}
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate board size
	if config.Width < MinGridSize || config.Width > MaxGridSize {
		return fmt.Errorf("config validation: width must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.Width)
	}
	if config.Height < MinGridSize || config.Height > MaxGridSize {
		return fmt.Errorf("config validation: height must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.Height)
	}

	// Validate tile sequence
	if !IsPowerOfTwo(config.Ceiling) || config.Ceiling < MinCeiling || config.Ceiling > MaxTileValue {
		return fmt.Errorf("config validation: ceiling must be a power of two between %d and %d, got %d", MinCeiling, MaxTileValue, config.Ceiling)
	}
	if config.WinValue != 0 {
		if !IsPowerOfTwo(config.WinValue) || config.WinValue <= DefaultStartTile || config.WinValue > config.Ceiling {
			return fmt.Errorf("config validation: win_value must be a power of two above %d and at most ceiling (%d), got %d",
				DefaultStartTile, config.Ceiling, config.WinValue)
		}
	}

	switch config.Overflow {
	case "", OverflowClamp, OverflowExtend:
	default:
		return fmt.Errorf("config validation: overflow must be %q or %q, got %q", OverflowClamp, OverflowExtend, config.Overflow)
	}

	// Validate undo
	switch config.Undo.Mode {
	case "", UndoToggle:
		if config.Undo.Depth > 1 {
			return fmt.Errorf("config validation: undo.depth must be 0 or 1 in %s mode, got %d", UndoToggle, config.Undo.Depth)
		}
	case UndoStack:
		if config.Undo.Depth < 1 || config.Undo.Depth > MaxUndoDepth {
			return fmt.Errorf("config validation: undo.depth must be between 1 and %d in %s mode, got %d", MaxUndoDepth, UndoStack, config.Undo.Depth)
		}
	default:
		return fmt.Errorf("config validation: undo.mode must be %q or %q, got %q", UndoToggle, UndoStack, config.Undo.Mode)
	}

	// Validate starting board
	cells := config.Width * config.Height
	if len(config.Layout) > 0 {
		if _, err := ParseLayout(config.Layout, config.Width, config.Height, config.TileLimit()); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
	} else if config.StartingTiles < 1 || config.StartingTiles > cells {
		return fmt.Errorf("config validation: starting_tiles must be between 1 and %d, got %d", cells, config.StartingTiles)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Won == "" {
		return fmt.Errorf("config validation: messages.won is required")
	}
	if config.Messages.GameOver == "" {
		return fmt.Errorf("config validation: messages.game_over is required")
	}

	return nil
}

// ParseLayout builds a grid from layout rows such as "2 2 4 .".
// Every value must be a power of two no greater than limit.
func ParseLayout(rows []string, width, height, limit int) (*Grid, error) {
	if len(rows) != height {
		return nil, fmt.Errorf("layout must have %d rows to match height, got %d", height, len(rows))
	}

	g := NewGrid(width, height)
	for y, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != width {
			return nil, fmt.Errorf("layout row %d must have %d cells to match width, got %d", y+1, width, len(fields))
		}

		for x, field := range fields {
			if field == "." {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil || !ValidTile(Tile(v), limit) || v == 0 {
				return nil, fmt.Errorf("layout has invalid tile %q at row %d, col %d", field, y+1, x+1)
			}
			g.Set(Position{X: x, Y: y}, Tile(v))
		}
	}

	return g, nil
}

// FormatLayout renders g in the layout format read by ParseLayout
func FormatLayout(g *Grid) []string {
	rows := make([]string, 0, g.Height())
	for _, row := range g.Rows() {
		fields := make([]string, len(row))
		for x, t := range row {
			fields[x] = t.String()
		}
		rows = append(rows, strings.Join(fields, " "))
	}
	return rows
}

// LoadGameConfig loads and validates a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
