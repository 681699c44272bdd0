package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrGridShape is returned when rows do not form a rectangle
var ErrGridShape = errors.New("grid rows must be non-empty and of equal length")

// Grid is a fixed-size board of tiles addressed by (column, row).
// Every accessor is bounds-checked; nothing outside the board is ever indexed.
type Grid struct {
	width  int
	height int
	cells  [][]Tile // cells[y][x]
}

// NewGrid creates an all-empty grid. Width and height must be positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid grid dimensions %dx%d", width, height))
	}

	cells := make([][]Tile, height)
	for y := range cells {
		cells[y] = make([]Tile, width)
	}

	return &Grid{width: width, height: height, cells: cells}
}

// GridFromRows builds a grid from rows of tiles, top row first
func GridFromRows(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrGridShape
	}

	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrGridShape, y, len(row), g.width)
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p addresses a cell of the grid
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p. ok is false when p is outside the grid.
func (g *Grid) At(p Position) (Tile, bool) {
	if !g.InBounds(p) {
		return Empty, false
	}
	return g.cells[p.Y][p.X], true
}

// Set writes t at p and reports whether p was inside the grid
func (g *Grid) Set(p Position, t Tile) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y][p.X] = t
	return true
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same shape and tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists empty positions in row-major order
func (g *Grid) EmptyCells() []Position {
	var empty []Position
	for y := range g.cells {
		for x, t := range g.cells[y] {
			if t.IsEmpty() {
				empty = append(empty, Position{X: x, Y: y})
			}
		}
	}
	return empty
}

// Sum returns the total value of all tiles
func (g *Grid) Sum() int {
	sum := 0
	for _, row := range g.cells {
		for _, t := range row {
			sum += t.Value()
		}
	}
	return sum
}

// Occupied counts non-empty cells
func (g *Grid) Occupied() int {
	count := 0
	for _, row := range g.cells {
		for _, t := range row {
			if !t.IsEmpty() {
				count++
			}
		}
	}
	return count
}

// MaxTile returns the highest tile on the board
func (g *Grid) MaxTile() Tile {
	best := Empty
	for _, row := range g.cells {
		for _, t := range row {
			if t > best {
				best = t
			}
		}
	}
	return best
}

// Rows returns a copy of the tiles, top row first
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.height)
	for y := range g.cells {
		rows[y] = append([]Tile(nil), g.cells[y]...)
	}
	return rows
}

// String renders the grid one row per line with right-aligned values
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, t := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%5s", t.String())
		}
	}
	return b.String()
}

// MarshalJSON encodes the grid as rows of numbers, 0 for empty
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.cells)
}

// UnmarshalJSON decodes rows of numbers produced by MarshalJSON
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]Tile
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := GridFromRows(rows)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}
