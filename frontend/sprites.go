package frontend

import (
	"fmt"
	"image"

	"github.com/wricardo/game2048/game/engine"
)

// SheetLayout describes a sprite sheet of square cells laid out row-major.
// Cell 0 is the empty tile and cell k is the tile 2^k.
type SheetLayout struct {
	Width    int // sheet width in pixels
	Height   int // sheet height in pixels
	CellSize int
}

// NewSheetLayout checks that the sheet holds at least one whole cell
func NewSheetLayout(width, height, cellSize int) (SheetLayout, error) {
	if cellSize <= 0 || width < cellSize || height < cellSize {
		return SheetLayout{}, fmt.Errorf("sprite sheet %dx%d cannot hold %dpx cells", width, height, cellSize)
	}
	return SheetLayout{Width: width, Height: height, CellSize: cellSize}, nil
}

// Columns returns the number of cells per row
func (l SheetLayout) Columns() int {
	return l.Width / l.CellSize
}

// Count returns the number of whole cells on the sheet
func (l SheetLayout) Count() int {
	return l.Columns() * (l.Height / l.CellSize)
}

// Rect returns the bounds of the sprite for t. ok is false when the sheet has no such cell.
func (l SheetLayout) Rect(t engine.Tile) (image.Rectangle, bool) {
	index := t.Rank()
	if index >= l.Count() {
		return image.Rectangle{}, false
	}

	col, row := index%l.Columns(), index/l.Columns()
	x, y := col*l.CellSize, row*l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize), true
}

// BoardGeometry places a board of cells inside a window
type BoardGeometry struct {
	Columns  int
	Rows     int
	CellSize int
	Gap      int
	Top      int // space reserved above the board for the status line
}

// Size returns the pixel size of the board including outer gaps
func (b BoardGeometry) Size() (int, int) {
	return b.Columns*(b.CellSize+b.Gap) + b.Gap, b.Top + b.Rows*(b.CellSize+b.Gap) + b.Gap
}

// CellOrigin returns the top-left pixel of the cell at p
func (b BoardGeometry) CellOrigin(p engine.Position) image.Point {
	return image.Pt(
		b.Gap+p.X*(b.CellSize+b.Gap),
		b.Top+b.Gap+p.Y*(b.CellSize+b.Gap),
	)
}
