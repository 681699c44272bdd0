package frontend

import (
	"image/color"

	"github.com/wricardo/game2048/game/engine"
)

var (
	BackgroundColor = color.RGBA{187, 173, 160, 255}
	EmptyCellColor  = color.RGBA{205, 193, 180, 255}
	DarkTextColor   = color.RGBA{119, 110, 101, 255}
	LightTextColor  = color.RGBA{249, 246, 242, 255}
)

// tileColors is indexed by tile rank (2 -> 1, 4 -> 2, ...)
var tileColors = []color.RGBA{
	{205, 193, 180, 255}, // empty
	{238, 228, 218, 255}, // 2
	{237, 224, 200, 255}, // 4
	{242, 177, 121, 255}, // 8
	{245, 149, 99, 255},  // 16
	{246, 124, 95, 255},  // 32
	{246, 94, 59, 255},   // 64
	{237, 207, 114, 255}, // 128
	{237, 204, 97, 255},  // 256
	{237, 200, 80, 255},  // 512
	{237, 197, 63, 255},  // 1024
	{237, 194, 46, 255},  // 2048
}

// beyondCeilingColor is used for tiles past 2048
var beyondCeilingColor = color.RGBA{60, 58, 50, 255}

// TileColor returns the background colour of a tile
func TileColor(t engine.Tile) color.RGBA {
	rank := t.Rank()
	if rank < len(tileColors) {
		return tileColors[rank]
	}
	return beyondCeilingColor
}

// TextColor returns a colour readable on TileColor(t)
func TextColor(t engine.Tile) color.RGBA {
	if t.Rank() <= 2 {
		return DarkTextColor
	}
	return LightTextColor
}
