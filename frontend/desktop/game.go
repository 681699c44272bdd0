// Package desktop runs the game in an ebiten window.
package desktop

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/wricardo/game2048/frontend"
	"github.com/wricardo/game2048/game/engine"
)

const (
	cellSize     = 96
	cellGap      = 8
	headerHeight = 40
	// The debug font is 6x16 pixels per glyph
	glyphWidth  = 6
	glyphHeight = 16
)

// Options control how the window draws tiles
type Options struct {
	// SpriteSheet is an optional PNG; tiles are drawn as coloured squares without it
	SpriteSheet string
	SpriteSize  int
}

// Game implements ebiten.Game on top of a frontend.Driver
type Game struct {
	ctx    context.Context
	driver *frontend.Driver
	geom   frontend.BoardGeometry
	sheet  *SpriteSheet
	errMsg string
}

// New creates the window game. A sprite sheet that fails to load falls back to plain tiles.
func New(ctx context.Context, driver *frontend.Driver, opts Options) *Game {
	grid := driver.State().Grid
	g := &Game{
		ctx:    ctx,
		driver: driver,
		geom: frontend.BoardGeometry{
			Columns:  grid.Width(),
			Rows:     grid.Height(),
			CellSize: cellSize,
			Gap:      cellGap,
			Top:      headerHeight,
		},
	}

	if opts.SpriteSheet != "" {
		sheet, err := LoadSpriteSheet(opts.SpriteSheet, opts.SpriteSize)
		if err != nil {
			log.Warn().Err(err).Str("path", opts.SpriteSheet).Msg("sprite sheet unavailable, drawing plain tiles")
		} else {
			g.sheet = sheet
		}
	}

	return g
}

// Run opens the window and blocks until the player quits
func Run(g *Game) error {
	w, h := g.geom.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("2048")
	return ebiten.RunGame(g)
}

// Update handles at most one key press per frame
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, binding := range keyBindings {
		if !inpututil.IsKeyJustPressed(binding.key) {
			continue
		}

		quit, err := g.driver.Handle(g.ctx, binding.action)
		if err != nil {
			log.Error().Err(err).Msg("handle key")
			g.errMsg = err.Error()
		} else {
			g.errMsg = ""
		}
		if quit {
			return ebiten.Termination
		}
		break
	}

	return nil
}

// Draw renders the status line and the board
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(frontend.BackgroundColor)

	ebitenutil.DebugPrintAt(screen, g.driver.StatusLine(), cellGap, 4)
	if g.errMsg != "" {
		ebitenutil.DebugPrintAt(screen, g.errMsg, cellGap, 4+glyphHeight)
	} else {
		ebitenutil.DebugPrintAt(screen, frontend.HelpLine, cellGap, 4+glyphHeight)
	}

	grid := g.driver.State().Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := engine.Position{X: x, Y: y}
			t, _ := grid.At(p)
			g.drawTile(screen, p, t)
		}
	}
}

func (g *Game) drawTile(screen *ebiten.Image, p engine.Position, t engine.Tile) {
	origin := g.geom.CellOrigin(p)

	if g.sheet != nil {
		if sprite := g.sheet.Sprite(t); sprite != nil {
			op := &ebiten.DrawImageOptions{}
			scale := float64(g.geom.CellSize) / float64(g.sheet.CellSize())
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(float64(origin.X), float64(origin.Y))
			screen.DrawImage(sprite, op)
			return
		}
	}

	vector.DrawFilledRect(screen,
		float32(origin.X), float32(origin.Y),
		float32(g.geom.CellSize), float32(g.geom.CellSize),
		frontend.TileColor(t), false)

	if t.IsEmpty() {
		return
	}
	label := fmt.Sprint(t.Value())
	lx := origin.X + (g.geom.CellSize-len(label)*glyphWidth)/2
	ly := origin.Y + (g.geom.CellSize-glyphHeight)/2
	ebitenutil.DebugPrintAt(screen, label, lx, ly)
}

// Layout keeps a fixed logical size matching the board
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.geom.Size()
}
