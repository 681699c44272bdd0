package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/wricardo/game2048/frontend"
	"github.com/wricardo/game2048/game/engine"
)

// SpriteSheet slices tile images out of one PNG
type SpriteSheet struct {
	image   *ebiten.Image
	layout  frontend.SheetLayout
	sprites map[engine.Tile]*ebiten.Image
}

// LoadSpriteSheet reads a sheet of square cells of size pixels
func LoadSpriteSheet(path string, size int) (*SpriteSheet, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite sheet: %w", err)
	}

	bounds := img.Bounds()
	layout, err := frontend.NewSheetLayout(bounds.Dx(), bounds.Dy(), size)
	if err != nil {
		return nil, err
	}

	return &SpriteSheet{
		image:   img,
		layout:  layout,
		sprites: make(map[engine.Tile]*ebiten.Image),
	}, nil
}

// Sprite returns the image for t, nil when the sheet has no cell for it
func (s *SpriteSheet) Sprite(t engine.Tile) *ebiten.Image {
	if sprite, ok := s.sprites[t]; ok {
		return sprite
	}

	rect, ok := s.layout.Rect(t)
	if !ok {
		s.sprites[t] = nil
		return nil
	}
	sprite := s.image.SubImage(rect.Add(s.image.Bounds().Min)).(*ebiten.Image)
	s.sprites[t] = sprite
	return sprite
}

// CellSize returns the pixel size of one sprite
func (s *SpriteSheet) CellSize() int {
	return s.layout.CellSize
}
