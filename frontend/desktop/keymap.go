package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wricardo/game2048/frontend"
)

type keyBinding struct {
	key    ebiten.Key
	action frontend.Action
}

// keyBindings is checked in order; the first key pressed this frame wins
var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, frontend.ActionUp},
	{ebiten.KeyW, frontend.ActionUp},
	{ebiten.KeyArrowDown, frontend.ActionDown},
	{ebiten.KeyS, frontend.ActionDown},
	{ebiten.KeyArrowLeft, frontend.ActionLeft},
	{ebiten.KeyA, frontend.ActionLeft},
	{ebiten.KeyArrowRight, frontend.ActionRight},
	{ebiten.KeyD, frontend.ActionRight},
	{ebiten.KeyBackspace, frontend.ActionUndo},
	{ebiten.KeyU, frontend.ActionUndo},
	{ebiten.KeyZ, frontend.ActionUndo},
	{ebiten.KeyR, frontend.ActionNewGame},
	{ebiten.KeyEscape, frontend.ActionTerminate},
	{ebiten.KeyQ, frontend.ActionTerminate},
}
