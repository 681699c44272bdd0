// Package terminal draws the board in a terminal with tcell and reads keys from it.
package terminal

import (
	"context"
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/wricardo/game2048/frontend"
	"github.com/wricardo/game2048/game/engine"
	"github.com/wricardo/game2048/game/service"
)

const (
	cellWidth  = 8
	cellHeight = 3
	boardTop   = 2
	boardLeft  = 1
)

// MergeSounder plays a cue for the merges of a turn
type MergeSounder interface {
	Merge(merges []engine.MergeEvent)
}

// UI runs the game loop on a tcell screen
type UI struct {
	screen tcell.Screen
	driver *frontend.Driver
	errMsg string
}

// New wires a driver to an initialised screen. sounds may be nil.
func New(screen tcell.Screen, driver *frontend.Driver, sounds MergeSounder) *UI {
	if sounds != nil {
		driver.OnTurn = func(result *service.MoveResult) {
			sounds.Merge(result.Turn.Merges)
		}
	}
	return &UI{screen: screen, driver: driver}
}

// Run draws the board and handles keys until the player quits, ctx ends or the screen closes
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(u.screen, events, done)

	u.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, ok := ActionForKey(ev)
				if !ok {
					continue
				}
				quit, err := u.driver.Handle(ctx, action)
				if err != nil {
					log.Error().Err(err).Msg("handle key")
					u.errMsg = err.Error()
				} else {
					u.errMsg = ""
				}
				if quit {
					return nil
				}
			case *tcell.EventResize:
				u.screen.Sync()
			}

			u.draw()
		}
	}
}

// pollEvents forwards screen events until the screen closes or done is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (u *UI) draw() {
	u.screen.Clear()
	state := u.driver.State()

	drawText(u.screen, 0, 0, u.driver.StatusLine(), tcell.StyleDefault.Bold(true))

	grid := state.Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			t, _ := grid.At(engine.Position{X: x, Y: y})
			u.drawCell(x, y, t)
		}
	}

	footer := boardTop + grid.Height()*cellHeight + 1
	drawText(u.screen, 0, footer, frontend.HelpLine, tcell.StyleDefault.Dim(true))
	if u.errMsg != "" {
		drawText(u.screen, 0, footer+1, u.errMsg, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	u.screen.Show()
}

// drawCell fills one board cell and centres its value on the middle line
func (u *UI) drawCell(col, row int, t engine.Tile) {
	style := tcell.StyleDefault.
		Background(rgb(frontend.TileColor(t))).
		Foreground(rgb(frontend.TextColor(t))).
		Bold(true)

	left := boardLeft + col*cellWidth
	top := boardTop + row*cellHeight

	// One column of padding between cells
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth-1; dx++ {
			u.screen.SetContent(left+dx, top+dy, ' ', nil, style)
		}
	}

	if t.IsEmpty() {
		return
	}
	label := fmt.Sprint(t.Value())
	pad := (cellWidth - 1 - utf8.RuneCountInString(label)) / 2
	if pad < 0 {
		pad = 0
	}
	drawText(u.screen, left+pad, top+cellHeight/2, label, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
