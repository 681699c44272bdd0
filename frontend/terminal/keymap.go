package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/game2048/frontend"
)

// ActionForKey maps a terminal key event to a front-end action
func ActionForKey(ev *tcell.EventKey) (frontend.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return frontend.ActionUp, true
	case tcell.KeyDown:
		return frontend.ActionDown, true
	case tcell.KeyLeft:
		return frontend.ActionLeft, true
	case tcell.KeyRight:
		return frontend.ActionRight, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return frontend.ActionUndo, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return frontend.ActionTerminate, true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return frontend.Action{}, false
		}
		return frontend.ActionForRune(ev.Rune())
	}
	return frontend.Action{}, false
}
