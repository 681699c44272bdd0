package frontend

import (
	"unicode"

	"github.com/wricardo/game2048/game/engine"
)

// Action is what a key press asks the front end to do
type Action struct {
	// Command is a direction, engine.Undo or engine.Terminate
	Command engine.Command
	// NewGame starts the current config over
	NewGame bool
}

var (
	ActionUp        = Action{Command: engine.Up}
	ActionDown      = Action{Command: engine.Down}
	ActionLeft      = Action{Command: engine.Left}
	ActionRight     = Action{Command: engine.Right}
	ActionUndo      = Action{Command: engine.Undo}
	ActionTerminate = Action{Command: engine.Terminate}
	ActionNewGame   = Action{NewGame: true}
)

// runeActions is the letter layout shared by every front end
var runeActions = map[rune]Action{
	'w': ActionUp,
	'a': ActionLeft,
	's': ActionDown,
	'd': ActionRight,
	'u': ActionUndo,
	'z': ActionUndo,
	'r': ActionNewGame,
	'q': ActionTerminate,
}

// ActionForRune maps a typed letter to an action, ignoring case
func ActionForRune(r rune) (Action, bool) {
	a, ok := runeActions[unicode.ToLower(r)]
	return a, ok
}

// IsQuit reports whether the action ends the program
func (a Action) IsQuit() bool {
	return a.Command == engine.Terminate
}

// HelpLine lists the controls for status bars
const HelpLine = "Arrows/WASD: move | Backspace/U/Z: undo | R: new game | Esc/Q: quit"
