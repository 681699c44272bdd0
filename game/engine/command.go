package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCommand is returned when input does not name a known command
var ErrInvalidCommand = errors.New("invalid command")

// Command is a single instruction applied once per turn.
// The zero value is not a valid command.
type Command int

const (
	Up Command = iota + 1
	Down
	Left
	Right
	Undo
	// Terminate is handled by front ends and never reaches the engine
	Terminate
)

var commandNames = map[Command]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Undo:      "undo",
	Terminate: "terminate",
}

// Directions lists the four slide directions in a stable order
var Directions = []Command{Up, Down, Left, Right}

// ParseCommand maps a command name (case-insensitive) to a Command
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
}

// String returns the command name
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// IsDirection reports whether c slides tiles
func (c Command) IsDirection() bool {
	return c >= Up && c <= Right
}

// Valid reports whether the engine accepts c
func (c Command) Valid() bool {
	return c >= Up && c <= Undo
}

// MarshalText encodes the command by name
func (c Command) MarshalText() ([]byte, error) {
	if _, ok := commandNames[c]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCommand, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a command name
func (c *Command) UnmarshalText(text []byte) error {
	cmd, err := ParseCommand(string(text))
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}

// lines returns every line of a width x height board along the axis of dir.
// Each line starts on the destination side, so the first cell is where tiles settle first.
func lines(dir Command, width, height int) [][]Position {
	var out [][]Position

	switch dir {
	case Left:
		for y := 0; y < height; y++ {
			line := make([]Position, 0, width)
			for x := 0; x < width; x++ {
				line = append(line, Position{X: x, Y: y})
			}
			out = append(out, line)
		}
	case Right:
		for y := 0; y < height; y++ {
			line := make([]Position, 0, width)
			for x := width - 1; x >= 0; x-- {
				line = append(line, Position{X: x, Y: y})
			}
			out = append(out, line)
		}
	case Up:
		for x := 0; x < width; x++ {
			line := make([]Position, 0, height)
			for y := 0; y < height; y++ {
				line = append(line, Position{X: x, Y: y})
			}
			out = append(out, line)
		}
	case Down:
		for x := 0; x < width; x++ {
			line := make([]Position, 0, height)
			for y := height - 1; y >= 0; y-- {
				line = append(line, Position{X: x, Y: y})
			}
			out = append(out, line)
		}
	}

	return out
}
