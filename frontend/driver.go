package frontend

import (
	"context"
	"fmt"

	"github.com/wricardo/game2048/game/engine"
	"github.com/wricardo/game2048/game/service"
)

// Driver applies actions to a GameService and keeps the latest snapshot for drawing
type Driver struct {
	svc        service.GameService
	configName string
	state      *service.GameState
	last       *service.MoveResult

	// OnTurn, when set, is called after every resolved command
	OnTurn func(*service.MoveResult)
}

// NewDriver starts a game on configName and returns a driver for it
func NewDriver(ctx context.Context, svc service.GameService, configName string) (*Driver, error) {
	state, err := svc.NewGame(ctx, configName)
	if err != nil {
		return nil, err
	}
	return &Driver{svc: svc, configName: configName, state: state}, nil
}

// Handle performs one action. quit is true when the front end should exit.
func (d *Driver) Handle(ctx context.Context, a Action) (quit bool, err error) {
	if a.IsQuit() {
		return true, nil
	}

	if a.NewGame {
		state, err := d.svc.Reset(ctx)
		if err != nil {
			return false, fmt.Errorf("new game: %w", err)
		}
		d.state = state
		d.last = nil
		return false, nil
	}

	result, err := d.svc.Apply(ctx, a.Command)
	if err != nil {
		return false, fmt.Errorf("apply %s: %w", a.Command, err)
	}
	d.state = result.State
	d.last = result

	if d.OnTurn != nil {
		d.OnTurn(result)
	}
	return false, nil
}

// State returns the latest snapshot
func (d *Driver) State() *service.GameState {
	return d.state
}

// LastTurn returns the result of the most recent command, nil after a new game
func (d *Driver) LastTurn() *service.MoveResult {
	return d.last
}

// StatusLine summarises the game for a one-line header
func (d *Driver) StatusLine() string {
	s := d.state
	line := fmt.Sprintf("%s | moves %d | best %d/%d", s.ConfigName, s.MoveCount, s.MaxTile, s.WinValue)
	switch s.Status {
	case engine.Won:
		line += " | WON"
	case engine.GameOver:
		line += " | GAME OVER"
	}
	if s.Message != "" {
		line += " | " + s.Message
	}
	return line
}
