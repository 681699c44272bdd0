package service

import (
	"context"
	"errors"

	"github.com/wricardo/game2048/game/config"
	"github.com/wricardo/game2048/game/engine"
)

var (
	// ErrNoGame is returned by turn operations before NewGame is called
	ErrNoGame = errors.New("no game in progress")
)

// GameService defines all game-related operations front ends call
type GameService interface {
	// Game lifecycle
	NewGame(ctx context.Context, configName string) (*GameState, error)
	Reset(ctx context.Context) (*GameState, error)

	// Turns
	Apply(ctx context.Context, cmd engine.Command) (*MoveResult, error)

	// Game State
	State(ctx context.Context) (*GameState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*config.ConfigInfo, error)
	Config(ctx context.Context) (*engine.GameConfig, error)
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*config.ConfigInfo, error)
	GetDefault() *engine.GameConfig
}

// Options tune a GameService
type Options struct {
	// Seed makes games reproducible. Zero draws a fresh seed per service.
	Seed uint64
}
