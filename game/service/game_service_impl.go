package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wricardo/game2048/game/config"
	"github.com/wricardo/game2048/game/engine"
)

// gameServiceImpl implements the GameService interface for a single player
type gameServiceImpl struct {
	configs  ConfigManager
	seed     uint64
	rng      engine.IntNSource
	engine   *engine.GameEngine
	configID string
	message  string
	mu       sync.Mutex
}

// NewGameService creates a new game service instance
func NewGameService(configs ConfigManager, opts Options) GameService {
	return &gameServiceImpl{
		configs: configs,
		seed:    opts.Seed,
	}
}

// NewGame starts a game on the named config, or the default config when name is empty
func (s *gameServiceImpl) NewGame(ctx context.Context, configName string) (*GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gameConfig, configID, err := s.loadConfig(configName)
	if err != nil {
		return nil, err
	}

	if s.rng == nil {
		if s.seed == 0 {
			if s.seed, err = engine.NewSeed(); err != nil {
				return nil, err
			}
		}
		s.rng = engine.NewRand(s.seed)
	}

	eng, err := engine.NewEngine(gameConfig, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if err := eng.SpawnInitialTiles(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	s.engine = eng
	s.configID = configID
	s.message = gameConfig.Messages.Welcome

	log.Info().
		Str("config", configID).
		Int("width", gameConfig.Width).
		Int("height", gameConfig.Height).
		Uint64("seed", s.seed).
		Msg("new game")

	return s.snapshot(), nil
}

// loadConfig resolves a config name, listing the alternatives when it is unknown
func (s *gameServiceImpl) loadConfig(configName string) (*engine.GameConfig, string, error) {
	if configName == "" {
		gameConfig := s.configs.GetDefault()
		if gameConfig == nil {
			return nil, "", fmt.Errorf("no default config available")
		}
		return gameConfig, s.getConfigID(gameConfig.Name), nil
	}

	gameConfig, err := s.configs.LoadConfig(configName)
	if err == nil {
		return gameConfig, strings.TrimSuffix(configName, ".json"), nil
	}

	if errors.Is(err, config.ErrConfigNotFound) {
		if available, listErr := s.configs.ListConfigs(); listErr == nil && len(available) > 0 {
			var configIDs []string
			for _, cfg := range available {
				configIDs = append(configIDs, cfg.ConfigID)
			}
			return nil, "", fmt.Errorf("config '%s' not found, available configs: %v: %w", configName, configIDs, err)
		}
	}
	return nil, "", fmt.Errorf("failed to load config %s: %w", configName, err)
}

// getConfigID returns the config_id for a given display name
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// Apply resolves one command. Turns never overlap.
func (s *gameServiceImpl) Apply(ctx context.Context, cmd engine.Command) (*MoveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !cmd.Valid() {
		return nil, fmt.Errorf("%w: %s", engine.ErrInvalidCommand, cmd)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil, ErrNoGame
	}

	turn := s.engine.ResolveMove(cmd)
	messages := s.engine.Config().Messages

	s.message = turnMessage(turn, messages, s.message)
	events := extractTurnEvents(turn, messages)

	log.Debug().
		Str("cmd", cmd.String()).
		Bool("changed", turn.Changed).
		Int("merges", len(turn.Merges)).
		Int("move", turn.MoveNumber).
		Int("max_tile", int(turn.Grid.MaxTile())).
		Str("status", string(turn.Status)).
		Msg("turn")

	if turn.ReachedWin {
		log.Info().Int("moves", turn.MoveNumber).Msg("win value reached")
	}
	if turn.Status == engine.GameOver && !turn.Changed && cmd.IsDirection() {
		log.Debug().Str("cmd", cmd.String()).Msg("move ignored, game over")
	}

	return &MoveResult{
		Changed: turn.Changed,
		Turn:    turn,
		State:   s.snapshot(),
		Message: s.message,
		Events:  events,
	}, nil
}

// turnMessage picks the status line shown after a turn
func turnMessage(turn *engine.MoveResult, messages engine.Messages, previous string) string {
	switch {
	case turn.ReachedWin:
		return messages.Won
	case turn.Status == engine.GameOver:
		return messages.GameOver
	case turn.Command == engine.Undo && turn.Changed:
		return messages.Undo
	case !turn.Changed:
		return messages.NoChange
	case turn.Status == engine.Won:
		// Keep the win message up while play continues
		return previous
	}
	return ""
}

// extractTurnEvents generates events from a resolved command
func extractTurnEvents(turn *engine.MoveResult, messages engine.Messages) []GameEvent {
	now := time.Now()
	events := []GameEvent{}

	switch {
	case turn.Command == engine.Undo && turn.Changed:
		events = append(events, GameEvent{
			Type:      EventUndo,
			Message:   messages.Undo,
			Timestamp: now,
		})
	case !turn.Changed:
		events = append(events, GameEvent{
			Type:      EventNoChange,
			Message:   fmt.Sprintf("%s changed nothing", turn.Command),
			Timestamp: now,
		})
	default:
		events = append(events, GameEvent{
			Type:      EventMove,
			Message:   fmt.Sprintf("Moved %s, %d tiles slid", turn.Command, len(turn.Moves)),
			Timestamp: now,
		})
		for _, merge := range turn.Merges {
			events = append(events, GameEvent{
				Type:      EventMerge,
				Message:   fmt.Sprintf("%d + %d = %d", merge.From, merge.From, merge.Value),
				Timestamp: now,
				Position:  merge.Into,
				Value:     merge.Value,
			})
		}
		if turn.Spawned != nil {
			events = append(events, GameEvent{
				Type:      EventSpawn,
				Message:   fmt.Sprintf("New %d at (%d,%d)", turn.Spawned.Value, turn.Spawned.Position.X, turn.Spawned.Position.Y),
				Timestamp: now,
				Position:  turn.Spawned.Position,
				Value:     turn.Spawned.Value,
			})
		}
	}

	if turn.ReachedWin {
		events = append(events, GameEvent{
			Type:      EventWon,
			Message:   messages.Won,
			Timestamp: now,
			Value:     turn.Grid.MaxTile(),
		})
	}
	if turn.Status == engine.GameOver {
		events = append(events, GameEvent{
			Type:      EventGameOver,
			Message:   messages.GameOver,
			Timestamp: now,
		})
	}

	return events
}

// Reset starts the current config over
func (s *gameServiceImpl) Reset(ctx context.Context) (*GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil, ErrNoGame
	}
	if err := s.engine.Reset(); err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}
	s.message = s.engine.Config().Messages.Welcome

	log.Info().Str("config", s.configID).Str("event", EventReset).Msg("game reset")

	return s.snapshot(), nil
}

// State returns the current game snapshot
func (s *gameServiceImpl) State(ctx context.Context) (*GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil, ErrNoGame
	}
	return s.snapshot(), nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*config.ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// Config returns the configuration of the game in progress
func (s *gameServiceImpl) Config(ctx context.Context) (*engine.GameConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil, ErrNoGame
	}
	return s.engine.Config(), nil
}

// snapshot must be called with s.mu held
func (s *gameServiceImpl) snapshot() *GameState {
	grid := s.engine.Grid()
	gameConfig := s.engine.Config()

	return &GameState{
		ConfigID:      s.configID,
		ConfigName:    gameConfig.Name,
		Grid:          grid,
		Status:        s.engine.Status(),
		Message:       s.message,
		MoveCount:     s.engine.MoveCount(),
		MaxTile:       grid.MaxTile(),
		WinValue:      gameConfig.Win(),
		UndoAvailable: s.engine.UndoAvailable(),
		PossibleMoves: s.engine.PossibleMoves(),
		Seed:          s.seed,
	}
}
