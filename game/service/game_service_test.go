package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/wricardo/game2048/game/config"
	"github.com/wricardo/game2048/game/engine"
	"github.com/wricardo/game2048/game/service"
)

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	classic := engine.DefaultGameConfig()

	nearWin := engine.DefaultGameConfig()
	nearWin.Name = "near-win"
	nearWin.Description = "One merge away from winning"
	nearWin.Layout = []string{
		"1024 1024 . .",
		". . . .",
		". . . .",
		". . . .",
	}

	locked := engine.DefaultGameConfig()
	locked.Name = "locked"
	locked.Description = "No moves from the start"
	locked.Width = 2
	locked.Height = 2
	locked.Layout = []string{"2 4", "4 2"}

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"classic":  classic,
			"near-win": nearWin,
			"locked":   locked,
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	gameConfig, exists := m.configs[name]
	if !exists {
		return nil, config.ErrConfigNotFound
	}
	return gameConfig, nil
}

func (m *MockConfigManager) ListConfigs() ([]*config.ConfigInfo, error) {
	result := make([]*config.ConfigInfo, 0, len(m.configs))
	for name, gameConfig := range m.configs {
		result = append(result, &config.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        gameConfig.Name,
			Description: gameConfig.Description,
			Width:       gameConfig.Width,
			Height:      gameConfig.Height,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["classic"]
}

func newTestService(t *testing.T, configName string) service.GameService {
	t.Helper()
	svc := service.NewGameService(NewMockConfigManager(), service.Options{Seed: 7})
	if _, err := svc.NewGame(context.Background(), configName); err != nil {
		t.Fatalf("Failed to start game: %v", err)
	}
	return svc
}

func hasEvent(events []service.GameEvent, eventType string) bool {
	for _, ev := range events {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}

func TestGameService_NewGame(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockConfigManager(), service.Options{Seed: 1})

	tests := []struct {
		name       string
		configName string
		wantID     string
		wantErr    bool
	}{
		{"default config", "", "classic", false},
		{"specific config", "near-win", "near-win", false},
		{"unknown config", "nonexistent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := svc.NewGame(ctx, tt.configName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewGame() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, config.ErrConfigNotFound) {
					t.Errorf("Expected ErrConfigNotFound, got %v", err)
				}
				return
			}
			if state.ConfigID != tt.wantID {
				t.Errorf("Expected config id %q, got %q", tt.wantID, state.ConfigID)
			}
			if state.Status != engine.Playing {
				t.Errorf("Expected status %s, got %s", engine.Playing, state.Status)
			}
			if state.Message == "" {
				t.Error("Expected welcome message")
			}
			if state.Seed != 1 {
				t.Errorf("Expected seed 1, got %d", state.Seed)
			}
		})
	}
}

func TestGameService_NoGame(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockConfigManager(), service.Options{})

	if _, err := svc.Apply(ctx, engine.Left); !errors.Is(err, service.ErrNoGame) {
		t.Errorf("Apply: expected ErrNoGame, got %v", err)
	}
	if _, err := svc.State(ctx); !errors.Is(err, service.ErrNoGame) {
		t.Errorf("State: expected ErrNoGame, got %v", err)
	}
	if _, err := svc.Reset(ctx); !errors.Is(err, service.ErrNoGame) {
		t.Errorf("Reset: expected ErrNoGame, got %v", err)
	}
	if _, err := svc.Config(ctx); !errors.Is(err, service.ErrNoGame) {
		t.Errorf("Config: expected ErrNoGame, got %v", err)
	}
}

func TestGameService_Apply(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "near-win")

	t.Run("winning move", func(t *testing.T) {
		result, err := svc.Apply(ctx, engine.Left)
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if !result.Changed {
			t.Fatal("Expected the move to change the board")
		}
		for _, eventType := range []string{service.EventMove, service.EventMerge, service.EventSpawn, service.EventWon} {
			if !hasEvent(result.Events, eventType) {
				t.Errorf("Expected %s event, got %+v", eventType, result.Events)
			}
		}
		if result.Message != engine.DefaultGameConfig().Messages.Won {
			t.Errorf("Expected win message, got %q", result.Message)
		}
		if result.State.Status != engine.Won || result.State.MaxTile != 2048 {
			t.Errorf("Unexpected state %+v", result.State)
		}
	})

	t.Run("unchanged move", func(t *testing.T) {
		locked := newTestService(t, "locked")
		result, err := locked.Apply(ctx, engine.Left)
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if result.Changed || result.State.MoveCount != 0 {
			t.Fatalf("Expected the locked board not to change, got %+v", result.State)
		}
		if !hasEvent(result.Events, service.EventNoChange) {
			t.Errorf("Expected no_change event, got %+v", result.Events)
		}
	})

	t.Run("undo", func(t *testing.T) {
		state, _ := svc.State(ctx)
		if state.UndoAvailable == 0 {
			t.Fatal("Expected undo to be available")
		}
		result, err := svc.Apply(ctx, engine.Undo)
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if !result.Changed || !hasEvent(result.Events, service.EventUndo) {
			t.Errorf("Expected undo event, got %+v", result.Events)
		}
	})

	t.Run("invalid command", func(t *testing.T) {
		for _, cmd := range []engine.Command{0, engine.Terminate} {
			if _, err := svc.Apply(ctx, cmd); !errors.Is(err, engine.ErrInvalidCommand) {
				t.Errorf("Expected ErrInvalidCommand for %s, got %v", cmd, err)
			}
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := svc.Apply(cancelled, engine.Left); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestGameService_GameOver(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "locked")

	result, err := svc.Apply(ctx, engine.Up)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.Changed {
		t.Error("Expected no change on a locked board")
	}
	if !hasEvent(result.Events, service.EventGameOver) {
		t.Errorf("Expected game_over event, got %+v", result.Events)
	}
	if result.Message != engine.DefaultGameConfig().Messages.GameOver {
		t.Errorf("Expected game over message, got %q", result.Message)
	}
	if len(result.State.PossibleMoves) != 0 {
		t.Errorf("Expected no possible moves, got %v", result.State.PossibleMoves)
	}
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "near-win")

	if _, err := svc.Apply(ctx, engine.Left); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	state, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if state.MoveCount != 0 || state.UndoAvailable != 0 {
		t.Errorf("Expected a fresh game, got %+v", state)
	}
	if state.MaxTile != 1024 {
		t.Errorf("Expected starting layout after reset, got max tile %d", state.MaxTile)
	}
	if state.Message != engine.DefaultGameConfig().Messages.Welcome {
		t.Errorf("Expected welcome message, got %q", state.Message)
	}
}

func TestGameService_SeededGamesMatch(t *testing.T) {
	ctx := context.Background()
	play := func() *engine.Grid {
		svc := newTestService(t, "classic")
		for i := 0; i < 30; i++ {
			if _, err := svc.Apply(ctx, engine.Directions[i%len(engine.Directions)]); err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
		}
		state, _ := svc.State(ctx)
		return state.Grid
	}

	if first, second := play(), play(); !first.Equal(second) {
		t.Errorf("Expected identical boards\n%s\n\n%s", first, second)
	}
}

func TestGameService_ConcurrentApply(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "classic")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if _, err := svc.Apply(ctx, engine.Directions[(id+j)%len(engine.Directions)]); err != nil {
					t.Errorf("Apply failed: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	state, err := svc.State(ctx)
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	// Every changing move adds exactly one 2 to the board
	if want := 4 + 2*state.MoveCount; state.Grid.Sum() != want {
		t.Errorf("Expected board sum %d after %d moves, got %d", want, state.MoveCount, state.Grid.Sum())
	}
}

func TestGameService_ListConfigs(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager(), service.Options{})

	configs, err := svc.ListConfigs(context.Background())
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 3 {
		t.Errorf("Expected 3 configs, got %d", len(configs))
	}
}

func TestGameService_Config(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockConfigManager(), service.Options{Seed: 1})

	if _, err := svc.Config(ctx); !errors.Is(err, service.ErrNoGame) {
		t.Errorf("Config before NewGame: expected ErrNoGame, got %v", err)
	}

	if _, err := svc.NewGame(ctx, "locked"); err != nil {
		t.Fatalf("Failed to start game: %v", err)
	}
	gameConfig, err := svc.Config(ctx)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	if gameConfig.Name != "locked" || gameConfig.Width != 2 {
		t.Errorf("Expected the locked config, got %s (%dx%d)", gameConfig.Name, gameConfig.Width, gameConfig.Height)
	}
}

func TestGameService_InvalidCommand(t *testing.T) {
	svc := newTestService(t, "classic")

	for _, cmd := range []engine.Command{0, engine.Terminate, engine.Command(42)} {
		t.Run(cmd.String(), func(t *testing.T) {
			if _, err := svc.Apply(context.Background(), cmd); !errors.Is(err, engine.ErrInvalidCommand) {
				t.Errorf("expected ErrInvalidCommand, got %v", err)
			}
		})
	}
}
