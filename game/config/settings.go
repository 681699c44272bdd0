package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds process-level options read from the environment.
// Command-line flags override them.
type Settings struct {
	ConfigDir   string `env:"GAME2048_CONFIG_DIR"   envDefault:"configs"`
	ConfigName  string `env:"GAME2048_CONFIG"       envDefault:"classic"`
	LogLevel    string `env:"GAME2048_LOG_LEVEL"    envDefault:"info"`
	LogFile     string `env:"GAME2048_LOG_FILE"`
	Seed        uint64 `env:"GAME2048_SEED"` // 0 picks a random seed
	SpriteSheet string `env:"GAME2048_SPRITES"`
	SpriteSize  int    `env:"GAME2048_SPRITE_SIZE"  envDefault:"64"`
	Sound       bool   `env:"GAME2048_SOUND"        envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads envFiles (".env" when none are given) into the
// environment, then parses Settings. Missing env files are not an error.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var settings Settings
	if err := ParseEnv(&settings); err != nil {
		return nil, err
	}
	if settings.SpriteSize <= 0 {
		return nil, fmt.Errorf("parse env: GAME2048_SPRITE_SIZE must be positive, got %d", settings.SpriteSize)
	}

	return &settings, nil
}
