// Package config provides configuration management for the tile-merge puzzle.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Process settings from the environment and .env files
//
// Configuration Format:
//
// Board configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board width and height
//   - The tile ceiling, the win value and the overflow policy
//   - Starting tiles, or a fixed starting layout ("2 . 4 ." per row)
//   - The undo mode (toggle or a bounded stack)
//   - Messages shown after a turn
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("mini")
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Settings:
//
// LoadSettings reads GAME2048_* variables, after loading a .env file when one
// exists, into a Settings value used by the command-line front ends.
package config
