// Package service provides the game layer front ends talk to.
//
// The service package implements:
//   - Starting games from named configurations
//   - Turn processing, one command at a time
//   - Event extraction and status messages
//   - Structured turn logging
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// ConfigManager loads board configurations; *config.Manager satisfies it.
//
// Architecture:
//
// The service layer sits between the front ends (desktop window, terminal)
// and the game engine. It owns a single engine and serializes turns with a
// mutex, so a front end polling input on its own goroutine cannot interleave
// two commands.
//
// Usage:
//
//	configMgr, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameService := service.NewGameService(configMgr, service.Options{Seed: 42})
//
//	state, err := gameService.NewGame(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Apply(ctx, engine.Left)
package service
