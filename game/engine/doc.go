// Package engine provides the core rules of the tile-merge puzzle.
//
// The engine package implements:
//   - A bounds-checked grid of power-of-two tiles
//   - Directional move resolution (slide and merge)
//   - Uniform random spawning from an injectable source
//   - Undo history in toggle or bounded stack mode
//   - Win and game-over detection
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Grid holds the board, MoveResult describes the
// outcome of a single command, and GameConfig defines the board and rules
// loaded from JSON files.
//
// Usage:
//
//	config, err := engine.LoadGameConfig("configs/classic.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config, engine.NewRand(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := gameEngine.SpawnInitialTiles(); err != nil {
//		log.Fatal(err)
//	}
//
//	result := gameEngine.ResolveMove(engine.Left)
//	fmt.Println(result.Grid)
//
// Game Rules:
//
// Each move slides every tile as far as it can toward one side of the board.
// Two equal tiles that meet merge into one tile of double value, and a merged
// tile does not merge again in the same move. When the board changed a new 2
// appears in a random empty cell. A game is won once a tile reaches the win
// value and is over when no direction changes the board.
package engine
