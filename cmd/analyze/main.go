// Command analyze prints quick, human-readable statistics about configuration
// files in the project's configs directory. For each board it plays a batch of
// seeded games with uniformly random moves and summarizes game length, the
// highest tile reached and how often the win tile appears.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/wricardo/game2048/game/config"
	"github.com/wricardo/game2048/game/engine"
)

const (
	gamesPerConfig  = 200
	maxMovesPerGame = 20000
	baseSeed        = 2048
)

// Summary aggregates the outcome of a batch of random games on one config
type Summary struct {
	Games     int
	Wins      int
	Capped    int // games stopped at maxMovesPerGame
	MinMoves  int
	MaxMoves  int
	MeanMoves float64
	// BestTiles counts games by the highest tile reached
	BestTiles map[engine.Tile]int
}

func main() {
	dir := "configs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	configs, err := config.NewManager(dir)
	if err != nil {
		fmt.Printf("Error opening configs: %v\n", err)
		os.Exit(1)
	}

	infos, err := configs.ListConfigs()
	if err != nil {
		fmt.Printf("Error listing configs: %v\n", err)
		os.Exit(1)
	}

	for _, info := range infos {
		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		cfg, err := configs.LoadConfig(info.ConfigID)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			continue
		}

		summary, err := simulate(cfg, gamesPerConfig, baseSeed)
		if err != nil {
			fmt.Printf("Error simulating: %v\n", err)
			continue
		}
		report(os.Stdout, cfg, summary)
	}
}

// simulate plays games random games on cfg, seeding game i with seed+i
func simulate(cfg *engine.GameConfig, games int, seed uint64) (*Summary, error) {
	summary := &Summary{BestTiles: make(map[engine.Tile]int)}
	total := 0

	for i := 0; i < games; i++ {
		rng := engine.NewRand(seed + uint64(i))
		eng, err := engine.NewEngine(cfg, rng)
		if err != nil {
			return nil, err
		}
		if err := eng.SpawnInitialTiles(); err != nil {
			return nil, err
		}

		won := false
		for eng.Status() != engine.GameOver && eng.MoveCount() < maxMovesPerGame {
			moves := eng.PossibleMoves()
			if len(moves) == 0 {
				break
			}
			result := eng.ResolveMove(moves[rng.IntN(len(moves))])
			if result.ReachedWin {
				won = true
			}
		}

		count := eng.MoveCount()
		if count >= maxMovesPerGame {
			summary.Capped++
		}
		if won {
			summary.Wins++
		}
		if summary.Games == 0 || count < summary.MinMoves {
			summary.MinMoves = count
		}
		if count > summary.MaxMoves {
			summary.MaxMoves = count
		}
		total += count
		summary.BestTiles[eng.Grid().MaxTile()]++
		summary.Games++
	}

	if summary.Games > 0 {
		summary.MeanMoves = float64(total) / float64(summary.Games)
	}
	return summary, nil
}

func report(w io.Writer, cfg *engine.GameConfig, s *Summary) {
	fmt.Fprintf(w, "Name: %s\n", cfg.Name)
	fmt.Fprintf(w, "Grid Size: %d x %d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "Ceiling: %d (%s), Win: %d\n", cfg.Ceiling, cfg.OverflowPolicy(), cfg.Win())
	fmt.Fprintf(w, "Games: %d, moves min/mean/max: %d/%.1f/%d\n", s.Games, s.MinMoves, s.MeanMoves, s.MaxMoves)

	tiles := make([]engine.Tile, 0, len(s.BestTiles))
	for t := range s.BestTiles {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] > tiles[j] })
	for _, t := range tiles {
		fmt.Fprintf(w, "   best tile %6d: %d games\n", t.Value(), s.BestTiles[t])
	}

	if s.Wins > 0 {
		fmt.Fprintf(w, "✅ Random play reached %d in %d of %d games\n", cfg.Win(), s.Wins, s.Games)
	} else {
		fmt.Fprintf(w, "⚠️  Random play never reached %d\n", cfg.Win())
	}
	if s.Capped > 0 {
		fmt.Fprintf(w, "⚠️  %d games hit the %d move cap\n", s.Capped, maxMovesPerGame)
	}
}
