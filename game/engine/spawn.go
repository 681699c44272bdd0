package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrNoEmptyCell is returned when a tile is spawned on a full grid
var ErrNoEmptyCell = errors.New("no empty cell to spawn into")

// IntNSource picks an integer in [0, n). *rand.Rand satisfies it.
type IntNSource interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed returns a seed drawn from the operating system's random source
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// SpawnTile places value in an empty cell chosen uniformly at random.
// With a single empty cell the tile always lands there.
func SpawnTile(g *Grid, rng IntNSource, value Tile) (Position, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Position{}, ErrNoEmptyCell
	}

	pos := empty[0]
	if len(empty) > 1 {
		pos = empty[rng.IntN(len(empty))]
	}

	g.Set(pos, value)
	return pos, nil
}
