package engine

import (
	"math/bits"
	"strconv"
)

// Tile is the content of one grid cell: Empty or a power of two
type Tile int

// Empty marks a cell with no tile
const Empty Tile = 0

// IsEmpty reports whether the cell holds no tile
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Value returns the numeric value, 0 for Empty
func (t Tile) Value() int {
	return int(t)
}

// Rank returns log2 of the value (2 -> 1, 4 -> 2, ...), 0 for Empty.
// Sprite sheets and colour tables are indexed by rank.
func (t Tile) Rank() int {
	if t <= Empty {
		return 0
	}
	return bits.TrailingZeros(uint(t))
}

// String renders the tile for text front ends
func (t Tile) String() string {
	if t.IsEmpty() {
		return "."
	}
	return strconv.Itoa(int(t))
}

// IsPowerOfTwo reports whether v is a power of two of at least 2
func IsPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// ValidTile reports whether t may appear on a board with the given limit
func ValidTile(t Tile, limit int) bool {
	return t.IsEmpty() || (IsPowerOfTwo(int(t)) && int(t) <= limit)
}

// NextValue returns the tile produced by merging two tiles of value t.
// It returns false when t may not merge: Empty, or at the ceiling under OverflowClamp,
// or at MaxTileValue under OverflowExtend.
func NextValue(t Tile, ceiling int, policy OverflowPolicy) (Tile, bool) {
	if t.IsEmpty() {
		return Empty, false
	}

	limit := ceiling
	if policy == OverflowExtend {
		limit = MaxTileValue
	}

	// Compare before doubling; 2^30 * 2 does not fit a 32-bit int
	if int(t) > limit/2 {
		return t, false
	}
	return t * 2, true
}
