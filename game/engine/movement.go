package engine

// Slide resolves a direction against g without touching it.
// Tiles slide toward the destination side; equal neighbours merge once per move.
// The returned grid is new even when nothing moved.
func Slide(g *Grid, dir Command, ceiling int, policy OverflowPolicy) (*Grid, []TileMove, []MergeEvent) {
	next := NewGrid(g.Width(), g.Height())
	var moves []TileMove
	var merges []MergeEvent

	for _, line := range lines(dir, g.Width(), g.Height()) {
		write := 0
		mergeable := false
		var lastSrc Position

		for _, src := range line {
			t, _ := g.At(src)
			if t.IsEmpty() {
				continue
			}

			if mergeable {
				dst := line[write-1]
				if prev, _ := next.At(dst); prev == t {
					if merged, ok := NextValue(t, ceiling, policy); ok {
						next.Set(dst, merged)
						moves = append(moves, TileMove{From: src, To: dst, Value: t})
						merges = append(merges, MergeEvent{
							Sources: [2]Position{lastSrc, src},
							Into:    dst,
							From:    t,
							Value:   merged,
						})
						// A merged tile settles; the next tile lands beside it
						mergeable = false
						continue
					}
				}
			}

			dst := line[write]
			next.Set(dst, t)
			if src != dst {
				moves = append(moves, TileMove{From: src, To: dst, Value: t})
			}
			lastSrc = src
			write++
			mergeable = true
		}
	}

	return next, moves, merges
}

// CanSlide reports whether dir would change g
func CanSlide(g *Grid, dir Command, ceiling int, policy OverflowPolicy) bool {
	for _, line := range lines(dir, g.Width(), g.Height()) {
		seenEmpty := false
		var prev Tile
		for _, p := range line {
			t, _ := g.At(p)
			if t.IsEmpty() {
				seenEmpty = true
				continue
			}
			// A tile behind a gap can slide into it
			if seenEmpty {
				return true
			}
			if prev == t {
				if _, ok := NextValue(t, ceiling, policy); ok {
					return true
				}
			}
			prev = t
		}
	}
	return false
}

// HasMoves reports whether any direction can change g
func HasMoves(g *Grid, ceiling int, policy OverflowPolicy) bool {
	for _, dir := range Directions {
		if CanSlide(g, dir, ceiling, policy) {
			return true
		}
	}
	return false
}
