package engine

// history keeps the boards Undo can return to.
//
// In UndoToggle mode there is exactly one slot. It starts as a copy of the
// starting board, and undo swaps it with the current board, so undoing twice
// returns to where the player was.
//
// In UndoStack mode up to depth boards are kept and each undo pops one.
type history struct {
	mode   UndoMode
	depth  int
	boards []*Grid
}

func newHistory(mode UndoMode, depth int) *history {
	if mode == UndoToggle || depth < 1 {
		depth = 1
	}
	return &history{mode: mode, depth: depth}
}

// reset discards every stored board
func (h *history) reset(start *Grid) {
	h.boards = h.boards[:0]
	if h.mode == UndoToggle {
		h.boards = append(h.boards, start.Clone())
	}
}

// record stores the board as it was before a changing move
func (h *history) record(prev *Grid) {
	if h.mode == UndoToggle {
		h.boards = append(h.boards[:0], prev.Clone())
		return
	}

	h.boards = append(h.boards, prev.Clone())
	if len(h.boards) > h.depth {
		h.boards = append(h.boards[:0], h.boards[len(h.boards)-h.depth:]...)
	}
}

// undo returns the board to restore. ok is false when nothing would change.
func (h *history) undo(current *Grid) (*Grid, bool) {
	if len(h.boards) == 0 {
		return current, false
	}

	last := len(h.boards) - 1
	prev := h.boards[last]

	if h.mode == UndoToggle {
		if prev.Equal(current) {
			return current, false
		}
		h.boards[last] = current.Clone()
		return prev, true
	}

	h.boards = h.boards[:last]
	return prev, true
}

// available counts how many undo steps would change the board
func (h *history) available(current *Grid) int {
	if h.mode == UndoToggle {
		if len(h.boards) == 1 && !h.boards[0].Equal(current) {
			return 1
		}
		return 0
	}
	return len(h.boards)
}
