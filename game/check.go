package game

// Outcome is the result of a finished game: the winning player's index,
// or NoPlayer for a tie.
type Outcome struct {
	Winner int
}

// IsTie reports whether the game ended with a full board and no winner.
func (o Outcome) IsTie() bool {
	return o.Winner == NoPlayer
}

// Status is the terminal check for a position. Outcome is meaningful
// only when Over is true.
type Status struct {
	Over    bool
	Outcome Outcome
}

func won(player Cell) Status {
	return Status{Over: true, Outcome: Outcome{Winner: int(player)}}
}

// Evaluate scans the board for an alignment of Win same-owner cells in
// any of the four directions, returning the first one found, then checks
// for exhaustion. Pure function of the board contents; NextPlayer is
// ignored. Recomputed fresh on every call rather than cached.
func (s *State) Evaluate() Status {
	// Vertical
	for col := 0; col < Cols; col++ {
		for row := 0; row+Win <= Rows; row++ {
			if p, ok := s.alignment(col, row, 0, 1); ok {
				return won(p)
			}
		}
	}

	// Horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col+Win <= Cols; col++ {
			if p, ok := s.alignment(col, row, 1, 0); ok {
				return won(p)
			}
		}
	}

	// Diagonal up
	for col := 0; col+Win <= Cols; col++ {
		for row := 0; row+Win <= Rows; row++ {
			if p, ok := s.alignment(col, row, 1, 1); ok {
				return won(p)
			}
		}
	}

	// Diagonal down
	for col := 0; col+Win <= Cols; col++ {
		for row := Win - 1; row < Rows; row++ {
			if p, ok := s.alignment(col, row, 1, -1); ok {
				return won(p)
			}
		}
	}

	// Tie once every column is topped out.
	for col := 0; col < Cols; col++ {
		if s.cell(col, Rows-1) == NoPlayer {
			return Status{Outcome: Outcome{Winner: NoPlayer}}
		}
	}
	return Status{Over: true, Outcome: Outcome{Winner: NoPlayer}}
}

// alignment checks the window of Win cells starting at (col, row) and
// stepping by (dc, dr) for a single owner.
func (s *State) alignment(col, row, dc, dr int) (Cell, bool) {
	first := s.cell(col, row)
	if first == NoPlayer {
		return NoPlayer, false
	}
	for i := 1; i < Win; i++ {
		if s.cell(col+i*dc, row+i*dr) != first {
			return NoPlayer, false
		}
	}
	return first, true
}
