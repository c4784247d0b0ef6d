package game

import (
	"errors"
	"fmt"
)

// Board dimensions and the alignment length needed to win.
const (
	Rows = 6
	Cols = 7
	Win  = 4
)

// NoPlayer marks a cell with no owner or an outcome with no winner.
const NoPlayer = -1

// Cell holds the owning player's index, or NoPlayer when empty.
type Cell int8

// Action is a player's intended drop location. The acting player is
// implicit: always the state's NextPlayer at the time of application.
type Action struct {
	Column int
}

// State is a connect-four position: the board plus the player to move.
// The board is column-major, column c row r (0 = bottom) at c*Rows+r.
// Within a column the occupied cells always form a contiguous bottom-up
// prefix; Apply is the only mutator and preserves that.
type State struct {
	Board      []Cell
	NextPlayer int
}

// NewGame returns an empty board with player 0 to move.
func NewGame() *State {
	board := make([]Cell, Rows*Cols)
	for i := range board {
		board[i] = NoPlayer
	}
	return &State{Board: board, NextPlayer: 0}
}

// Clone deep-copies the state so playouts can mutate their own copy.
func (s *State) Clone() *State {
	board := make([]Cell, len(s.Board))
	copy(board, s.Board)
	return &State{Board: board, NextPlayer: s.NextPlayer}
}

func (s *State) cell(col, row int) Cell {
	return s.Board[col*Rows+row]
}

// IsLegal reports whether the action's column is on the board and still
// has room at the top.
func (s *State) IsLegal(action Action) bool {
	if action.Column < 0 || action.Column >= Cols {
		return false
	}
	return s.cell(action.Column, Rows-1) == NoPlayer
}

// LegalMoves returns every playable column in ascending order.
func (s *State) LegalMoves() []Action {
	moves := make([]Action, 0, Cols)
	for col := 0; col < Cols; col++ {
		if s.cell(col, Rows-1) == NoPlayer {
			moves = append(moves, Action{Column: col})
		}
	}
	return moves
}

var (
	// ErrInvalidColumn is returned for a column index outside [0, Cols).
	ErrInvalidColumn = errors.New("column out of range")
	// ErrColumnFull is returned for a valid column with no empty cell.
	ErrColumnFull = errors.New("column full")
)

// Apply drops the mover's piece into the lowest empty row of the chosen
// column, toggles the turn and returns a fresh terminal check. The mover
// is NextPlayer before the toggle. On error the state is untouched.
func (s *State) Apply(action Action) (Status, error) {
	if action.Column < 0 || action.Column >= Cols {
		return Status{}, fmt.Errorf("%w: %d", ErrInvalidColumn, action.Column)
	}

	placed := false
	for row := 0; row < Rows; row++ {
		i := action.Column*Rows + row
		if s.Board[i] == NoPlayer {
			s.Board[i] = Cell(s.NextPlayer)
			placed = true
			break
		}
	}
	if !placed {
		return Status{}, fmt.Errorf("%w: %d", ErrColumnFull, action.Column)
	}

	s.NextPlayer = 1 - s.NextPlayer
	return s.Evaluate(), nil
}
