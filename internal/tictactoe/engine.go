// Package tictactoe implements the turn and win-detection engine for a
// two-player 3x3 game. It has no UI dependency.
package tictactoe

import "errors"

var (
	ErrCellOccupied = errors.New("tictactoe: cell occupied")
	ErrOutOfRange   = errors.New("tictactoe: cell out of range")
	ErrRoundOver    = errors.New("tictactoe: round over")
)

// Mark is the content of a cell and also identifies a player.
type Mark uint8

const (
	Empty Mark = iota
	Cross
	Nought
)

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing symbol. Empty has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case Cross:
		return Nought
	case Nought:
		return Cross
	default:
		return Empty
	}
}

type Status uint8

const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

const Size = 3

// lines holds the eight winning triples as (row, col) pairs.
var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Engine holds one board plus the running score. The zero value is not
// usable; call New.
type Engine struct {
	board   [Size][Size]Mark
	first   Mark
	turn    Mark
	status  Status
	winner  Mark
	crosses int
	noughts int
}

// New returns an engine in progress where first moves first. Anything other
// than Nought starts with Cross.
func New(first Mark) *Engine {
	if first != Nought {
		first = Cross
	}
	return &Engine{first: first, turn: first}
}

// Place marks the cell at index (row-major, 0..8) for the player on turn.
func (e *Engine) Place(index int) (Status, error) {
	if index < 0 || index >= Size*Size {
		return e.status, ErrOutOfRange
	}
	return e.PlaceAt(index/Size, index%Size)
}

// PlaceAt marks the cell at row, col. Rejected placements leave every field
// untouched.
func (e *Engine) PlaceAt(row, col int) (Status, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return e.status, ErrOutOfRange
	}
	if e.status != InProgress {
		return e.status, ErrRoundOver
	}
	if e.board[row][col] != Empty {
		return e.status, ErrCellOccupied
	}

	e.board[row][col] = e.turn
	e.turn = e.turn.Other()

	if m := e.lineOwner(); m != Empty {
		e.status, e.winner = Won, m
		if m == Cross {
			e.crosses++
		} else {
			e.noughts++
		}
		return e.status, nil
	}
	if e.full() {
		e.status = Draw
	}
	return e.status, nil
}

// Reset clears the board for a new round. Scores survive.
func (e *Engine) Reset() {
	e.board = [Size][Size]Mark{}
	e.turn = e.first
	e.status = InProgress
	e.winner = Empty
}

func (e *Engine) lineOwner() Mark {
	for _, line := range lines {
		m := e.board[line[0][0]][line[0][1]]
		if m == Empty {
			continue
		}
		if e.board[line[1][0]][line[1][1]] == m && e.board[line[2][0]][line[2][1]] == m {
			return m
		}
	}
	return Empty
}

func (e *Engine) full() bool {
	for r := range e.board {
		for c := range e.board[r] {
			if e.board[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

func (e *Engine) Board() [Size][Size]Mark { return e.board }

func (e *Engine) Cell(row, col int) Mark {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Empty
	}
	return e.board[row][col]
}

func (e *Engine) Turn() Mark      { return e.turn }
func (e *Engine) FirstTurn() Mark { return e.first }
func (e *Engine) Status() Status  { return e.status }

// Winner is Empty unless the status is Won.
func (e *Engine) Winner() Mark { return e.winner }

// Score returns the number of rounds won by m.
func (e *Engine) Score(m Mark) int {
	switch m {
	case Cross:
		return e.crosses
	case Nought:
		return e.noughts
	default:
		return 0
	}
}
