package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const BoardSize = 3

// Cell is the content of a single board square. Players are represented by their own cell value.
type Cell int8

const (
	Human    Cell = -1
	Empty    Cell = 0
	Computer Cell = 1
)

// Opponent - returns the player moving after that one. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case Computer:
		return Human
	case Human:
		return Computer
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case Computer:
		return "computer"
	case Human:
		return "human"
	default:
		return "empty"
	}
}

// Move is a (row, col) coordinate on the board.
type Move struct {
	Row int
	Col int
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the fixed 3x3 grid, indexed [row][col].
type Board [BoardSize][BoardSize]Cell

// NewBoard - returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Get(row, col int) (Cell, error) {
	if !(Move{Row: row, Col: col}).InBounds() {
		return Empty, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	return that[row][col], nil
}

func (that *Board) Set(row, col int, cell Cell) error {
	if !(Move{Row: row, Col: col}).InBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	that[row][col] = cell

	return nil
}

// EmptyCells - lists the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)
	for row := range that {
		for col, cell := range that[row] {
			if cell == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for row := range that {
		for _, cell := range that[row] {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}
