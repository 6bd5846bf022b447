package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	WinScore  = 10
	LoseScore = -10
	TieScore  = 0
)

// WinCombos - the 8 winning lines as (row, col) pairs.
var WinCombos = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Winner - returns the player owning a full line.
// The computer is checked first, so a board where both players own a line reports the computer.
// Legal play never reaches such a board.
func Winner(board *entity.Board) (entity.Cell, bool) {
	for _, player := range [2]entity.Cell{entity.Computer, entity.Human} {
		if hasLine(board, player) {
			return player, true
		}
	}

	return entity.Empty, false
}

func hasLine(board *entity.Board, player entity.Cell) bool {
	for _, combo := range WinCombos {
		a, b, c := combo[0], combo[1], combo[2]
		if board[a[0]][a[1]] == player && board[b[0]][b[1]] == player && board[c[0]][c[1]] == player {
			return true
		}
	}

	return false
}

func IsTerminal(board *entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return board.IsFull()
}

// Evaluate - scores a board from the computer's side. Non-terminal boards score as a tie.
func Evaluate(board *entity.Board) int {
	winner, ok := Winner(board)
	if !ok {
		return TieScore
	}

	if winner == entity.Computer {
		return WinScore
	}

	return LoseScore
}

// Status - derives the game outcome from the board.
func Status(board *entity.Board) entity.Outcome {
	if winner, ok := Winner(board); ok {
		return entity.Outcome{Status: entity.StatusWon, Winner: winner}
	}

	if board.IsFull() {
		return entity.Outcome{Status: entity.StatusDraw}
	}

	return entity.Outcome{Status: entity.StatusOngoing}
}

// ApplyMove - places the player's mark on an empty cell.
func ApplyMove(board *entity.Board, move entity.Move, player entity.Cell) error {
	cell, err := board.Get(move.Row, move.Col)
	if err != nil {
		return err
	}

	if cell != entity.Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return board.Set(move.Row, move.Col, player)
}

// UndoMove - clears a cell written by ApplyMove.
func UndoMove(board *entity.Board, move entity.Move) {
	board[move.Row][move.Col] = entity.Empty
}
