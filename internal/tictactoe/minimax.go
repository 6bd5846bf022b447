package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// SearchResult is the outcome of a minimax search.
// HasMove is false when the searched board was terminal or the depth budget was zero, in which case only Score is meaningful.
type SearchResult struct {
	Move    entity.Move
	HasMove bool
	Score   int
}

// Search - finds the best move for player with a full minimax search limited to depth plies.
// The computer maximizes the score and the human minimizes it; among equal scores the first
// move in row-major order wins. The board is copied, the caller's value is never modified.
func Search(board entity.Board, depth int, player entity.Cell) SearchResult {
	return search(&board, depth, player)
}

func search(board *entity.Board, depth int, player entity.Cell) SearchResult {
	if depth == 0 || IsTerminal(board) {
		return SearchResult{Score: Evaluate(board)}
	}

	best := SearchResult{Score: initialScore(player)}
	for _, move := range board.EmptyCells() {
		child := withMove(board, move, player, func() SearchResult {
			return search(board, depth-1, player.Opponent())
		})

		if improves(player, child.Score, best.Score) {
			best = SearchResult{Move: move, HasMove: true, Score: child.Score}
		}
	}

	return best
}

// withMove - plays move for the duration of fn. The cell is restored on every exit path.
func withMove(board *entity.Board, move entity.Move, player entity.Cell, fn func() SearchResult) SearchResult {
	board[move.Row][move.Col] = player
	defer UndoMove(board, move)

	return fn()
}

func initialScore(player entity.Cell) int {
	if player == entity.Computer {
		return math.MinInt
	}
	return math.MaxInt
}

func improves(player entity.Cell, score, best int) bool {
	if player == entity.Computer {
		return score > best
	}
	return score < best
}
