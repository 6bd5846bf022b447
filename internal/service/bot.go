package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var centerCell = entity.Move{Row: 1, Col: 1}

type BotService interface {
	ChooseMove(board *entity.Board) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// ChooseMove - picks the computer's move. An empty board always gets the center, anything else
// is searched to full depth.
func (that *botService) ChooseMove(board *entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "ChooseMove")

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 || tictactoe.IsTerminal(board) {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	if len(availableCells) == entity.BoardSize*entity.BoardSize {
		log.Debug("opening with the center", "move", centerCell)
		return centerCell, nil
	}

	result := tictactoe.Search(*board, len(availableCells), entity.Computer)
	if !result.HasMove {
		return entity.Move{}, fmt.Errorf("search returned no move: %w", apperror.ErrNoAvailableMoves)
	}

	log.Debug("search finished", "move", result.Move, "score", result.Score, "depth", len(availableCells))

	return result.Move, nil
}
