package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	humanTurnBanner    = "your turn [%s]"
	computerTurnBanner = "computer's turn [%s]"
)

type botService interface {
	ChooseMove(board *entity.Board) (entity.Move, error)
}

type moveSource interface {
	PromptMove(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type display interface {
	Render(game *entity.Game, banner string)
	ShowInvalidMove()
	Announce(game *entity.Game, outcome entity.Outcome)
}

type GameManager struct {
	logger *slog.Logger

	bot        botService
	moves      moveSource
	display    display
	thinkDelay time.Duration
}

func NewGameManager(logger *slog.Logger, bot botService, moves moveSource, display display, thinkDelay time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		bot:        bot,
		moves:      moves,
		display:    display,
		thinkDelay: thinkDelay,
	}
}

// NewGame - starts a game with the human's symbol, the computer gets the other one.
func (that *GameManager) NewGame(humanSymbol string, humanFirst bool) (*entity.Game, error) {
	symbol := strings.ToUpper(strings.TrimSpace(humanSymbol))
	if symbol != entity.SymbolX && symbol != entity.SymbolO {
		return nil, fmt.Errorf("%w: symbol %q", apperror.ErrInvalidInput, humanSymbol)
	}

	game := entity.NewGame(uuid.NewString(), symbol, humanFirst)

	that.logger.Info("game created", "game_id", game.ID, "human_symbol", game.HumanSymbol, "human_first", humanFirst)

	return game, nil
}

// ComputerTakeTurn - lets the computer choose and play its move.
func (that *GameManager) ComputerTakeTurn(game *entity.Game) (entity.Move, error) {
	if err := that.confirmTurn(game, entity.Computer); err != nil {
		return entity.Move{}, err
	}

	move, err := that.bot.ChooseMove(&game.Board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = tictactoe.ApplyMove(&game.Board, move, entity.Computer); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.PassTurn()

	that.logger.Info("computer moved", "game_id", game.ID, "move", move)

	return move, nil
}

// HumanApplyMove - validates and plays the human's move. The board is left untouched on error.
func (that *GameManager) HumanApplyMove(game *entity.Game, move entity.Move) error {
	if err := that.confirmTurn(game, entity.Human); err != nil {
		return err
	}

	if err := tictactoe.ApplyMove(&game.Board, move, entity.Human); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	game.PassTurn()

	that.logger.Info("human moved", "game_id", game.ID, "move", move)

	return nil
}

func (that *GameManager) GameStatus(game *entity.Game) entity.Outcome {
	return tictactoe.Status(&game.Board)
}

// Play - runs turns until the game ends, then shows the final board and the result.
func (that *GameManager) Play(ctx context.Context, game *entity.Game) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	for outcome := that.GameStatus(game); !outcome.IsFinished(); outcome = that.GameStatus(game) {
		if err := ctx.Err(); err != nil {
			return outcome, fmt.Errorf("game interrupted: %w", err)
		}

		var err error
		if game.Turn == entity.Computer {
			err = that.playComputerTurn(ctx, game)
		} else {
			err = that.playHumanTurn(ctx, game)
		}

		if err != nil {
			return outcome, err
		}
	}

	outcome := that.GameStatus(game)

	that.display.Render(game, "")
	that.display.Announce(game, outcome)

	log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner.String())

	return outcome, nil
}

func (that *GameManager) playComputerTurn(ctx context.Context, game *entity.Game) error {
	that.display.Render(game, fmt.Sprintf(computerTurnBanner, game.ComputerSymbol))

	if _, err := that.ComputerTakeTurn(game); err != nil {
		return fmt.Errorf("failed to make computer turn: %w", err)
	}

	return that.think(ctx)
}

func (that *GameManager) playHumanTurn(ctx context.Context, game *entity.Game) error {
	for {
		that.display.Render(game, fmt.Sprintf(humanTurnBanner, game.HumanSymbol))

		move, err := that.moves.PromptMove(ctx, game)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = that.HumanApplyMove(game, move)
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.display.ShowInvalidMove()
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make human turn: %w", err)
		}

		return nil
	}
}

// think - pauses after the computer's move so the human can follow the board.
func (that *GameManager) think(ctx context.Context) error {
	if that.thinkDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.thinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("game interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (that *GameManager) confirmTurn(game *entity.Game, player entity.Cell) error {
	if that.GameStatus(game).IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}
