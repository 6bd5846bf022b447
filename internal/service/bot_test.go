package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_ChooseMove(t *testing.T) {
	t.Run("Takes the center on an empty board", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Logger)

		// Given: an empty board
		board := entity.NewBoard()

		// When: the bot chooses its move
		move, err := bot.ChooseMove(board)

		// Then: it plays the center without changing the board
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, entity.NewBoard(), board)
	})

	t.Run("Completes a winning row", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Logger)

		// Given: the computer has two in the top row
		board := suite.Board(t,
			"CC.",
			"HH.",
			"...",
		)
		before := board

		// When: the bot chooses its move
		move, err := bot.ChooseMove(&board)

		// Then: it wins at (0,2) and leaves the board to the caller
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
		assert.Equal(t, before, board)
	})

	t.Run("Answers a corner opening with the center", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Logger)

		// Given: the human opened in a corner
		board := suite.Board(t,
			"H..",
			"...",
			"...",
		)

		// When: the bot chooses its move
		move, err := bot.ChooseMove(&board)

		// Then: the center is the only move that does not lose
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Logger)

		// Given: a board the human has already won
		board := suite.Board(t,
			"HHH",
			"CC.",
			"...",
		)

		// When: the bot is asked to move
		_, err := bot.ChooseMove(&board)

		// Then: ErrNoAvailableMoves is returned
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Error on full board", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Logger)

		board := suite.Board(t,
			"CHC",
			"CHH",
			"HCC",
		)

		_, err := bot.ChooseMove(&board)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}
