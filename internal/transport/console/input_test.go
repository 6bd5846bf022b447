package console

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("Keypad numbers map row-major", func(t *testing.T) {
		expected := []entity.Move{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}

		for i, input := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
			move, err := ParseMove(input)

			require.NoError(t, err, input)
			assert.Equal(t, expected[i], move, input)
		}
	})

	t.Run("Surrounding spaces are ignored", func(t *testing.T) {
		move, err := ParseMove(" 5\r")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
	})

	t.Run("Rejects out of range and non numeric input", func(t *testing.T) {
		for _, input := range []string{"0", "10", "-1", "abc", "", "5.0"} {
			_, err := ParseMove(input)

			assert.ErrorIs(t, err, apperror.ErrInvalidInput, input)
		}
	})
}

func TestParseSymbol(t *testing.T) {
	for input, expected := range map[string]string{"x": "X", "X": "X", "o": "O", " O ": "O"} {
		symbol, err := ParseSymbol(input)

		require.NoError(t, err, input)
		assert.Equal(t, expected, symbol)
	}

	_, err := ParseSymbol("0")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestParseYesNo(t *testing.T) {
	for input, expected := range map[string]bool{"y": true, "Y": true, "n": false, "N ": false} {
		first, err := ParseYesNo(input)

		require.NoError(t, err, input)
		assert.Equal(t, expected, first)
	}

	_, err := ParseYesNo("yes")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
