package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// possibleMoves maps the keypad numbers to board cells, row-major.
var possibleMoves = map[int]entity.Move{
	1: {Row: 0, Col: 0}, 2: {Row: 0, Col: 1}, 3: {Row: 0, Col: 2},
	4: {Row: 1, Col: 0}, 5: {Row: 1, Col: 1}, 6: {Row: 1, Col: 2},
	7: {Row: 2, Col: 0}, 8: {Row: 2, Col: 1}, 9: {Row: 2, Col: 2},
}

// ParseMove - converts a 1-9 choice into a board coordinate.
func ParseMove(input string) (entity.Move, error) {
	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, input)
	}

	move, ok := possibleMoves[number]
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: %d is out of range", apperror.ErrInvalidInput, number)
	}

	return move, nil
}

func ParseSymbol(input string) (string, error) {
	switch symbol := strings.ToUpper(strings.TrimSpace(input)); symbol {
	case entity.SymbolX, entity.SymbolO:
		return symbol, nil
	default:
		return "", fmt.Errorf("%w: symbol %q", apperror.ErrInvalidInput, input)
	}
}

func ParseYesNo(input string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%w: answer %q", apperror.ErrInvalidInput, input)
	}
}
