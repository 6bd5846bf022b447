package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCoordinate = errors.New("invalid board coordinate")
	ErrIllegalMove       = errors.New("invalid move")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoAvailableMoves  = errors.New("no available moves")
)
