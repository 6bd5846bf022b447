package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	SymbolX = "X"
	SymbolO = "O"
)

// Outcome is derived from a board and never stored. Winner is only set when Status is StatusWon.
type Outcome struct {
	Status string
	Winner Cell
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusOngoing
}

func (that Outcome) IsWonBy(player Cell) bool {
	return that.Status == StatusWon && that.Winner == player
}

// Game holds one session between the human and the computer.
type Game struct {
	ID             string
	Board          Board
	Turn           Cell
	HumanSymbol    string
	ComputerSymbol string
}

func NewGame(id, humanSymbol string, humanFirst bool) *Game {
	turn := Computer
	if humanFirst {
		turn = Human
	}

	return &Game{
		ID:             id,
		Board:          *NewBoard(),
		Turn:           turn,
		HumanSymbol:    humanSymbol,
		ComputerSymbol: OtherSymbol(humanSymbol),
	}
}

// Symbol - returns the symbol drawn for a cell, a blank space for an empty one.
func (that *Game) Symbol(cell Cell) string {
	switch cell {
	case Human:
		return that.HumanSymbol
	case Computer:
		return that.ComputerSymbol
	default:
		return " "
	}
}

func (that *Game) PassTurn() {
	that.Turn = that.Turn.Opponent()
}

func OtherSymbol(symbol string) string {
	if symbol == SymbolX {
		return SymbolO
	}
	return SymbolX
}
