package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	boardBorder   = "---------------"
	clearSequence = "\033[H\033[2J"

	symbolPrompt = "Choose X or O: "
	firstPrompt  = "Do you want to start first? (Y/N): "
	movePrompt   = "choose your move (1-9): "

	invalidInputMessage = "invalid input, please choose a number between 1 and 9."
	invalidMoveMessage  = "invalid move, try again."
)

// Console talks to the human through a line-oriented reader and a writer.
type Console struct {
	logger *slog.Logger

	in    *bufio.Scanner
	out   io.Writer
	clear bool

	notice string
}

// New - creates a console. The screen is only cleared when clearScreen is set and out is a terminal.
func New(logger *slog.Logger, in io.Reader, out io.Writer, clearScreen bool) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
		clear:  clearScreen && isTerminal(out),
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// ChooseSymbol - asks for X or O until one is given.
func (that *Console) ChooseSymbol(ctx context.Context) (string, error) {
	that.clearScreen()

	for {
		line, err := that.readLine(ctx, symbolPrompt)
		if err != nil {
			return "", err
		}

		symbol, err := ParseSymbol(line)
		if err == nil {
			return symbol, nil
		}
	}
}

// ChooseGoFirst - asks whether the human starts until Y or N is given.
func (that *Console) ChooseGoFirst(ctx context.Context) (bool, error) {
	that.clearScreen()

	for {
		line, err := that.readLine(ctx, firstPrompt)
		if err != nil {
			return false, err
		}

		first, err := ParseYesNo(line)
		if err == nil {
			return first, nil
		}
	}
}

// PromptMove - reads a 1-9 choice. Whether the cell is free is checked by the caller.
func (that *Console) PromptMove(ctx context.Context, game *entity.Game) (entity.Move, error) {
	for {
		line, err := that.readLine(ctx, movePrompt)
		if err != nil {
			return entity.Move{}, err
		}

		move, err := ParseMove(line)
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.logger.Debug("rejected move input", "game_id", game.ID, "error", err)
			that.println(invalidInputMessage)
			continue
		}

		return move, err
	}
}

// Render - draws the board under an optional banner, followed by any pending notice.
func (that *Console) Render(game *entity.Game, banner string) {
	that.clearScreen()

	if banner != "" {
		that.println(banner)
	}

	var sb strings.Builder
	sb.WriteString("\n" + boardBorder + "\n")
	for _, row := range game.Board {
		for _, cell := range row {
			sb.WriteString("| " + game.Symbol(cell) + " |")
		}
		sb.WriteString("\n" + boardBorder + "\n")
	}
	that.print(sb.String())

	if that.notice != "" {
		that.println(that.notice)
		that.notice = ""
	}
}

// ShowInvalidMove - queues the message so it survives the next screen clear.
func (that *Console) ShowInvalidMove() {
	that.notice = invalidMoveMessage
}

func (that *Console) Announce(_ *entity.Game, outcome entity.Outcome) {
	switch {
	case outcome.IsWonBy(entity.Human):
		that.println("YOU WIN!")
	case outcome.IsWonBy(entity.Computer):
		that.println("YOU LOSE!")
	default:
		that.println("DRAW!")
	}
}

func (that *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("input interrupted: %w", err)
	}

	that.print(prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("failed to read input: %w", io.EOF)
	}

	return that.in.Text(), nil
}

func (that *Console) clearScreen() {
	if that.clear {
		that.print(clearSequence)
	}
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}
