package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board - builds a board from three rows of 'C' (computer), 'H' (human) and '.' (empty).
func Board(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	if len(rows) != entity.BoardSize {
		t.Fatalf("expected %d rows, got %d", entity.BoardSize, len(rows))
	}

	var board entity.Board
	for row, line := range rows {
		if len(line) != entity.BoardSize {
			t.Fatalf("row %d: expected %d cells, got %q", row, entity.BoardSize, line)
		}

		for col, char := range line {
			switch char {
			case 'C':
				board[row][col] = entity.Computer
			case 'H':
				board[row][col] = entity.Human
			case '.':
				board[row][col] = entity.Empty
			default:
				t.Fatalf("row %d: unknown cell %q", row, char)
			}
		}
	}

	return board
}
