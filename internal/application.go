package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return runGame(ctx, logger, conf, os.Stdin, os.Stdout)
}

func runGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	terminal := console.New(logger, in, out, conf.ClearScreen)
	botService := service.NewBotService(logger)
	gameManager := usecase.NewGameManager(logger, botService, terminal, terminal, conf.ThinkDelay)

	symbol, err := terminal.ChooseSymbol(ctx)
	if err != nil {
		return stopped(log, fmt.Errorf("failed to choose symbol: %w", err))
	}

	humanFirst, err := terminal.ChooseGoFirst(ctx)
	if err != nil {
		return stopped(log, fmt.Errorf("failed to choose turn order: %w", err))
	}

	game, err := gameManager.NewGame(symbol, humanFirst)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if _, err = gameManager.Play(ctx, game); err != nil {
		return stopped(log, fmt.Errorf("failed to play game: %w", err))
	}

	return nil
}

// stopped - treats a closed input or a shutdown signal as a normal exit.
func stopped(log *slog.Logger, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		log.Info("Game stopped before the end", "reason", err)
		return nil
	}

	return err
}
