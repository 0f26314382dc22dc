package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-machine/internal/config"
	"github.com/rocketscienceinc/tictactoe-machine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-machine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-machine/transport/console"
	"github.com/rocketscienceinc/tictactoe-machine/transport/terminal"
)

// RunApp - runs the configured host until it quits or a signal arrives.
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

	if conf.UI == config.UITerminal {
		return runTerminal(ctx, logger, conf)
	}

	return runConsole(ctx, logger, conf, os.Stdin, os.Stdout)
}

func newSessionManager(logger *slog.Logger) *usecase.SessionManager {
	return usecase.NewSessionManager(logger, repository.NewSessionRepository())
}

func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")
	log.Info("Starting console", "boardSize", conf.BoardSize)

	server := console.New(logger, newSessionManager(logger), conf.BoardSize, out)
	if err := server.Run(ctx, in); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console stopped")

	return nil
}

func runTerminal(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("Starting terminal", "component", "app", "boardSize", conf.BoardSize)

	server := terminal.New(logger, newSessionManager(logger), conf.BoardSize, screen)
	if err = server.Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	return nil
}
