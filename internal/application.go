package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs one game on the process's standard input and output.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run plays one game over the given streams until it ends, fails or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	terminal := console.New(logger, in, out, conf.Game.NameWidth)
	defer terminal.Close()
	session := usecase.NewGameSession(logger, terminal, conf.Game)

	if _, err := session.Run(ctx); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	return nil
}
