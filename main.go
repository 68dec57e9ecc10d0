package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

type flags struct {
	configPath  string
	logLevel    string
	firstPlayer string
	maxAttempts int
}

// main - is the entry point of the application. It parses flags, initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &flags{}

	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Two player tic-tac-toe in the terminal",
		Long:          "Two players take turns entering moves such as b2 (row a-c, column 1-3) until one completes a line or the board is full.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := initConfig(cmd, opts)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}

			logger := initLogger(conf)

			if err = app.RunApp(logger, conf); err != nil {
				logger.Error("app run failed", "error", err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "./config.yml", "path to the YAML config file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.firstPlayer, "first-player", "", "who moves first: random, first or second")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "invalid moves allowed per turn, 0 for unlimited")

	return cmd
}

// initialize config, flags take precedence over the file and environment.
func initConfig(cmd *cobra.Command, opts *flags) (*config.Config, error) {
	conf, err := config.Load(opts.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = opts.logLevel
	}

	if cmd.Flags().Changed("first-player") {
		conf.Game.FirstPlayer = opts.firstPlayer
	}

	if cmd.Flags().Changed("max-attempts") {
		conf.Game.MaxAttempts = opts.maxAttempts
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// initialize logger. Logs go to stderr so they never mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	options := &slog.HandlerOptions{Level: level}

	if conf.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, options))
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, options))
}
