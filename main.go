package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/tictactoe-machine/internal"
	"github.com/rocketscienceinc/tictactoe-machine/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "./config.yml", "path to the config file")
	flag.Parse()

	// .env is optional, variables may already be set
	_ = godotenv.Load()

	conf := config.MustLoad(*configPath)

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)

	switch {
	case conf.LogFile != "":
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeFn = func() { _ = file.Close() }
	case conf.UI == config.UITerminal:
		// the screen owns the tty
		out = io.Discard
	}

	options := &slog.HandlerOptions{Level: conf.SlogLevel()}

	if conf.LogFormat == config.FormatText {
		return slog.New(slog.NewTextHandler(out, options)), closeFn
	}

	return slog.New(slog.NewJSONHandler(out, options)), closeFn
}
