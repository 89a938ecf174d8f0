package main

import (
	"fmt"
	"os"

	"github.com/cesargomez89/musicshelf/internal/cli"
	"github.com/cesargomez89/musicshelf/internal/config"
	"github.com/cesargomez89/musicshelf/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	a := cli.New(cfg, appLogger, os.Stdout)
	defer a.Close()

	if err := a.Execute(os.Args[1:]); err != nil {
		appLogger.Error("Command failed", "error", err)
		return 1
	}
	return 0
}
