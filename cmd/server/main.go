package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/thalassemiacare/internal/server"
	"github.com/iudanet/thalassemiacare/internal/server/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Отсутствие секрета или пути к базе — фатальная ошибка старта
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.NewApp(ctx, cfg, logger, Version)
	if err != nil {
		logger.Error("failed to init app", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close app", slog.Any("error", err))
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("ThalassemiaCare Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
