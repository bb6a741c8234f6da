package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/thalassemiacare/internal/client/api"
	"github.com/iudanet/thalassemiacare/internal/client/cli"
	"github.com/iudanet/thalassemiacare/internal/client/iocli"
	"github.com/iudanet/thalassemiacare/internal/client/session"
	"github.com/iudanet/thalassemiacare/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:3000", "Server URL")
	dbPath := flag.String("db", "thalcare-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент и сервис сессии
	apiClient := api.NewClient(*serverURL)
	sessionService := session.NewService(apiClient, boltStorage)

	// Выполняем команду
	c := cli.New(iocli.NewStdio(), sessionService)
	c.Run(ctx, command)
}

func printVersion() {
	fmt.Printf("ThalassemiaCare Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
