package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/marketsync/internal/client/app"
	"github.com/iudanet/marketsync/internal/client/cli"
	"github.com/iudanet/marketsync/internal/client/iocli"
	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", notify.Describe(err))
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(""); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	cfg, err := config.LoadClient(nil)
	if err != nil {
		return err
	}

	// stdout занят выводом команд, логи идут в stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("failed to close client", "error", err)
		}
	}()

	return cli.New(a, iocli.NewStdio(), versionString()).Execute(ctx)
}

func versionString() string {
	return fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
}
