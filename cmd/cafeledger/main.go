package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cafeledger/cafe_ledger_app/internal/cli"
	"github.com/cafeledger/cafe_ledger_app/internal/core/services"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/cafeledger/cafe_ledger_app/internal/repositories/database/pgsql"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
	"github.com/cafeledger/cafe_ledger_app/pkg/database"
)

func main() {
	// The CLI shares a terminal with its menus, so logs go to a side channel
	// on stderr rather than stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := middleware.ContextWithLogger(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	// A fresh install may be CLI-only, so the schema has to be applied
	// here too, not just by the API server.
	if err := database.RunMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos)

	if err := services.Bootstrap(ctx, cfg, container); err != nil {
		logger.Error("Bootstrap failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := cli.New(container, cfg, logger)
	if err := app.Run(ctx); err != nil {
		logger.Error("CLI exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
