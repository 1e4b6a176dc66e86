// Package main implements the entry point for the taskline API server,
// which manages user-owned tasks and delivers status-change
// notifications through configurable channels.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations: up, down, or status")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("taskline: %v", err)
	}
}

// run loads configuration, wires the application together, and either
// executes a migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"notification_channel", cfg.Notification.DefaultChannel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDatabase(db, appLogger)
		return runMigrations(db, migrateCmd, appLogger)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
