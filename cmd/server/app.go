package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/events"
	"github.com/taskline/taskline/internal/notification"
	"github.com/taskline/taskline/internal/platform/postgres"
	"github.com/taskline/taskline/internal/service"
	"github.com/taskline/taskline/internal/service/auth"
	"github.com/taskline/taskline/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore         store.UserStore
	taskStore         store.TaskStore
	subscriptionStore store.PushSubscriptionStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	taskService      service.TaskService

	// Notification pipeline
	publisher *events.ChannelPublisher
	notifier  *notification.Notifier
}

// newApplication creates a new application instance with all
// dependencies initialized. The notifier worker is started here and
// stopped during cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.subscriptionStore = postgres.NewPostgresPushSubscriptionStore(db, logger)

	// Notification pipeline: publisher feeds the worker's queue, the
	// worker resolves the configured strategy per event.
	app.publisher = events.NewChannelPublisher(cfg.Notification.QueueSize, logger)

	registry := notification.NewRegistry()
	registry.Register(notification.ChannelEmail, notification.NewEmailStrategy(
		notification.NewLogMailer(logger),
		cfg.Notification.EmailFrom,
		logger,
	))
	registry.Register(notification.ChannelWebPush, notification.NewWebPushStrategy(
		app.subscriptionStore,
		cfg.Notification.VAPIDPublicKey,
		cfg.Notification.VAPIDPrivateKey,
		cfg.Notification.VAPIDContact,
		logger,
	))

	app.notifier = notification.NewNotifier(
		app.publisher.Events(),
		registry,
		cfg.Notification.DefaultChannel,
		cfg.Notification.MaxAttempts,
		logger,
	)
	app.notifier.Start()

	app.taskService, err = service.NewTaskService(
		db,
		app.taskStore,
		app.userStore,
		service.NewTaskPolicy(),
		app.publisher,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources. The
// publisher is closed first so the notifier can drain the remaining
// queued events before the database goes away; the drain gets a bounded
// slice of the shutdown budget.
func (app *application) cleanup() {
	if app.publisher != nil {
		app.publisher.Close()
	}
	if app.notifier != nil {
		drainCtx, cancelDrain := context.WithTimeout(context.Background(), 5*time.Second)
		app.notifier.Stop(drainCtx)
		cancelDrain()
	}

	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}

	app.logger.Info("application shutdown completed")
}
