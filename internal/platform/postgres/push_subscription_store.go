package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taskline/taskline/internal/platform/logger"
	"github.com/taskline/taskline/internal/store"
)

// PostgresPushSubscriptionStore implements store.PushSubscriptionStore
// using a PostgreSQL database.
type PostgresPushSubscriptionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPushSubscriptionStore creates a new PostgreSQL
// implementation of the PushSubscriptionStore interface.
func NewPostgresPushSubscriptionStore(
	db store.DBTX,
	logger *slog.Logger,
) *PostgresPushSubscriptionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPushSubscriptionStore{
		db:     db,
		logger: logger.With(slog.String("component", "push_subscription_store")),
	}
}

// Ensure the interface is implemented
var _ store.PushSubscriptionStore = (*PostgresPushSubscriptionStore)(nil)

// WithTx implements store.PushSubscriptionStore.WithTx
func (s *PostgresPushSubscriptionStore) WithTx(tx *sql.Tx) store.PushSubscriptionStore {
	return &PostgresPushSubscriptionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PushSubscriptionStore.Create
// Returns store.ErrInvalidEntity if the user does not exist.
func (s *PostgresPushSubscriptionStore) Create(
	ctx context.Context,
	sub *store.PushSubscription,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh_key, auth_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.UserID,
		sub.Endpoint,
		sub.P256dhKey,
		sub.AuthKey,
		sub.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolationCode:
				return fmt.Errorf("%w: user with ID %s not found",
					store.ErrInvalidEntity, sub.UserID)
			case pgUniqueViolationCode:
				return fmt.Errorf("%w: subscription for this endpoint already exists",
					store.ErrDuplicate)
			}
		}

		log.Error("failed to create push subscription",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()))
		return err
	}

	log.Info("push subscription created",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("user_id", sub.UserID.String()))
	return nil
}

// GetByID implements store.PushSubscriptionStore.GetByID
// Returns store.ErrSubscriptionNotFound if the subscription does not exist.
func (s *PostgresPushSubscriptionStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*store.PushSubscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, endpoint, p256dh_key, auth_key, created_at
		FROM push_subscriptions
		WHERE id = $1
	`

	var sub store.PushSubscription
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.Endpoint,
		&sub.P256dhKey,
		&sub.AuthKey,
		&sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSubscriptionNotFound
		}
		log.Error("failed to get push subscription",
			slog.String("error", err.Error()),
			slog.String("subscription_id", id.String()))
		return nil, err
	}

	return &sub, nil
}

// ListByUser implements store.PushSubscriptionStore.ListByUser
func (s *PostgresPushSubscriptionStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*store.PushSubscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, endpoint, p256dh_key, auth_key, created_at
		FROM push_subscriptions
		WHERE user_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query push subscriptions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var subs []*store.PushSubscription
	for rows.Next() {
		var sub store.PushSubscription
		err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.Endpoint,
			&sub.P256dhKey,
			&sub.AuthKey,
			&sub.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan push subscription row",
				slog.String("error", err.Error()))
			return nil, err
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if subs == nil {
		subs = []*store.PushSubscription{}
	}

	return subs, nil
}

// Delete implements store.PushSubscriptionStore.Delete
// Returns store.ErrSubscriptionNotFound if the subscription does not exist.
func (s *PostgresPushSubscriptionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM push_subscriptions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete push subscription",
			slog.String("error", err.Error()),
			slog.String("subscription_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return store.ErrSubscriptionNotFound
	}

	log.Info("push subscription deleted",
		slog.String("subscription_id", id.String()))
	return nil
}
