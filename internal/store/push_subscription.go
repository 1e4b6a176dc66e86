package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a browser push endpoint registered by a user.
// Endpoint and keys follow the Web Push protocol.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Endpoint  string    `json:"endpoint"`
	P256dhKey string    `json:"p256dh_key"`
	AuthKey   string    `json:"auth_key"`
	CreatedAt time.Time `json:"created_at"`
}

// PushSubscriptionStore defines the interface for push subscription persistence.
type PushSubscriptionStore interface {
	// Create saves a new subscription.
	Create(ctx context.Context, sub *PushSubscription) error

	// GetByID retrieves a single subscription.
	// Returns ErrSubscriptionNotFound if the subscription does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*PushSubscription, error)

	// ListByUser retrieves all subscriptions registered by the given user.
	// Returns an empty slice when the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PushSubscription, error)

	// Delete removes a subscription, typically after the push service
	// reports it expired.
	// Returns ErrSubscriptionNotFound if the subscription does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PushSubscriptionStore bound to the transaction.
	WithTx(tx *sql.Tx) PushSubscriptionStore
}
