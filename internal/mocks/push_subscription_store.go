package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/taskline/taskline/internal/store"
)

// MockPushSubscriptionStore implements store.PushSubscriptionStore for testing
type MockPushSubscriptionStore struct {
	CreateFn     func(ctx context.Context, sub *store.PushSubscription) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*store.PushSubscription, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*store.PushSubscription, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Subscriptions []*store.PushSubscription
	Err           error
}

// Create implements the PushSubscriptionStore interface
func (m *MockPushSubscriptionStore) Create(ctx context.Context, sub *store.PushSubscription) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, sub)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Subscriptions = append(m.Subscriptions, sub)
	return nil
}

// GetByID implements the PushSubscriptionStore interface
func (m *MockPushSubscriptionStore) GetByID(ctx context.Context, id uuid.UUID) (*store.PushSubscription, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	for _, sub := range m.Subscriptions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, store.ErrSubscriptionNotFound
}

// ListByUser implements the PushSubscriptionStore interface
func (m *MockPushSubscriptionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*store.PushSubscription, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	out := []*store.PushSubscription{}
	for _, sub := range m.Subscriptions {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	return out, nil
}

// Delete implements the PushSubscriptionStore interface
func (m *MockPushSubscriptionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	for i, sub := range m.Subscriptions {
		if sub.ID == id {
			m.Subscriptions = append(m.Subscriptions[:i], m.Subscriptions[i+1:]...)
			return nil
		}
	}
	return store.ErrSubscriptionNotFound
}

// WithTx implements the PushSubscriptionStore interface
func (m *MockPushSubscriptionStore) WithTx(tx *sql.Tx) store.PushSubscriptionStore {
	return m
}
