package notification

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taskline/taskline/internal/store"
)

// stubSubscriptionStore records calls without touching a database.
type stubSubscriptionStore struct {
	subs      []*store.PushSubscription
	listErr   error
	listCalls int
}

func (s *stubSubscriptionStore) Create(context.Context, *store.PushSubscription) error {
	return nil
}

func (s *stubSubscriptionStore) GetByID(context.Context, uuid.UUID) (*store.PushSubscription, error) {
	return nil, store.ErrSubscriptionNotFound
}

func (s *stubSubscriptionStore) ListByUser(context.Context, uuid.UUID) ([]*store.PushSubscription, error) {
	s.listCalls++
	return s.subs, s.listErr
}

func (s *stubSubscriptionStore) Delete(context.Context, uuid.UUID) error {
	return nil
}

func (s *stubSubscriptionStore) WithTx(_ *sql.Tx) store.PushSubscriptionStore {
	return s
}

func TestWebPushStrategySkipsWithoutVAPIDKeys(t *testing.T) {
	t.Parallel()

	subs := &stubSubscriptionStore{}
	strategy := NewWebPushStrategy(subs, "", "", "mailto:ops@taskline.dev", discardLogger())

	err := strategy.Deliver(context.Background(), testEvent(t))
	assert.NoError(t, err)
	assert.Zero(t, subs.listCalls, "subscriptions should not be queried without keys")
}

func TestWebPushStrategyNoSubscriptions(t *testing.T) {
	t.Parallel()

	subs := &stubSubscriptionStore{}
	strategy := NewWebPushStrategy(subs, "public-key", "private-key", "mailto:ops@taskline.dev", discardLogger())

	err := strategy.Deliver(context.Background(), testEvent(t))
	assert.NoError(t, err)
	assert.Equal(t, 1, subs.listCalls)
}
