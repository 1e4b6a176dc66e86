package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskline/taskline/internal/events"
)

type capturingMailer struct {
	from    string
	to      string
	subject string
	body    string
	err     error
}

func (m *capturingMailer) Send(_ context.Context, from, to, subject, body string) error {
	m.from = from
	m.to = to
	m.subject = subject
	m.body = body
	return m.err
}

func TestEmailStrategyDeliver(t *testing.T) {
	t.Parallel()

	mailer := &capturingMailer{}
	strategy := NewEmailStrategy(mailer, "noreply@taskline.dev", discardLogger())

	event := testEvent(t)
	require.NoError(t, strategy.Deliver(context.Background(), event))

	assert.Equal(t, "noreply@taskline.dev", mailer.from)
	assert.Equal(t, "dana@example.com", mailer.to)
	assert.Contains(t, mailer.subject, "Ship release")
	assert.Contains(t, mailer.body, "Your task status has changed.")
	assert.Contains(t, mailer.body, "Ship release")
	assert.Contains(t, mailer.body, "2 (in_progress)")
}

func TestEmailStrategyDeliverMailerError(t *testing.T) {
	t.Parallel()

	mailer := &capturingMailer{err: errors.New("smtp unavailable")}
	strategy := NewEmailStrategy(mailer, "noreply@taskline.dev", discardLogger())

	err := strategy.Deliver(context.Background(), testEvent(t))
	assert.ErrorContains(t, err, "smtp unavailable")
}

func TestEmailStrategyDeliverMissingRecipient(t *testing.T) {
	t.Parallel()

	mailer := &capturingMailer{}
	strategy := NewEmailStrategy(mailer, "noreply@taskline.dev", discardLogger())

	event := testEvent(t)
	event.Recipient = events.Recipient{UserID: event.Recipient.UserID}

	err := strategy.Deliver(context.Background(), event)
	assert.Error(t, err)
	assert.Empty(t, mailer.to)
}
