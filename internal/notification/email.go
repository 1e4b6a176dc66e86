package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskline/taskline/internal/events"
)

// Mailer is the outbound mail boundary. Production deployments plug in
// an SMTP or provider-backed implementation; tests and local runs use
// LogMailer.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// EmailStrategy notifies task owners by email.
type EmailStrategy struct {
	mailer Mailer
	from   string
	logger *slog.Logger
}

// NewEmailStrategy creates an email delivery strategy.
func NewEmailStrategy(mailer Mailer, from string, logger *slog.Logger) *EmailStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailStrategy{
		mailer: mailer,
		from:   from,
		logger: logger.With(slog.String("component", "email_strategy")),
	}
}

// Deliver composes and sends the status-change mail to the task owner.
func (s *EmailStrategy) Deliver(ctx context.Context, event events.TaskStatusChangedEvent) error {
	if event.Recipient.Email == "" {
		return fmt.Errorf("event %s has no recipient email", event.ID)
	}

	subject := fmt.Sprintf("Task %q status update", event.Task.Title)
	body := fmt.Sprintf(
		"Your task status has changed.\nTask: %s\nNew status: %d (%s)\n",
		event.Task.Title,
		int(event.Task.Status),
		event.Task.Status,
	)

	if err := s.mailer.Send(ctx, s.from, event.Recipient.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send status change mail: %w", err)
	}

	s.logger.DebugContext(ctx, "status change mail sent",
		slog.String("event_id", event.ID.String()),
		slog.String("task_id", event.Task.ID.String()))
	return nil
}

// LogMailer writes outbound mail to the structured log instead of
// sending it. Used in local development and tests.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that logs instead of sending.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger.With(slog.String("component", "log_mailer"))}
}

// Send logs the message at INFO level and always succeeds.
func (m *LogMailer) Send(ctx context.Context, from, to, subject, body string) error {
	m.logger.InfoContext(ctx, "outbound mail",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body))
	return nil
}
