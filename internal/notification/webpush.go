package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/taskline/taskline/internal/events"
	"github.com/taskline/taskline/internal/store"
)

// webPushTTL is how long (in seconds) the push service should retain an
// undelivered message before discarding it.
const webPushTTL = 86400

// pushPayload is the JSON body delivered to the browser service worker.
type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag,omitempty"`
}

// WebPushStrategy notifies task owners through browser push messages.
// Messages go to every subscription the owner has registered; expired
// subscriptions (HTTP 410) are pruned from the store.
type WebPushStrategy struct {
	subscriptions   store.PushSubscriptionStore
	vapidPublicKey  string
	vapidPrivateKey string
	vapidContact    string
	logger          *slog.Logger
}

// NewWebPushStrategy creates a web push delivery strategy.
func NewWebPushStrategy(
	subscriptions store.PushSubscriptionStore,
	vapidPublicKey, vapidPrivateKey, vapidContact string,
	logger *slog.Logger,
) *WebPushStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebPushStrategy{
		subscriptions:   subscriptions,
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		vapidContact:    vapidContact,
		logger:          logger.With(slog.String("component", "webpush_strategy")),
	}
}

// Deliver pushes the status-change notice to all of the recipient's
// registered subscriptions. Missing VAPID keys make delivery a logged
// no-op rather than an error, so a deployment without push configured
// does not accumulate retries.
func (s *WebPushStrategy) Deliver(ctx context.Context, event events.TaskStatusChangedEvent) error {
	if s.vapidPublicKey == "" || s.vapidPrivateKey == "" {
		s.logger.WarnContext(ctx, "VAPID keys not configured, skipping web push",
			slog.String("event_id", event.ID.String()))
		return nil
	}

	subs, err := s.subscriptions.ListByUser(ctx, event.Recipient.UserID)
	if err != nil {
		return fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	if len(subs) == 0 {
		s.logger.DebugContext(ctx, "recipient has no push subscriptions",
			slog.String("user_id", event.Recipient.UserID.String()))
		return nil
	}

	payload := pushPayload{
		Title: fmt.Sprintf("Task %q status update", event.Task.Title),
		Body: fmt.Sprintf("Your task status has changed. New status: %d (%s)",
			int(event.Task.Status), event.Task.Status),
		Tag: event.Task.ID.String(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	var firstErr error
	for _, sub := range subs {
		if err := s.sendToSubscription(ctx, sub, data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *WebPushStrategy) sendToSubscription(ctx context.Context, sub *store.PushSubscription, data []byte) error {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dhKey,
			Auth:   sub.AuthKey,
		},
	}

	resp, err := webpush.SendNotification(data, wpSub, &webpush.Options{
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		Subscriber:      s.vapidContact,
		TTL:             webPushTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to send push message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		s.logger.InfoContext(ctx, "push subscription expired, removing",
			slog.String("subscription_id", sub.ID.String()))
		if err := s.subscriptions.Delete(ctx, sub.ID); err != nil {
			s.logger.ErrorContext(ctx, "failed to delete expired push subscription",
				slog.String("subscription_id", sub.ID.String()),
				slog.String("error", err.Error()))
		}
		return nil
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}
