package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taskline/taskline/internal/events"
)

// defaultBackoff is the base delay between delivery attempts. Attempt n
// waits n times this duration before retrying.
const defaultBackoff = time.Second

// Notifier is the background worker that consumes status-change events
// and delivers them through the configured strategy. It owns the
// consuming goroutine; callers control its lifecycle with Start and
// Stop.
type Notifier struct {
	events      <-chan events.TaskStatusChangedEvent
	registry    *Registry
	channel     string
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewNotifier creates a notifier that consumes from the given event
// channel and dispatches through the registry using the named channel.
func NewNotifier(
	eventCh <-chan events.TaskStatusChangedEvent,
	registry *Registry,
	channel string,
	maxAttempts int,
	logger *slog.Logger,
) *Notifier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		events:      eventCh,
		registry:    registry,
		channel:     channel,
		maxAttempts: maxAttempts,
		backoff:     defaultBackoff,
		logger:      logger.With(slog.String("component", "notifier")),
		done:        make(chan struct{}),
	}
}

// Start launches the consuming goroutine. Calling Start more than once
// has no effect.
func (n *Notifier) Start() {
	n.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		n.cancel = cancel
		go n.run(ctx)
	})
}

// Stop drains the remaining queued events and waits for the worker to
// exit. The event channel must be closed by its publisher before Stop
// is called. When the context expires before the drain completes, the
// worker context is canceled so in-flight backoff waits abort and each
// remaining event gets at most one delivery attempt. Stop on a notifier
// that was never started returns immediately.
func (n *Notifier) Stop(ctx context.Context) {
	n.stopOnce.Do(func() {
		if n.cancel == nil {
			return
		}
		defer n.cancel()

		select {
		case <-n.done:
		case <-ctx.Done():
			n.logger.Warn("drain deadline reached, aborting delivery backoff")
			n.cancel()
			<-n.done
		}
	})
}

func (n *Notifier) run(ctx context.Context) {
	defer close(n.done)
	n.logger.Info("notification worker started", slog.String("channel", n.channel))

	for event := range n.events {
		n.deliver(ctx, event)
	}

	n.logger.Info("notification worker stopped")
}

// deliver attempts delivery up to maxAttempts times with linear backoff
// between attempts, then drops the event with an ERROR log. Delivery
// failures never propagate to the mutation that produced the event.
func (n *Notifier) deliver(ctx context.Context, event events.TaskStatusChangedEvent) {
	strategy, err := n.registry.Resolve(n.channel)
	if err != nil {
		n.logger.ErrorContext(ctx, "dropping event, cannot resolve strategy",
			slog.String("event_id", event.ID.String()),
			slog.String("channel", n.channel),
			slog.String("error", err.Error()))
		return
	}

	var lastErr error
	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		lastErr = strategy.Deliver(ctx, event)
		if lastErr == nil {
			n.logger.InfoContext(ctx, "notification delivered",
				slog.String("event_id", event.ID.String()),
				slog.String("task_id", event.Task.ID.String()),
				slog.String("channel", n.channel),
				slog.Int("attempt", attempt))
			return
		}

		n.logger.WarnContext(ctx, "notification delivery attempt failed",
			slog.String("event_id", event.ID.String()),
			slog.String("channel", n.channel),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()))

		if attempt < n.maxAttempts {
			select {
			case <-time.After(time.Duration(attempt) * n.backoff):
			case <-ctx.Done():
				n.logger.WarnContext(ctx, "delivery aborted by shutdown",
					slog.String("event_id", event.ID.String()))
				return
			}
		}
	}

	n.logger.ErrorContext(ctx, "dropping event after exhausting delivery attempts",
		slog.String("event_id", event.ID.String()),
		slog.String("task_id", event.Task.ID.String()),
		slog.String("channel", n.channel),
		slog.Int("attempts", n.maxAttempts),
		slog.String("error", lastErr.Error()))
}
