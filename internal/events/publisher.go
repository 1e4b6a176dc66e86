package events

import (
	"log/slog"
	"sync"
)

// Publisher accepts status-change events from the mutation path.
// Implementations must never block the caller: the mutating request
// returns without waiting for delivery.
type Publisher interface {
	// Publish hands the event to the queue. A full queue drops the
	// event; best-effort delivery permits this and the mutation must
	// not fail because of it.
	Publish(event TaskStatusChangedEvent)
}

// ChannelPublisher is a bounded in-process queue connecting the task
// service to the notifier worker. It owns the channel end to end:
// Publish feeds it, Events exposes the read side to exactly one
// consumer, and Close ends the stream so the consumer can drain.
type ChannelPublisher struct {
	ch        chan TaskStatusChangedEvent
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
	logger    *slog.Logger
}

// NewChannelPublisher creates a publisher with the given queue capacity.
func NewChannelPublisher(queueSize int, logger *slog.Logger) *ChannelPublisher {
	if queueSize <= 0 {
		queueSize = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ChannelPublisher{
		ch:     make(chan TaskStatusChangedEvent, queueSize),
		logger: logger.With("component", "change_publisher"),
	}
}

// Ensure ChannelPublisher implements Publisher
var _ Publisher = (*ChannelPublisher)(nil)

// Publish implements Publisher. It never blocks: when the buffer is
// full or the publisher is closed the event is dropped with a warning.
func (p *ChannelPublisher) Publish(event TaskStatusChangedEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("publisher closed, dropping event",
			"event_id", event.ID,
			"task_id", event.Task.ID)
		return
	}

	select {
	case p.ch <- event:
		p.logger.Debug("event enqueued",
			"event_id", event.ID,
			"task_id", event.Task.ID,
			"status", event.Task.Status.String())
	default:
		p.logger.Warn("event queue full, dropping event",
			"event_id", event.ID,
			"task_id", event.Task.ID)
	}
}

// Events returns the read side of the queue. Exactly one consumer
// should range over it.
func (p *ChannelPublisher) Events() <-chan TaskStatusChangedEvent {
	return p.ch
}

// Close stops intake and closes the channel, letting the consumer drain
// buffered events and exit. Publish calls after Close drop their events.
func (p *ChannelPublisher) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.ch)
	})
}
