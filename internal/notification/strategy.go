package notification

import (
	"context"
	"fmt"

	"github.com/taskline/taskline/internal/events"
)

// Channel names recognized by the strategy registry. They match the
// notification.default_channel configuration values.
const (
	ChannelEmail   = "email"
	ChannelWebPush = "webpush"
)

// Strategy delivers a single status-change event to its recipient over
// one channel. Implementations must be safe for concurrent use and must
// honor the supplied context.
type Strategy interface {
	// Deliver sends the notification for the given event. A returned
	// error means the attempt failed and the caller may retry.
	Deliver(ctx context.Context, event events.TaskStatusChangedEvent) error
}

// Registry maps channel names to delivery strategies. The registry is
// populated once during startup and read-only afterwards, so no locking
// is required.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register adds a strategy under the given channel name, replacing any
// previous registration for that name.
func (r *Registry) Register(channel string, strategy Strategy) {
	r.strategies[channel] = strategy
}

// Resolve returns the strategy registered for the given channel name.
func (r *Registry) Resolve(channel string) (Strategy, error) {
	strategy, ok := r.strategies[channel]
	if !ok {
		return nil, fmt.Errorf("no notification strategy registered for channel %q", channel)
	}
	return strategy, nil
}
