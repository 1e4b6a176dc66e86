package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskline/taskline/internal/domain"
)

// Recipient carries the delivery contact for the task's owner, resolved
// at publish time so consumers never re-query state that may have
// changed after the transition.
type Recipient struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// TaskStatusChangedEvent is an immutable notice that a task's status
// value changed. It is produced exactly once per update whose status
// differs from the pre-update value, and carries a snapshot of the
// post-update task.
type TaskStatusChangedEvent struct {
	// ID is a unique identifier for this event, used for log correlation.
	ID uuid.UUID

	// Task is the post-update task snapshot.
	Task domain.Task

	// Recipient identifies the owner the notification is addressed to.
	Recipient Recipient

	// OccurredAt is the timestamp when the event was created.
	OccurredAt time.Time
}

// NewTaskStatusChangedEvent creates an event snapshotting the given task
// and recipient.
func NewTaskStatusChangedEvent(task domain.Task, recipient Recipient) TaskStatusChangedEvent {
	return TaskStatusChangedEvent{
		ID:         uuid.New(),
		Task:       task,
		Recipient:  recipient,
		OccurredAt: time.Now().UTC(),
	}
}
