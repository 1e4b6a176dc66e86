package service

import (
	"github.com/google/uuid"

	"github.com/taskline/taskline/internal/domain"
)

// TaskAction names an operation subject to ownership authorization.
type TaskAction string

// Actions guarded by TaskPolicy. Listing and creation are implicitly
// scoped to the requesting user and need no policy check.
const (
	ActionViewTask   TaskAction = "view"
	ActionUpdateTask TaskAction = "update"
	ActionDeleteTask TaskAction = "delete"
)

// TaskPolicy decides whether a user may perform an action on a task.
// The single rule is ownership: only the task's owner may view, update,
// or delete it.
type TaskPolicy struct{}

// NewTaskPolicy creates a TaskPolicy.
func NewTaskPolicy() *TaskPolicy {
	return &TaskPolicy{}
}

// CanPerform reports whether the user may perform the action on the
// task. The allow/deny decision is carried as an error value: nil means
// allowed, ErrNotOwned means denied (callers map it to 403), and a nil
// task yields ErrTaskNotFound.
func (p *TaskPolicy) CanPerform(userID uuid.UUID, _ TaskAction, task *domain.Task) error {
	if task == nil {
		return ErrTaskNotFound
	}
	if task.OwnerID != userID {
		return ErrNotOwned
	}
	return nil
}
