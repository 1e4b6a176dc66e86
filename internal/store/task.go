package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskline/taskline/internal/domain"
)

// TaskStore defines the interface for task data persistence. It owns no
// business rules; callers mutate tasks only through the service layer so
// that status-change detection is never bypassed.
type TaskStore interface {
	// ListByOwner retrieves all tasks belonging to the given owner.
	// Returns an empty slice when the owner has no tasks; never fails
	// for a valid owner.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Create saves a new task to the store. It handles domain validation
	// internally and returns validation errors from the domain Task if
	// data is invalid. Returns ErrInvalidEntity if the owner does not
	// exist.
	Create(ctx context.Context, task *domain.Task) error

	// Update applies a partial field set to an existing task and bumps
	// its updated_at timestamp. Returns the stored task after the update.
	// Returns ErrTaskNotFound if the task does not exist, or validation
	// errors if the update carries invalid fields.
	Update(ctx context.Context, id uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)

	// Delete removes a task from the store by its ID. The operation is
	// terminal; there is no soft delete.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
