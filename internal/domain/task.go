package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrTaskIDEmpty          = errors.New("task ID cannot be empty")
	ErrTaskOwnerIDEmpty     = errors.New("task owner ID cannot be empty")
	ErrTaskTitleEmpty       = errors.New("task title cannot be empty")
	ErrTaskDescriptionEmpty = errors.New("task description cannot be empty")
	ErrTaskStatusInvalid    = errors.New("invalid task status")
)

// Task is the core entity tracked by the application. Every task belongs
// to exactly one owner for its entire lifetime; OwnerID never changes
// after creation.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user. It generates a new
// UUID for the task ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(ownerID uuid.UUID, title, description string, status TaskStatus) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.OwnerID == uuid.Nil {
		return ErrTaskOwnerIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if t.Description == "" {
		return ErrTaskDescriptionEmpty
	}

	if !t.Status.Valid() {
		return ErrTaskStatusInvalid
	}

	return nil
}

// TaskUpdate is a partial field set applied to an existing task. Nil
// fields are left untouched by the update.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// Validate checks the fields that are present.
func (u TaskUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return ErrTaskTitleEmpty
	}

	if u.Description != nil && *u.Description == "" {
		return ErrTaskDescriptionEmpty
	}

	if u.Status != nil && !u.Status.Valid() {
		return ErrTaskStatusInvalid
	}

	return nil
}

// Empty reports whether the update carries no fields at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

// Apply copies the present fields onto the task and bumps UpdatedAt.
func (u TaskUpdate) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	t.UpdatedAt = time.Now().UTC()
}
