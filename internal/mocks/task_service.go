package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskline/taskline/internal/domain"
	"github.com/taskline/taskline/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	ListTasksForFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	GetTaskFn      func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	CreateTaskFn   func(ctx context.Context, ownerID uuid.UUID, title, description string, status domain.TaskStatus) (*domain.Task, error)
	UpdateTaskFn   func(ctx context.Context, userID, taskID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)
	DeleteTaskFn   func(ctx context.Context, userID, taskID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Tasks []*domain.Task
	Task  *domain.Task
	Err   error
}

var _ service.TaskService = (*MockTaskService)(nil)

// ListTasksFor implements the service.TaskService interface
func (m *MockTaskService) ListTasksFor(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	if m.ListTasksForFn != nil {
		return m.ListTasksForFn(ctx, ownerID)
	}
	return m.Tasks, m.Err
}

// GetTask implements the service.TaskService interface
func (m *MockTaskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, userID, taskID)
	}
	return m.Task, m.Err
}

// CreateTask implements the service.TaskService interface
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, ownerID, title, description, status)
	}
	return m.Task, m.Err
}

// UpdateTask implements the service.TaskService interface
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, userID, taskID, update)
	}
	return m.Task, m.Err
}

// DeleteTask implements the service.TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, userID, taskID)
	}
	return m.Err
}
