package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskline/taskline/internal/domain"
	"github.com/taskline/taskline/internal/events"
	"github.com/taskline/taskline/internal/store"
)

// TaskService provides task management operations scoped to the
// requesting user. Mutations that change a task's status emit a
// TaskStatusChangedEvent through the publisher; delivery is
// asynchronous and never blocks or fails the mutation.
type TaskService interface {
	// ListTasksFor retrieves all tasks owned by the given user, newest
	// first.
	ListTasksFor(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// GetTask retrieves a single task. Returns ErrTaskNotFound if it does
	// not exist and ErrNotOwned if the requester is not its owner.
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// CreateTask creates a new task owned by the given user.
	CreateTask(ctx context.Context, ownerID uuid.UUID, title, description string, status domain.TaskStatus) (*domain.Task, error)

	// UpdateTask applies a partial update to a task the user owns and
	// returns the stored task as it reads after the update. When the
	// update carries a status different from the task's current status,
	// a status-change event is published after the update commits.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)

	// DeleteTask removes a task the user owns.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	db        *sql.DB
	taskStore store.TaskStore
	userStore store.UserStore
	policy    *TaskPolicy
	publisher events.Publisher
	logger    *slog.Logger

	// runTx executes fn inside a database transaction. Injectable for
	// testing without a live database.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	db *sql.DB,
	taskStore store.TaskStore,
	userStore store.UserStore,
	policy *TaskPolicy,
	publisher events.Publisher,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if userStore == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if policy == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "policy cannot be nil"}
	}
	if publisher == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "publisher cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		db:        db,
		taskStore: taskStore,
		userStore: userStore,
		policy:    policy,
		publisher: publisher,
		logger:    logger.With("component", "task_service"),
		runTx:     store.RunInTransaction,
	}, nil
}

// ListTasksFor retrieves all tasks owned by the given user.
func (s *taskServiceImpl) ListTasksFor(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := s.taskStore.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"owner_id", ownerID)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	s.logger.Debug("listed tasks successfully",
		"owner_id", ownerID,
		"count", len(tasks))
	return tasks, nil
}

// GetTask retrieves a single task after an ownership check.
func (s *taskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found", "task_id", taskID)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to retrieve task",
			"error", err,
			"task_id", taskID)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	if err := s.policy.CanPerform(userID, ActionViewTask, task); err != nil {
		s.logger.Debug("task access denied",
			"task_id", taskID,
			"user_id", userID)
		return nil, err
	}

	return task, nil
}

// CreateTask creates a new task owned by the given user.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, title, description, status)
	if err != nil {
		s.logger.Debug("failed to create task object",
			"error", err,
			"owner_id", ownerID)
		return nil, NewTaskServiceError("create_task", "failed to create task object", err)
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		s.logger.Error("failed to save task",
			"error", err,
			"owner_id", ownerID,
			"task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.logger.Info("task created successfully",
		"task_id", task.ID,
		"owner_id", ownerID,
		"status", task.Status)
	return task, nil
}

// UpdateTask applies a partial update to a task the user owns. Status
// changes are detected against the pre-update task: the event fires only
// when the update carries a status and that status differs from the
// stored one. The returned task is the stored row after the update.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	if update.Empty() {
		return nil, ErrEmptyUpdate
	}
	if err := update.Validate(); err != nil {
		return nil, NewTaskServiceError("update_task", "invalid update", err)
	}

	var (
		updated       *domain.Task
		statusChanged bool
	)

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		current, err := txStore.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if err := s.policy.CanPerform(userID, ActionUpdateTask, current); err != nil {
			return err
		}

		statusChanged = update.Status != nil && *update.Status != current.Status

		updated, err = txStore.Update(ctx, taskID, update)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotOwned) {
			return nil, err
		}
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", taskID,
			"user_id", userID)
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.logger.Info("task updated successfully",
		"task_id", taskID,
		"user_id", userID,
		"status_changed", statusChanged)

	if statusChanged {
		s.publishStatusChange(ctx, updated)
	}

	return updated, nil
}

// DeleteTask removes a task the user owns.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		current, err := txStore.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if err := s.policy.CanPerform(userID, ActionDeleteTask, current); err != nil {
			return err
		}

		return txStore.Delete(ctx, taskID)
	})
	if err != nil {
		if errors.Is(err, ErrNotOwned) {
			return err
		}
		if errors.Is(err, store.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", taskID,
			"user_id", userID)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted successfully",
		"task_id", taskID,
		"user_id", userID)
	return nil
}

// publishStatusChange snapshots the task and its owner's contact details
// into an event and hands it to the publisher. Failures to resolve the
// owner are logged and swallowed; the mutation has already committed and
// must not be failed retroactively.
func (s *taskServiceImpl) publishStatusChange(ctx context.Context, task *domain.Task) {
	owner, err := s.userStore.GetByID(ctx, task.OwnerID)
	if err != nil {
		s.logger.Error("cannot publish status change, failed to resolve task owner",
			"error", err,
			"task_id", task.ID,
			"owner_id", task.OwnerID)
		return
	}

	event := events.NewTaskStatusChangedEvent(*task, events.Recipient{
		UserID: owner.ID,
		Name:   owner.Name,
		Email:  owner.Email,
	})
	s.publisher.Publish(event)

	s.logger.Info("task status change event published",
		"event_id", event.ID,
		"task_id", task.ID,
		"status", task.Status)
}
