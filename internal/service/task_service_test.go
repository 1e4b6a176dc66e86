package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskline/taskline/internal/domain"
	"github.com/taskline/taskline/internal/store"
)

type serviceFixture struct {
	svc       *taskServiceImpl
	taskStore *fakeTaskStore
	userStore *fakeUserStore
	publisher *capturingPublisher
	owner     *domain.User
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	taskStore := newFakeTaskStore()
	userStore := newFakeUserStore()
	publisher := &capturingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewTaskService(nil, taskStore, userStore, NewTaskPolicy(), publisher, logger)
	require.NoError(t, err)

	impl := svc.(*taskServiceImpl)
	impl.runTx = func(ctx context.Context, _ *sql.DB, fn store.TxFn) error {
		return fn(ctx, nil)
	}

	owner, err := domain.NewUser("Dana", "dana@example.com", "correct-horse-battery")
	require.NoError(t, err)
	owner.HashedPassword = "not-a-real-hash"
	owner.Password = ""
	userStore.add(owner)

	return &serviceFixture{
		svc:       impl,
		taskStore: taskStore,
		userStore: userStore,
		publisher: publisher,
		owner:     owner,
	}
}

func (f *serviceFixture) createTask(t *testing.T, status domain.TaskStatus) *domain.Task {
	t.Helper()
	task, err := f.svc.CreateTask(
		context.Background(),
		f.owner.ID,
		"Write report",
		"Write the quarterly report draft.",
		status,
	)
	require.NoError(t, err)
	return task
}

func TestNewTaskServiceValidatesDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewTaskService(nil, nil, newFakeUserStore(), NewTaskPolicy(), &capturingPublisher{}, nil)
	assert.Error(t, err)

	_, err = NewTaskService(nil, newFakeTaskStore(), newFakeUserStore(), NewTaskPolicy(), nil, nil)
	assert.Error(t, err)
}

func TestCreateAndGetTask(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	got, err := f.svc.GetTask(context.Background(), f.owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, f.owner.ID, got.OwnerID)
	assert.Equal(t, domain.StatusOpen, got.Status)
}

func TestCreateTaskInvalidInput(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	_, err := f.svc.CreateTask(context.Background(), f.owner.ID, "ab", "too short title", domain.StatusOpen)
	assert.Error(t, err)
}

func TestGetTaskNotFound(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	_, err := f.svc.GetTask(context.Background(), f.owner.ID, uuid.New())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestGetTaskDeniedForNonOwner(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	_, err := f.svc.GetTask(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, ErrNotOwned)
}

func TestListTasksForOwnerOnly(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	f.createTask(t, domain.StatusOpen)
	f.createTask(t, domain.StatusPending)

	tasks, err := f.svc.ListTasksFor(context.Background(), f.owner.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	other, err := f.svc.ListTasksFor(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdateTaskStatusChangePublishesEvent(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	newStatus := domain.StatusInProgress
	updated, err := f.svc.UpdateTask(context.Background(), f.owner.ID, created.ID, domain.TaskUpdate{
		Status: &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)

	published := f.publisher.published()
	require.Len(t, published, 1)
	event := published[0]
	assert.Equal(t, created.ID, event.Task.ID)
	assert.Equal(t, domain.StatusInProgress, event.Task.Status)
	assert.Equal(t, f.owner.ID, event.Recipient.UserID)
	assert.Equal(t, f.owner.Email, event.Recipient.Email)
}

func TestUpdateTaskSameStatusPublishesNothing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	sameStatus := domain.StatusOpen
	_, err := f.svc.UpdateTask(context.Background(), f.owner.ID, created.ID, domain.TaskUpdate{
		Status: &sameStatus,
	})
	require.NoError(t, err)
	assert.Empty(t, f.publisher.published())
}

func TestUpdateTaskRepeatedStatusPublishesOnce(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	newStatus := domain.StatusPending
	_, err := f.svc.UpdateTask(context.Background(), f.owner.ID, created.ID, domain.TaskUpdate{
		Status: &newStatus,
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateTask(context.Background(), f.owner.ID, created.ID, domain.TaskUpdate{
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Len(t, f.publisher.published(), 1)
}

func TestUpdateTaskWithoutStatusPublishesNothing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	title := "Write final report"
	updated, err := f.svc.UpdateTask(context.Background(), f.owner.ID, created.ID, domain.TaskUpdate{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "Write final report", updated.Title)
	assert.Empty(t, f.publisher.published())
}

func TestUpdateTaskEmptyUpdate(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	_, err := f.svc.UpdateTask(context.Background(), f.owner.ID, created.ID, domain.TaskUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestUpdateTaskDeniedForNonOwner(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	newStatus := domain.StatusClosed
	_, err := f.svc.UpdateTask(context.Background(), uuid.New(), created.ID, domain.TaskUpdate{
		Status: &newStatus,
	})
	assert.ErrorIs(t, err, ErrNotOwned)
	assert.Empty(t, f.publisher.published())
}

func TestUpdateTaskNotFound(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	newStatus := domain.StatusClosed
	_, err := f.svc.UpdateTask(context.Background(), f.owner.ID, uuid.New(), domain.TaskUpdate{
		Status: &newStatus,
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTaskEventDroppedWhenOwnerMissing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)
	f.userStore.getErr = store.ErrUserNotFound

	newStatus := domain.StatusCanceled
	updated, err := f.svc.UpdateTask(context.Background(), f.owner.ID, created.ID, domain.TaskUpdate{
		Status: &newStatus,
	})
	require.NoError(t, err, "mutation must succeed even when the event cannot be built")
	assert.Equal(t, domain.StatusCanceled, updated.Status)
	assert.Empty(t, f.publisher.published())
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	require.NoError(t, f.svc.DeleteTask(context.Background(), f.owner.ID, created.ID))

	_, err := f.svc.GetTask(context.Background(), f.owner.ID, created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTaskDeniedForNonOwner(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	created := f.createTask(t, domain.StatusOpen)

	err := f.svc.DeleteTask(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	_, getErr := f.svc.GetTask(context.Background(), f.owner.ID, created.ID)
	assert.NoError(t, getErr, "task must survive a denied delete")
}

func TestDeleteTaskNotFound(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	assert.ErrorIs(t, f.svc.DeleteTask(context.Background(), f.owner.ID, uuid.New()), ErrTaskNotFound)
}

func TestTaskPolicy(t *testing.T) {
	t.Parallel()

	policy := NewTaskPolicy()
	ownerID := uuid.New()
	task, err := domain.NewTask(ownerID, "Review PR", "Review the open pull request.", domain.StatusOpen)
	require.NoError(t, err)

	assert.NoError(t, policy.CanPerform(ownerID, ActionUpdateTask, task))
	assert.ErrorIs(t, policy.CanPerform(uuid.New(), ActionDeleteTask, task), ErrNotOwned)
	assert.ErrorIs(t, policy.CanPerform(ownerID, ActionViewTask, nil), ErrTaskNotFound)
}
