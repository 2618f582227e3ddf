package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/events"
	"github.com/phrazzld/taskboard/internal/platform/memory"
	"github.com/phrazzld/taskboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestService wires a TaskService over a real in-memory store.
func newTestService(t *testing.T) (TaskService, *memory.MemoryTaskStore, *recordingEmitter) {
	t.Helper()
	taskStore := memory.NewMemoryTaskStore(nil)
	emitter := &recordingEmitter{}
	svc, err := NewTaskService(taskStore, emitter, nil)
	require.NoError(t, err)
	return svc, taskStore, emitter
}

func TestNewTaskService_Validation(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		svc, err := NewTaskService(nil, &recordingEmitter{}, nil)
		assert.Nil(t, svc)
		var serviceErr *TaskServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.Contains(t, serviceErr.Message, "taskStore")
	})

	t.Run("nil emitter", func(t *testing.T) {
		svc, err := NewTaskService(memory.NewMemoryTaskStore(nil), nil, nil)
		assert.Nil(t, svc)
		assert.ErrorContains(t, err, "eventEmitter cannot be nil")
	})
}

func TestTaskService_CreateThenList(t *testing.T) {
	ctx := context.Background()
	svc, _, emitter := newTestService(t)

	before, err := svc.ListTasks(ctx)
	require.NoError(t, err)

	created, err := svc.CreateTask(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", created.Title)
	assert.Equal(t, domain.TagQuick, created.Tag)
	assert.False(t, created.Completed)
	assert.NotEmpty(t, created.ID)

	after, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1, "Exactly one task should be added")
	assert.Equal(t, *created, after[len(after)-1])

	deep, err := svc.CreateTask(ctx, "one two three four five six seven")
	require.NoError(t, err)
	assert.Equal(t, domain.TagDeep, deep.Tag)

	assert.Equal(t, []events.EventType{events.TaskCreated, events.TaskCreated}, emitter.types())
	assert.Equal(t, created.ID, emitter.events[0].TaskID)
}

func TestTaskService_CreateEmptyTitle(t *testing.T) {
	ctx := context.Background()
	svc, taskStore, emitter := newTestService(t)

	task, err := svc.CreateTask(ctx, "")

	assert.Nil(t, task)
	assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
	var serviceErr *TaskServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "create_task", serviceErr.Operation)
	assert.Equal(t, 0, taskStore.Len())
	assert.Empty(t, emitter.events, "No event for a rejected create")
}

func TestTaskService_Toggle(t *testing.T) {
	ctx := context.Background()
	svc, _, emitter := newTestService(t)
	created, err := svc.CreateTask(ctx, "water the plants")
	require.NoError(t, err)

	toggled, err := svc.ToggleTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.ToggleTask(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed, "A pair of toggles returns to the original state")

	assert.Equal(t,
		[]events.EventType{events.TaskCreated, events.TaskToggled, events.TaskToggled},
		emitter.types())
	assert.True(t, emitter.events[1].Task.Completed, "Event carries the post-toggle snapshot")
}

func TestTaskService_ToggleUnknown(t *testing.T) {
	ctx := context.Background()
	svc, _, emitter := newTestService(t)
	created, err := svc.CreateTask(ctx, "water the plants")
	require.NoError(t, err)

	task, err := svc.ToggleTask(ctx, "missing")

	assert.Nil(t, task)
	assert.Equal(t, ErrTaskNotFound, err, "Not found should be returned as the bare sentinel")

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{*created}, tasks, "Store should be unchanged")
	assert.Len(t, emitter.events, 1, "Only the create event should be emitted")
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, emitter := newTestService(t)
	keep, err := svc.CreateTask(ctx, "keep me")
	require.NoError(t, err)
	drop, err := svc.CreateTask(ctx, "drop me")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, drop.ID))

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{*keep}, tasks)

	// Unknown and repeated deletes still succeed and change nothing
	require.NoError(t, svc.DeleteTask(ctx, drop.ID))
	require.NoError(t, svc.DeleteTask(ctx, "never-existed"))

	tasks, err = svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{*keep}, tasks)

	assert.Equal(t,
		[]events.EventType{events.TaskCreated, events.TaskCreated, events.TaskDeleted},
		emitter.types(),
		"Only an actual removal emits a delete event")
	assert.Equal(t, drop.ID, emitter.events[2].TaskID)
}

func TestTaskService_TaskStats(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	stats, err := svc.TaskStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStats{}, stats)

	first, err := svc.CreateTask(ctx, "first")
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "second")
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "third")
	require.NoError(t, err)
	_, err = svc.ToggleTask(ctx, first.ID)
	require.NoError(t, err)

	stats, err = svc.TaskStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStats{Total: 3, Completed: 1, Progress: 33}, stats)
}

func TestTaskService_StoreFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("storage unavailable")

	t.Run("list failure is wrapped", func(t *testing.T) {
		mockStore := &MockTaskStore{}
		mockStore.On("List", mock.Anything).Return(nil, storeErr)
		svc, err := NewTaskService(mockStore, &recordingEmitter{}, nil)
		require.NoError(t, err)

		tasks, err := svc.ListTasks(ctx)
		assert.Nil(t, tasks)
		assert.ErrorIs(t, err, storeErr)

		_, err = svc.TaskStats(ctx)
		assert.ErrorIs(t, err, storeErr)
		mockStore.AssertExpectations(t)
	})

	t.Run("create failure emits nothing", func(t *testing.T) {
		mockStore := &MockTaskStore{}
		mockStore.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(store.ErrTaskExists)
		emitter := &recordingEmitter{}
		svc, err := NewTaskService(mockStore, emitter, nil)
		require.NoError(t, err)

		task, err := svc.CreateTask(ctx, "hello")
		assert.Nil(t, task)
		assert.ErrorIs(t, err, store.ErrTaskExists)
		assert.Empty(t, emitter.events)
		mockStore.AssertExpectations(t)
	})

	t.Run("store not found maps to service sentinel", func(t *testing.T) {
		mockStore := &MockTaskStore{}
		mockStore.On("Toggle", mock.Anything, "abc").
			Return(nil, store.NewStoreError("task", "toggle", "missing", store.ErrTaskNotFound))
		svc, err := NewTaskService(mockStore, &recordingEmitter{}, nil)
		require.NoError(t, err)

		_, err = svc.ToggleTask(ctx, "abc")
		assert.Equal(t, ErrTaskNotFound, err)
		mockStore.AssertExpectations(t)
	})

	t.Run("delete failure is wrapped", func(t *testing.T) {
		mockStore := &MockTaskStore{}
		mockStore.On("Delete", mock.Anything, "abc").Return(false, storeErr)
		svc, err := NewTaskService(mockStore, &recordingEmitter{}, nil)
		require.NoError(t, err)

		err = svc.DeleteTask(ctx, "abc")
		assert.ErrorIs(t, err, storeErr)
		var serviceErr *TaskServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "delete_task", serviceErr.Operation)
	})
}

func TestTaskService_EmitFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	emitter := &MockEventEmitter{}
	emitter.On("EmitEvent", mock.Anything, mock.AnythingOfType("*events.TaskEvent")).
		Return(errors.New("handler exploded"))

	svc, err := NewTaskService(memory.NewMemoryTaskStore(nil), emitter, nil)
	require.NoError(t, err)

	task, err := svc.CreateTask(ctx, "still saved")
	require.NoError(t, err)
	require.NotNil(t, task)

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	emitter.AssertNumberOfCalls(t, "EmitEvent", 1)
}
