package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/events"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns all tasks in insertion order
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// CreateTask creates a new task from a title, classifying its effort tag
	CreateTask(ctx context.Context, title string) (*domain.Task, error)

	// ToggleTask flips the completed flag of a task.
	// Returns ErrTaskNotFound if no task has the given ID.
	ToggleTask(ctx context.Context, id string) (*domain.Task, error)

	// DeleteTask removes a task. Deleting an unknown ID succeeds.
	DeleteTask(ctx context.Context, id string) error

	// TaskStats summarizes completion across all tasks
	TaskStats(ctx context.Context) (domain.TaskStats, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	// Validate dependencies
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:    taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, title string) (*domain.Task, error) {
	log := s.log(ctx)

	// 1. Build the task; this assigns the ID and classifies the tag
	task, err := domain.NewTask(title)
	if err != nil {
		log.Warn("failed to create task object", "error", err)
		return nil, NewTaskServiceError("create_task", "failed to create task object", err)
	}

	// 2. Append it to the store
	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to save task",
			"error", err,
			"task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created",
		"task_id", task.ID,
		"tag", task.Tag,
		"word_count", len(strings.Fields(title)))

	// 3. Notify listeners
	s.emit(ctx, events.NewTaskEvent(events.TaskCreated, *task))

	return task, nil
}

// ToggleTask implements TaskService.ToggleTask
func (s *taskServiceImpl) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	log := s.log(ctx)

	task, err := s.taskStore.Toggle(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for toggle", "task_id", id)
		} else {
			log.Error("failed to toggle task", "error", err, "task_id", id)
		}
		return nil, NewTaskServiceError("toggle_task", "failed to toggle task", err)
	}

	log.Info("task toggled",
		"task_id", task.ID,
		"completed", task.Completed)

	s.emit(ctx, events.NewTaskEvent(events.TaskToggled, *task))

	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	log := s.log(ctx)

	removed, err := s.taskStore.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete task", "error", err, "task_id", id)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	if !removed {
		log.Debug("delete requested for unknown task", "task_id", id)
		return nil
	}

	log.Info("task deleted", "task_id", id)

	s.emit(ctx, events.NewTaskEvent(events.TaskDeleted, domain.Task{ID: id}))

	return nil
}

// TaskStats implements TaskService.TaskStats
func (s *taskServiceImpl) TaskStats(ctx context.Context) (domain.TaskStats, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list tasks for stats", "error", err)
		return domain.TaskStats{}, NewTaskServiceError("task_stats", "failed to list tasks", err)
	}
	return domain.ComputeStats(tasks), nil
}

// emit publishes an event. The mutation has already happened, so a handler
// failure is logged and otherwise ignored.
func (s *taskServiceImpl) emit(ctx context.Context, event *events.TaskEvent) {
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Error("failed to emit task event",
			"error", err,
			"event_id", event.ID,
			"event_type", event.Type,
			"task_id", event.TaskID)
	}
}

// log returns the request-scoped logger if one is present in ctx.
func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}
