package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/store"
)

// MemoryTaskStore implements the store.TaskStore interface by keeping an
// ordered slice of tasks in memory. Mutations are serialized behind a
// write lock; reads share a read lock and return copies.
type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	logger *slog.Logger
}

// NewMemoryTaskStore creates an empty in-memory TaskStore.
// If logger is nil, a default logger will be used.
func NewMemoryTaskStore(logger *slog.Logger) *MemoryTaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryTaskStore{
		tasks:  make([]domain.Task, 0),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// List implements store.TaskStore.List
func (s *MemoryTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tasks), nil
}

// Create implements store.TaskStore.Create
// It validates the task and appends a copy of it to the end of the collection.
func (s *MemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return fmt.Errorf("%w: task is nil", store.ErrInvalidEntity)
	}

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return store.NewStoreError("task", "create", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.ID) >= 0 {
		log.Warn("duplicate task ID during create", slog.String("task_id", task.ID))
		return store.ErrTaskExists
	}

	s.tasks = append(s.tasks, *task)

	log.Debug("task created",
		slog.String("task_id", task.ID),
		slog.String("tag", task.Tag.String()),
		slog.Int("task_count", len(s.tasks)))
	return nil
}

// Toggle implements store.TaskStore.Toggle
func (s *MemoryTaskStore) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("task not found for toggle", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	s.tasks[i].Toggle()
	updated := s.tasks[i]

	log.Debug("task toggled",
		slog.String("task_id", id),
		slog.Bool("completed", updated.Completed))
	return &updated, nil
}

// Delete implements store.TaskStore.Delete
func (s *MemoryTaskStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("task not found for delete", slog.String("task_id", id))
		return false, nil
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)

	log.Debug("task deleted",
		slog.String("task_id", id),
		slog.Int("task_count", len(s.tasks)))
	return true, nil
}

// Len returns the number of stored tasks.
func (s *MemoryTaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// indexOf returns the position of the task with the given ID, or -1.
// Callers must hold the lock.
func (s *MemoryTaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
