package mocks

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	ListTasksFn  func(ctx context.Context) ([]domain.Task, error)
	CreateTaskFn func(ctx context.Context, title string) (*domain.Task, error)
	ToggleTaskFn func(ctx context.Context, id string) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id string) error
	TaskStatsFn  func(ctx context.Context) (domain.TaskStats, error)

	// Default return values
	Tasks        []domain.Task
	Task         *domain.Task
	Stats        domain.TaskStats
	DefaultError error
}

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, title string) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, title)
	}
	return m.Task, m.DefaultError
}

// ToggleTask implements the TaskService.ToggleTask method
func (m *MockTaskService) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	if m.ToggleTaskFn != nil {
		return m.ToggleTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id string) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}

// TaskStats implements the TaskService.TaskStats method
func (m *MockTaskService) TaskStats(ctx context.Context) (domain.TaskStats, error) {
	if m.TaskStatsFn != nil {
		return m.TaskStatsFn(ctx)
	}
	return m.Stats, m.DefaultError
}
