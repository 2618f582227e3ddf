package store

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations must be safe for concurrent use and keep tasks in
// insertion order.
type TaskStore interface {
	// List returns every task in insertion order.
	// The returned tasks are copies; mutating them does not affect the store.
	List(ctx context.Context) ([]domain.Task, error)

	// Create appends a new task to the store.
	// It handles domain validation internally and returns ErrInvalidEntity
	// (wrapping the domain error) if the task data is invalid.
	// Returns ErrTaskExists if a task with the same ID is already stored.
	Create(ctx context.Context, task *domain.Task) error

	// Toggle flips the completed flag of the task with the given ID and
	// returns a copy of the updated task.
	// Returns ErrTaskNotFound if the task does not exist; the store is left unchanged.
	Toggle(ctx context.Context, id string) (*domain.Task, error)

	// Delete removes the task with the given ID and reports whether a task
	// was removed. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
