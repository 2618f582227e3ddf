package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
)

// Task represents a to-do item. The tag is computed from the title when the
// task is created and never changes afterwards; only the completed flag is
// mutable.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Tag       Tag    `json:"tag"`
}

// NewTask creates a new Task with the given title.
// It generates a new UUID for the task ID, classifies the title into an
// effort tag and marks the task as not completed.
// Returns an error if validation fails.
func NewTask(title string) (*Task, error) {
	task := &Task{
		ID:        uuid.NewString(),
		Title:     title,
		Completed: false,
		Tag:       Classify(title),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if !t.Tag.IsValid() {
		return ErrInvalidTag
	}

	return nil
}

// Toggle flips the completed flag and returns the new value.
func (t *Task) Toggle() bool {
	t.Completed = !t.Completed
	return t.Completed
}
