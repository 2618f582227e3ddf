// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the task
// store (defined in internal/store) to fulfill application features.
//
// TaskService is the single use case surface: it lists, creates, toggles and
// deletes tasks, computes progress statistics, and publishes a lifecycle
// event after every successful mutation.
//
// Errors from lower layers are wrapped in TaskServiceError, except for a
// missing task, which is reported as the bare ErrTaskNotFound sentinel so
// callers can check it with errors.Is.
package service
