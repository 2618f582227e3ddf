package api

import "github.com/phrazzld/taskboard/internal/domain"

// Response messages that clients match on.
const (
	MessageTaskDeleted  = "Task deleted"
	MessageTaskNotFound = "Task not found"
)

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Tag       string `json:"tag"`
}

// TaskStatsResponse summarizes completion across all tasks
type TaskStatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Progress  int `json:"progress"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Tag:       task.Tag.String(),
	}
}

// tasksToResponse converts tasks, always returning a non-nil slice so the
// JSON encoding is [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out
}

func statsToResponse(stats domain.TaskStats) TaskStatsResponse {
	return TaskStatsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		Progress:  stats.Progress,
	}
}
