package dto

import (
	"github.com/taskdesk/backend/internal/domain"
)

type CreateTaskRequest struct {
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
}

func (r *CreateTaskRequest) Validate() []string {
	var errors []string

	if r.Title == "" {
		errors = append(errors, "title is required")
	}

	if r.Status != "" && !domain.TaskStatus(r.Status).Valid() {
		errors = append(errors, "status must be one of: assigned, inprogress, completed")
	}

	return errors
}

func (r *CreateTaskRequest) GetStatus() domain.TaskStatus {
	if r.Status == "" {
		return domain.TaskStatusAssigned
	}
	return domain.TaskStatus(r.Status)
}

type UpdateTaskRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

func (r *UpdateTaskRequest) Validate() []string {
	var errors []string

	if r.Title == "" {
		errors = append(errors, "title is required")
	}

	if r.Status == "" {
		errors = append(errors, "status is required")
	} else if !domain.TaskStatus(r.Status).Valid() {
		errors = append(errors, "status must be one of: assigned, inprogress, completed")
	}

	return errors
}

type TaskResponse struct {
	ID     uint              `json:"id"`
	Title  string            `json:"title"`
	Status domain.TaskStatus `json:"status"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:     task.ID,
		Title:  task.Title,
		Status: task.Status,
	}
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = TaskToResponse(&task)
	}
	return responses
}

// ErrorResponse carries a human-readable message under "detail", the shape
// API consumers already depend on.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
