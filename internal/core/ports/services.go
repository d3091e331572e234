package ports

import (
	"context"

	"github.com/taskdesk/backend/internal/domain"
)

type CreateTaskInput struct {
	Title  string
	Status domain.TaskStatus
}

type UpdateTaskInput struct {
	Title  string
	Status domain.TaskStatus
}

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTasks(ctx context.Context, skip, limit int) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id uint) (*domain.Task, error)
	UpdateTask(ctx context.Context, id uint, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id uint) (*domain.Task, error)
}

type EventBroker interface {
	Publish(event domain.TaskEvent)
	Subscribe() (string, <-chan domain.TaskEvent)
	Unsubscribe(id string)
}
