package ports

import (
	"context"

	"github.com/taskdesk/backend/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uint) (*domain.Task, error)
	GetAll(ctx context.Context, skip, limit int) ([]domain.Task, error)
	Update(ctx context.Context, id uint, title string, status domain.TaskStatus) (*domain.Task, error)
	Delete(ctx context.Context, id uint) (*domain.Task, error)
}
