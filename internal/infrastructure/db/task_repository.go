package db

import (
	"context"
	"errors"

	"github.com/taskdesk/backend/internal/core/ports"
	"github.com/taskdesk/backend/internal/core/services"
	"github.com/taskdesk/backend/internal/domain"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type taskRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepository(db *gorm.DB, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{db: db, log: log}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.log.Errorw("task_repo_create_failed", "title", task.Title, "error", err)
		return err
	}
	r.log.Infow("task_repo_create_ok", "id", task.ID)
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		r.log.Errorw("task_repo_get_failed", "id", id, "error", err)
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&tasks).Error; err != nil {
		r.log.Errorw("task_repo_list_failed", "skip", skip, "limit", limit, "error", err)
		return nil, err
	}
	r.log.Infow("task_repo_list_ok", "skip", skip, "limit", limit, "count", len(tasks))
	return tasks, nil
}

// Update replaces title and status in one transaction. The row is locked on
// read so a delete racing between load and commit cannot slip through.
func (r *taskRepository) Update(ctx context.Context, id uint, title string, status domain.TaskStatus) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&task, id).Error; err != nil {
			return err
		}
		task.Title = title
		task.Status = status
		return tx.Save(&task).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		r.log.Errorw("task_repo_update_failed", "id", id, "error", err)
		return nil, err
	}
	r.log.Infow("task_repo_update_ok", "id", id)
	return &task, nil
}

// Delete removes the row and returns its last state. Load and delete share a
// transaction; zero rows affected means a concurrent delete won.
func (r *taskRepository) Delete(ctx context.Context, id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Task{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		r.log.Errorw("task_repo_delete_failed", "id", id, "error", err)
		return nil, err
	}
	r.log.Infow("task_repo_delete_ok", "id", id)
	return &task, nil
}
