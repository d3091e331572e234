package services

import (
	"context"

	"github.com/taskdesk/backend/internal/core/ports"
	"github.com/taskdesk/backend/internal/domain"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
)

type TaskServiceConfig struct {
	Repository ports.TaskRepository
	Broker     ports.EventBroker
	Logger     *logger.Logger
}

type taskService struct {
	repo   ports.TaskRepository
	broker ports.EventBroker
	logger *logger.Logger
}

func NewTaskService(cfg TaskServiceConfig) ports.TaskService {
	return &taskService{
		repo:   cfg.Repository,
		broker: cfg.Broker,
		logger: cfg.Logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskStatusAssigned
	}
	if !status.Valid() {
		return nil, ErrTaskInvalidStatus
	}

	task := &domain.Task{
		Title:  input.Title,
		Status: status,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Errorw("task_create_failed", "title", input.Title, "error", err)
		return nil, err
	}

	s.publish(domain.TaskEventCreated, task)
	return task, nil
}

func (s *taskService) GetTasks(ctx context.Context, skip, limit int) ([]domain.Task, error) {
	return s.repo.GetAll(ctx, skip, limit)
}

func (s *taskService) GetTaskByID(ctx context.Context, id uint) (*domain.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *taskService) UpdateTask(ctx context.Context, id uint, input ports.UpdateTaskInput) (*domain.Task, error) {
	if !input.Status.Valid() {
		return nil, ErrTaskInvalidStatus
	}

	task, err := s.repo.Update(ctx, id, input.Title, input.Status)
	if err != nil {
		return nil, err
	}

	s.publish(domain.TaskEventUpdated, task)
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id uint) (*domain.Task, error) {
	task, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(domain.TaskEventDeleted, task)
	return task, nil
}

func (s *taskService) publish(typ domain.TaskEventType, task *domain.Task) {
	if s.broker == nil {
		return
	}
	s.broker.Publish(domain.TaskEvent{Type: typ, Task: *task})
}
