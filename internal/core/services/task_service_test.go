package services

import (
	"context"
	"errors"
	"testing"

	"github.com/taskdesk/backend/internal/core/ports"
	"github.com/taskdesk/backend/internal/domain"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
)

type stubTaskRepo struct {
	created []domain.Task
	task    *domain.Task
	err     error
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) error {
	if r.err != nil {
		return r.err
	}
	task.ID = uint(len(r.created) + 1)
	r.created = append(r.created, *task)
	return nil
}

func (r *stubTaskRepo) GetByID(context.Context, uint) (*domain.Task, error) {
	return r.task, r.err
}

func (r *stubTaskRepo) GetAll(context.Context, int, int) ([]domain.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.created, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id uint, title string, status domain.TaskStatus) (*domain.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Task{ID: id, Title: title, Status: status}, nil
}

func (r *stubTaskRepo) Delete(context.Context, uint) (*domain.Task, error) {
	return r.task, r.err
}

type captureBroker struct {
	events []domain.TaskEvent
}

func (b *captureBroker) Publish(event domain.TaskEvent) { b.events = append(b.events, event) }
func (b *captureBroker) Subscribe() (string, <-chan domain.TaskEvent) {
	return "", nil
}
func (b *captureBroker) Unsubscribe(string) {}

func newTaskService(repo ports.TaskRepository, broker ports.EventBroker) ports.TaskService {
	return NewTaskService(TaskServiceConfig{
		Repository: repo,
		Broker:     broker,
		Logger:     logger.Nop(),
	})
}

func TestCreateTaskDefaultsToAssigned(t *testing.T) {
	repo := &stubTaskRepo{}
	broker := &captureBroker{}
	svc := newTaskService(repo, broker)

	task, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{Title: "write spec"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Status != domain.TaskStatusAssigned {
		t.Errorf("status = %q, want assigned", task.Status)
	}
	if len(broker.events) != 1 || broker.events[0].Type != domain.TaskEventCreated {
		t.Errorf("expected one created event, got %+v", broker.events)
	}
}

func TestCreateTaskRejectsUnknownStatus(t *testing.T) {
	repo := &stubTaskRepo{}
	svc := newTaskService(repo, &captureBroker{})

	_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{Title: "x", Status: "done"})
	if !errors.Is(err, ErrTaskInvalidStatus) {
		t.Fatalf("err = %v, want ErrTaskInvalidStatus", err)
	}
	if len(repo.created) != 0 {
		t.Error("invalid status must not reach the repository")
	}
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	svc := newTaskService(&stubTaskRepo{}, &captureBroker{})

	_, err := svc.UpdateTask(context.Background(), 1, ports.UpdateTaskInput{Title: "x", Status: "todo"})
	if !errors.Is(err, ErrTaskInvalidStatus) {
		t.Fatalf("err = %v, want ErrTaskInvalidStatus", err)
	}
}

func TestUpdateTaskPublishesEvent(t *testing.T) {
	broker := &captureBroker{}
	svc := newTaskService(&stubTaskRepo{}, broker)

	task, err := svc.UpdateTask(context.Background(), 3, ports.UpdateTaskInput{Title: "x", Status: domain.TaskStatusCompleted})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if task.ID != 3 || task.Status != domain.TaskStatusCompleted {
		t.Errorf("unexpected task: %+v", task)
	}
	if len(broker.events) != 1 || broker.events[0].Type != domain.TaskEventUpdated {
		t.Errorf("expected one updated event, got %+v", broker.events)
	}
}

func TestDeleteTaskPublishesEventWithLastState(t *testing.T) {
	last := &domain.Task{ID: 7, Title: "gone", Status: domain.TaskStatusInProgress}
	broker := &captureBroker{}
	svc := newTaskService(&stubTaskRepo{task: last}, broker)

	task, err := svc.DeleteTask(context.Background(), 7)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if *task != *last {
		t.Errorf("delete should return last state, got %+v", task)
	}
	if len(broker.events) != 1 || broker.events[0].Type != domain.TaskEventDeleted {
		t.Errorf("expected one deleted event, got %+v", broker.events)
	}
	if broker.events[0].Task != *last {
		t.Errorf("event should carry last state, got %+v", broker.events[0].Task)
	}
}

func TestDeleteTaskPropagatesNotFound(t *testing.T) {
	broker := &captureBroker{}
	svc := newTaskService(&stubTaskRepo{err: ErrTaskNotFound}, broker)

	_, err := svc.DeleteTask(context.Background(), 1)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
	if len(broker.events) != 0 {
		t.Error("no event should be published for a failed delete")
	}
}
