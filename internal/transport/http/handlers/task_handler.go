package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/taskdesk/backend/internal/core/ports"
	"github.com/taskdesk/backend/internal/core/services"
	"github.com/taskdesk/backend/internal/domain"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
	"github.com/taskdesk/backend/internal/transport/http/dto"
)

type TaskHandler struct {
	service ports.TaskService
	logger  *logger.Logger
}

func NewTaskHandler(service ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid request body"})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_create_validation_failed", "errors", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: errs[0]})
	}

	h.logger.Infow("task_create_request", "title", req.Title, "status", req.GetStatus())
	task, err := h.service.CreateTask(c.Context(), ports.CreateTaskInput{
		Title:  req.Title,
		Status: req.GetStatus(),
	})
	if err != nil {
		h.logger.Errorw("task_create_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "An error occurred while creating the task: " + err.Error(),
		})
	}

	h.logger.Infow("task_create_success", "id", task.ID)
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	h.logger.Infow("task_list_request", "skip", skip, "limit", limit)
	tasks, err := h.service.GetTasks(c.Context(), skip, limit)
	if err != nil {
		h.logger.Errorw("task_list_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(dto.TasksToResponse(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("task_id"))
	if err != nil {
		h.logger.Warnw("task_get_invalid_id", "task_id", c.Params("task_id"))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid task id"})
	}

	h.logger.Infow("task_get_request", "id", id)
	task, err := h.service.GetTaskByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.logger.Warnw("task_get_not_found", "id", id)
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Task not found"})
		}
		h.logger.Errorw("task_get_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("task_id"))
	if err != nil {
		h.logger.Warnw("task_update_invalid_id", "task_id", c.Params("task_id"))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid task id"})
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_update_body_parse_failed", "id", id, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid request body"})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_update_validation_failed", "id", id, "errors", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: errs[0]})
	}

	h.logger.Infow("task_update_request", "id", id, "status", req.Status)
	task, err := h.service.UpdateTask(c.Context(), uint(id), ports.UpdateTaskInput{
		Title:  req.Title,
		Status: domain.TaskStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.logger.Warnw("task_update_not_found", "id", id)
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Task not found"})
		}
		h.logger.Errorw("task_update_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "An error occurred while updating the task: " + err.Error(),
		})
	}

	h.logger.Infow("task_update_success", "id", task.ID)
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("task_id"))
	if err != nil {
		h.logger.Warnw("task_delete_invalid_id", "task_id", c.Params("task_id"))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid task id"})
	}

	h.logger.Infow("task_delete_request", "id", id)
	task, err := h.service.DeleteTask(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.logger.Warnw("task_delete_not_found", "id", id)
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Task not found"})
		}
		h.logger.Errorw("task_delete_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "An error occurred while deleting the task: " + err.Error(),
		})
	}

	h.logger.Infow("task_delete_success", "id", task.ID)
	return c.JSON(dto.TaskToResponse(task))
}

// PreflightTask answers CORS preflight checks for the state-changing routes.
func (h *TaskHandler) PreflightTask(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
