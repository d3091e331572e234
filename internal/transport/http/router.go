package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/taskdesk/backend/internal/core/services"
	"github.com/taskdesk/backend/internal/infrastructure/db"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
	"github.com/taskdesk/backend/internal/transport/http/handlers"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB     *gorm.DB
	Logger *logger.Logger
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	taskRepo := db.NewTaskRepository(cfg.DB, cfg.Logger)
	broker := services.NewEventBroker(cfg.Logger)

	taskService := services.NewTaskService(services.TaskServiceConfig{
		Repository: taskRepo,
		Broker:     broker,
		Logger:     cfg.Logger,
	})

	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)
	eventsHandler := handlers.NewEventsHandler(broker, cfg.Logger)

	RegisterTaskRoutes(app, taskHandler)
	RegisterEventRoutes(app, eventsHandler)
}

// RegisterTaskRoutes mounts the CRUD surface. The route shapes are the
// public API contract; keep them stable.
func RegisterTaskRoutes(app *fiber.App, h *handlers.TaskHandler) {
	app.Post("/add_task", h.CreateTask)
	app.Get("/get_tasks", h.GetTasks)
	app.Get("/tasks/:task_id", h.GetTask)
	app.Put("/task/:task_id", h.UpdateTask)
	app.Delete("/task/:task_id", h.DeleteTask)
	app.Options("/task/:task_id", h.PreflightTask)
}

func RegisterEventRoutes(app *fiber.App, h *handlers.EventsHandler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws/events", websocket.New(h.Handle))
}
