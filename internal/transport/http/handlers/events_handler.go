package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/taskdesk/backend/internal/core/ports"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
)

type EventsHandler struct {
	broker ports.EventBroker
	logger *logger.Logger
}

func NewEventsHandler(broker ports.EventBroker, logger *logger.Logger) *EventsHandler {
	return &EventsHandler{broker: broker, logger: logger}
}

// Handle streams task mutation events to a websocket client until the
// client disconnects.
func (h *EventsHandler) Handle(c *websocket.Conn) {
	id, events := h.broker.Subscribe()
	defer h.broker.Unsubscribe(id)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(event); err != nil {
				h.logger.Warnw("events_write_failed", "subscriber_id", id, "error", err)
				return
			}
		case <-done:
			return
		}
	}
}
