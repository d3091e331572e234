package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/taskdesk/backend/internal/core/ports"
	"github.com/taskdesk/backend/internal/domain"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
)

const subscriberBuffer = 16

// eventBroker fans committed task mutations out to websocket subscribers.
// Publish never blocks; a subscriber whose buffer is full misses the event.
type eventBroker struct {
	logger *logger.Logger
	mu     sync.RWMutex
	subs   map[string]chan domain.TaskEvent
}

func NewEventBroker(log *logger.Logger) ports.EventBroker {
	return &eventBroker{
		logger: log,
		subs:   make(map[string]chan domain.TaskEvent),
	}
}

func (b *eventBroker) Publish(event domain.TaskEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warnw("event_broker_subscriber_lagging", "subscriber_id", id, "type", event.Type)
		}
	}
}

func (b *eventBroker) Subscribe() (string, <-chan domain.TaskEvent) {
	id := uuid.New().String()
	ch := make(chan domain.TaskEvent, subscriberBuffer)

	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()

	b.logger.Infow("event_broker_subscribed", "subscriber_id", id)
	return id, ch
}

func (b *eventBroker) Unsubscribe(id string) {
	b.mu.Lock()
	ch, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
	}
	b.mu.Unlock()

	if ok {
		close(ch)
		b.logger.Infow("event_broker_unsubscribed", "subscriber_id", id)
	}
}
