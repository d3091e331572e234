package services

import (
	"testing"
	"time"

	"github.com/taskdesk/backend/internal/domain"
	"github.com/taskdesk/backend/internal/infrastructure/logger"
)

func TestEventBrokerDeliversToSubscribers(t *testing.T) {
	broker := NewEventBroker(logger.Nop())

	id, events := broker.Subscribe()
	defer broker.Unsubscribe(id)

	want := domain.TaskEvent{
		Type: domain.TaskEventCreated,
		Task: domain.Task{ID: 1, Title: "x", Status: domain.TaskStatusAssigned},
	}
	broker.Publish(want)

	select {
	case got := <-events:
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestEventBrokerUnsubscribeClosesChannel(t *testing.T) {
	broker := NewEventBroker(logger.Nop())

	id, events := broker.Subscribe()
	broker.Unsubscribe(id)

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestEventBrokerPublishNeverBlocks(t *testing.T) {
	broker := NewEventBroker(logger.Nop())

	id, _ := broker.Subscribe()
	defer broker.Unsubscribe(id)

	// Nobody drains the subscriber; publishing past the buffer must not hang.
	event := domain.TaskEvent{Type: domain.TaskEventUpdated, Task: domain.Task{ID: 1}}
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			broker.Publish(event)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a lagging subscriber")
	}
}
