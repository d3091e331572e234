package domain

type TaskEventType string

const (
	TaskEventCreated TaskEventType = "created"
	TaskEventUpdated TaskEventType = "updated"
	TaskEventDeleted TaskEventType = "deleted"
)

// TaskEvent is published after a mutation commits and streamed to
// websocket subscribers.
type TaskEvent struct {
	Type TaskEventType `json:"type"`
	Task Task          `json:"task"`
}
