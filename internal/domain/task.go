package domain

// ==================== ENUMS ====================

type TaskStatus string

const (
	TaskStatusAssigned   TaskStatus = "assigned"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus maps a wire string onto the closed status set. The enum
// constrains representation only; transitions between values are unrestricted.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskStatusAssigned, TaskStatusInProgress, TaskStatusCompleted:
		return TaskStatus(s), true
	}
	return "", false
}

func (s TaskStatus) Valid() bool {
	_, ok := ParseTaskStatus(string(s))
	return ok
}

// ==================== ENTITIES ====================

type Task struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	Title  string     `gorm:"type:text;index;not null" json:"title"`
	Status TaskStatus `gorm:"size:20;not null;default:'assigned'" json:"status"`
}

func (Task) TableName() string {
	return "tasks"
}
