package valueobjects

import "fmt"

// TaskStatus is the completion state of a single checklist task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pendiente"
	TaskStatusInProgress TaskStatus = "En proceso"
	TaskStatusCompleted  TaskStatus = "Completada"
)

var validTaskStatuses = map[TaskStatus]bool{
	TaskStatusPending:    true,
	TaskStatusInProgress: true,
	TaskStatusCompleted:  true,
}

func (ts TaskStatus) String() string {
	return string(ts)
}

func (ts TaskStatus) IsValid() bool {
	return validTaskStatuses[ts]
}

func (ts TaskStatus) IsCompleted() bool {
	return ts == TaskStatusCompleted
}

func NewTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return status, nil
}
