package ticket

import (
	"fmt"
	"time"

	vo "norte/internal/domain/ticket/valueobjects"
)

// Task is a single checklist item on a ticket's work schedule. A task may be
// assigned to a technician and carries its own window inside the ticket's.
type Task struct {
	id          uint
	ticketID    uint
	assigneeID  *uint
	name        string
	description string
	status      vo.TaskStatus
	startDate   *time.Time
	dueDate     *time.Time
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTask(ticketID uint, name, description string, assigneeID *uint, startDate, dueDate *time.Time) (*Task, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("task name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("task name exceeds maximum length of 255 characters")
	}
	if startDate != nil && dueDate != nil && dueDate.Before(*startDate) {
		return nil, fmt.Errorf("due date must not be before start date")
	}

	now := time.Now()
	return &Task{
		ticketID:    ticketID,
		assigneeID:  assigneeID,
		name:        name,
		description: description,
		status:      vo.TaskStatusPending,
		startDate:   startDate,
		dueDate:     dueDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTask(
	id uint,
	ticketID uint,
	assigneeID *uint,
	name string,
	description string,
	status vo.TaskStatus,
	startDate, dueDate, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	return &Task{
		id:          id,
		ticketID:    ticketID,
		assigneeID:  assigneeID,
		name:        name,
		description: description,
		status:      status,
		startDate:   startDate,
		dueDate:     dueDate,
		completedAt: completedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Task) ID() uint              { return t.id }
func (t *Task) TicketID() uint        { return t.ticketID }
func (t *Task) AssigneeID() *uint     { return t.assigneeID }
func (t *Task) Name() string          { return t.name }
func (t *Task) Description() string   { return t.description }
func (t *Task) Status() vo.TaskStatus { return t.status }
func (t *Task) StartDate() *time.Time { return t.startDate }
func (t *Task) DueDate() *time.Time   { return t.dueDate }
func (t *Task) CreatedAt() time.Time  { return t.createdAt }
func (t *Task) UpdatedAt() time.Time  { return t.updatedAt }

// CompletedAt is set iff the task status is Completada.
func (t *Task) CompletedAt() *time.Time { return t.completedAt }

func (t *Task) IsCompleted() bool {
	return t.status.IsCompleted()
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails changes the descriptive fields of the task without touching
// its completion state.
func (t *Task) UpdateDetails(name, description string, assigneeID *uint, startDate, dueDate *time.Time) error {
	if len(name) == 0 {
		return fmt.Errorf("task name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("task name exceeds maximum length of 255 characters")
	}
	if startDate != nil && dueDate != nil && dueDate.Before(*startDate) {
		return fmt.Errorf("due date must not be before start date")
	}

	t.name = name
	t.description = description
	t.assigneeID = assigneeID
	t.startDate = startDate
	t.dueDate = dueDate
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the task to the given status, stamping or clearing
// completed_at so it is set exactly when the status is Completada.
func (t *Task) ChangeStatus(status vo.TaskStatus, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid task status: %s", status)
	}

	if status.IsCompleted() && !t.status.IsCompleted() {
		t.completedAt = &now
	} else if !status.IsCompleted() {
		t.completedAt = nil
	}

	t.status = status
	t.updatedAt = now
	return nil
}

// ToggleComplete flips the task between Pendiente and Completada.
func (t *Task) ToggleComplete(now time.Time) {
	if t.status.IsCompleted() {
		t.status = vo.TaskStatusPending
		t.completedAt = nil
	} else {
		t.status = vo.TaskStatusCompleted
		t.completedAt = &now
	}
	t.updatedAt = now
}
