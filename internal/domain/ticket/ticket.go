package ticket

import (
	"fmt"
	"time"

	vo "norte/internal/domain/ticket/valueobjects"
)

// Ticket is an operational work order generated from an accepted budget. Its
// status is partly derived: task mutations drive it through DeriveStatus,
// while operators may park it in a manual status at any time.
type Ticket struct {
	id             uint
	budgetID       uint
	assigneeID     uint
	status         vo.Status
	priority       vo.Priority
	scheduledStart *time.Time
	scheduledEnd   *time.Time
	instructions   string
	createdAt      time.Time
	updatedAt      time.Time
	tasks          []*Task
}

func NewTicket(
	budgetID uint,
	assigneeID uint,
	priority vo.Priority,
	scheduledStart, scheduledEnd *time.Time,
	instructions string,
) (*Ticket, error) {
	if budgetID == 0 {
		return nil, fmt.Errorf("budget ID is required")
	}
	if assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if scheduledStart != nil && scheduledEnd != nil && scheduledEnd.Before(*scheduledStart) {
		return nil, fmt.Errorf("scheduled end must not be before scheduled start")
	}

	now := time.Now()
	return &Ticket{
		budgetID:       budgetID,
		assigneeID:     assigneeID,
		status:         vo.StatusScheduled,
		priority:       priority,
		scheduledStart: scheduledStart,
		scheduledEnd:   scheduledEnd,
		instructions:   instructions,
		createdAt:      now,
		updatedAt:      now,
		tasks:          []*Task{},
	}, nil
}

func ReconstructTicket(
	id uint,
	budgetID uint,
	assigneeID uint,
	status vo.Status,
	priority vo.Priority,
	scheduledStart, scheduledEnd *time.Time,
	instructions string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if budgetID == 0 {
		return nil, fmt.Errorf("budget ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:             id,
		budgetID:       budgetID,
		assigneeID:     assigneeID,
		status:         status,
		priority:       priority,
		scheduledStart: scheduledStart,
		scheduledEnd:   scheduledEnd,
		instructions:   instructions,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		tasks:          []*Task{},
	}, nil
}

func (t *Ticket) ID() uint                   { return t.id }
func (t *Ticket) BudgetID() uint             { return t.budgetID }
func (t *Ticket) AssigneeID() uint           { return t.assigneeID }
func (t *Ticket) Status() vo.Status          { return t.status }
func (t *Ticket) Priority() vo.Priority      { return t.priority }
func (t *Ticket) ScheduledStart() *time.Time { return t.scheduledStart }
func (t *Ticket) ScheduledEnd() *time.Time   { return t.scheduledEnd }
func (t *Ticket) Instructions() string       { return t.instructions }
func (t *Ticket) CreatedAt() time.Time       { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time       { return t.updatedAt }

func (t *Ticket) Tasks() []*Task {
	tasksCopy := make([]*Task, len(t.tasks))
	copy(tasksCopy, t.tasks)
	return tasksCopy
}

// SetTasks attaches the loaded checklist. Used by repositories when
// reconstructing the aggregate.
func (t *Ticket) SetTasks(tasks []*Task) {
	if tasks == nil {
		tasks = []*Task{}
	}
	t.tasks = tasks
}

// Progress returns the checklist completion percentage, always recomputed
// from the loaded tasks and never persisted.
func (t *Ticket) Progress() int {
	return Progress(t.tasks)
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus sets a status directly from an operator action. Any valid
// status may be chosen here, including the manual ones the derivation rule
// never produces.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// RefreshStatus re-derives the status from the given task set and reports
// whether it changed. Callers persist the ticket when it did, inside the same
// transaction as the task mutation that triggered the refresh.
func (t *Ticket) RefreshStatus(tasks []*Task) bool {
	derived := DeriveStatus(t.status, tasks)
	if derived == t.status {
		return false
	}

	t.status = derived
	t.updatedAt = time.Now()
	return true
}

// UpdateDetails changes assignee, priority, window and instructions.
func (t *Ticket) UpdateDetails(
	assigneeID uint,
	priority vo.Priority,
	scheduledStart, scheduledEnd *time.Time,
	instructions string,
) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID is required")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if scheduledStart != nil && scheduledEnd != nil && scheduledEnd.Before(*scheduledStart) {
		return fmt.Errorf("scheduled end must not be before scheduled start")
	}

	t.assigneeID = assigneeID
	t.priority = priority
	t.scheduledStart = scheduledStart
	t.scheduledEnd = scheduledEnd
	t.instructions = instructions
	t.updatedAt = time.Now()
	return nil
}
