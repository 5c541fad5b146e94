package usecases

import (
	"time"

	"norte/internal/domain/ticket"
)

type TaskDTO struct {
	ID          uint       `json:"id"`
	TicketID    uint       `json:"ticket_id"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type TicketDTO struct {
	ID             uint       `json:"id"`
	BudgetID       uint       `json:"budget_id"`
	AssigneeID     uint       `json:"assignee_id"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	Instructions   string     `json:"instructions,omitempty"`
	Progress       int        `json:"progress"`
	Tasks          []TaskDTO  `json:"tasks,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func taskToDTO(t *ticket.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID(),
		TicketID:    t.TicketID(),
		AssigneeID:  t.AssigneeID(),
		Name:        t.Name(),
		Description: t.Description(),
		Status:      t.Status().String(),
		StartDate:   t.StartDate(),
		DueDate:     t.DueDate(),
		CompletedAt: t.CompletedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ticketToDTO(t *ticket.Ticket) *TicketDTO {
	tasks := t.Tasks()
	taskDTOs := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		taskDTOs = append(taskDTOs, taskToDTO(task))
	}

	return &TicketDTO{
		ID:             t.ID(),
		BudgetID:       t.BudgetID(),
		AssigneeID:     t.AssigneeID(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		ScheduledStart: t.ScheduledStart(),
		ScheduledEnd:   t.ScheduledEnd(),
		Instructions:   t.Instructions(),
		Progress:       t.Progress(),
		Tasks:          taskDTOs,
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}
