package mappers

import (
	"fmt"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/infrastructure/persistence/models"
)

func TicketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		BudgetID:       t.BudgetID(),
		AssigneeID:     t.AssigneeID(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		ScheduledStart: dateToModel(t.ScheduledStart()),
		ScheduledEnd:   dateToModel(t.ScheduledEnd()),
		Instructions:   t.Instructions(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}
}

// TicketToDomain converts the ticket row only. Tasks are loaded separately
// by the repository.
func TicketToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status := vo.Status(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %s", model.ID, model.Status)
	}
	priority := vo.Priority(model.Priority)
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %s", model.ID, model.Priority)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.BudgetID,
		model.AssigneeID,
		status,
		priority,
		dateToDomain(model.ScheduledStart),
		dateToDomain(model.ScheduledEnd),
		model.Instructions,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func TaskToModel(t *ticket.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:          t.ID(),
		TicketID:    t.TicketID(),
		AssigneeID:  t.AssigneeID(),
		Name:        t.Name(),
		Description: t.Description(),
		Status:      t.Status().String(),
		StartDate:   dateToModel(t.StartDate()),
		DueDate:     dateToModel(t.DueDate()),
		CompletedAt: timeToMillisPtr(t.CompletedAt()),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func TaskToDomain(model *models.TaskModel) (*ticket.Task, error) {
	status := vo.TaskStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status (id=%d): %s", model.ID, model.Status)
	}

	return ticket.ReconstructTask(
		model.ID,
		model.TicketID,
		model.AssigneeID,
		model.Name,
		model.Description,
		status,
		dateToDomain(model.StartDate),
		dateToDomain(model.DueDate),
		millisToTimePtr(model.CompletedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
