package usecases

import (
	"context"
	"time"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type CreateTicketCommand struct {
	BudgetID       uint
	AssigneeID     uint
	Priority       string
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	Instructions   string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "budget_id", cmd.BudgetID, "assignee_id", cmd.AssigneeID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	newTicket, err := ticket.NewTicket(
		cmd.BudgetID,
		cmd.AssigneeID,
		priority,
		cmd.ScheduledStart,
		cmd.ScheduledEnd,
		cmd.Instructions,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.BudgetID == 0 {
		return errors.NewValidationError("budget ID is required")
	}

	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}

	if cmd.Priority != "" {
		priority := vo.Priority(cmd.Priority)
		if !priority.IsValid() {
			return errors.NewValidationError("invalid priority")
		}
	}

	if cmd.ScheduledStart != nil && cmd.ScheduledEnd != nil && cmd.ScheduledEnd.Before(*cmd.ScheduledStart) {
		return errors.NewValidationError("scheduled end must not be before scheduled start")
	}

	return nil
}
