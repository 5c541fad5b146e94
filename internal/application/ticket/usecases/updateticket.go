package usecases

import (
	"context"
	"time"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID       uint
	AssigneeID     uint
	Priority       string
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	Instructions   string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	taskRepo   ticket.TaskRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	taskRepo ticket.TaskRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return nil, errors.NewValidationError("invalid priority")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	priority := existing.Priority()
	if cmd.Priority != "" {
		priority = vo.Priority(cmd.Priority)
	}

	if err := existing.UpdateDetails(cmd.AssigneeID, priority, cmd.ScheduledStart, cmd.ScheduledEnd, cmd.Instructions); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	tasks, err := uc.taskRepo.GetByTicketID(ctx, existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket tasks", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	existing.SetTasks(tasks)

	uc.logger.Infow("ticket updated successfully", "ticket_id", existing.ID())
	return ticketToDTO(existing), nil
}
