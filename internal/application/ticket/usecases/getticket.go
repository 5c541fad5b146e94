package usecases

import (
	"context"

	"norte/internal/domain/ticket"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	taskRepo   ticket.TaskRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	taskRepo ticket.TaskRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	tasks, err := uc.taskRepo.GetByTicketID(ctx, existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket tasks", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	existing.SetTasks(tasks)

	return ticketToDTO(existing), nil
}
