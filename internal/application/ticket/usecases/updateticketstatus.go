package usecases

import (
	"context"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	TicketID uint
	Status   string
}

type UpdateTicketStatusResult struct {
	TicketID uint
	Status   string
}

// UpdateTicketStatusUseCase applies a manual status change. Any valid
// status may be set here; the derivation rule only runs on task mutations.
type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error) {
	uc.logger.Infow("executing update ticket status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !vo.Status(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status")
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := existing.ChangeStatus(vo.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status updated", "ticket_id", existing.ID(), "status", existing.Status())

	return &UpdateTicketStatusResult{
		TicketID: existing.ID(),
		Status:   existing.Status().String(),
	}, nil
}
