package usecases

import (
	"context"

	"norte/internal/domain/ticket"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type DeleteTaskCommand struct {
	TaskID uint
}

type DeleteTaskResult struct {
	TicketID     uint
	TicketStatus string
	Progress     int
}

// DeleteTaskUseCase removes a task; the parent status re-derivation runs in
// the same transaction. Deleting the last completed task of a Completado
// ticket sends it back to Programado.
type DeleteTaskUseCase struct {
	ticketRepo ticket.TicketRepository
	taskRepo   ticket.TaskRepository
	txMgr      TransactionManager
	logger     logger.Interface
}

func NewDeleteTaskUseCase(
	ticketRepo ticket.TicketRepository,
	taskRepo ticket.TaskRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	uc.logger.Infow("executing delete task use case", "task_id", cmd.TaskID)

	if cmd.TaskID == 0 {
		return nil, errors.NewValidationError("task ID is required")
	}

	existing, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to get task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	parent, err := uc.ticketRepo.GetByID(ctx, existing.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", existing.TicketID(), "error", err)
		return nil, err
	}
	if parent == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	var result *DeleteTaskResult
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.taskRepo.Delete(txCtx, cmd.TaskID); err != nil {
			return err
		}

		tasks, err := uc.taskRepo.GetByTicketID(txCtx, parent.ID())
		if err != nil {
			return err
		}

		if parent.RefreshStatus(tasks) {
			if err := uc.ticketRepo.Update(txCtx, parent); err != nil {
				return err
			}
		}

		result = &DeleteTaskResult{
			TicketID:     parent.ID(),
			TicketStatus: parent.Status().String(),
			Progress:     ticket.Progress(tasks),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task deleted", "task_id", cmd.TaskID, "ticket_status", result.TicketStatus)
	return result, nil
}
