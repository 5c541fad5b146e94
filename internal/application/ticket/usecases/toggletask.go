package usecases

import (
	"context"

	"norte/internal/domain/ticket"
	"norte/internal/shared/biztime"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type ToggleTaskCommand struct {
	TaskID uint
}

// ToggleTaskUseCase flips a task between Completada and Pendiente, then
// re-derives the parent ticket status in the same transaction. This backs
// the one-click checkbox in the checklist UI.
type ToggleTaskUseCase struct {
	ticketRepo ticket.TicketRepository
	taskRepo   ticket.TaskRepository
	txMgr      TransactionManager
	clock      biztime.Clock
	logger     logger.Interface
}

func NewToggleTaskUseCase(
	ticketRepo ticket.TicketRepository,
	taskRepo ticket.TaskRepository,
	txMgr TransactionManager,
	clock biztime.Clock,
	logger logger.Interface,
) *ToggleTaskUseCase {
	return &ToggleTaskUseCase{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		txMgr:      txMgr,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *ToggleTaskUseCase) Execute(ctx context.Context, cmd ToggleTaskCommand) (*TaskResult, error) {
	uc.logger.Infow("executing toggle task use case", "task_id", cmd.TaskID)

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

	existing.ToggleComplete(uc.clock.Now())

	var result *TaskResult
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.taskRepo.Update(txCtx, existing); err != nil {
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

		result = &TaskResult{
			Task:         taskToDTO(existing),
			TicketStatus: parent.Status().String(),
			Progress:     ticket.Progress(tasks),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to toggle task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task toggled", "task_id", cmd.TaskID, "task_status", result.Task.Status, "ticket_status", result.TicketStatus)
	return result, nil
}
