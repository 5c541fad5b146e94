package usecases

import (
	"context"
	"time"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/shared/biztime"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type UpdateTaskCommand struct {
	TaskID      uint
	Name        string
	Description string
	Status      string
	AssigneeID  *uint
	StartDate   *time.Time
	DueDate     *time.Time
}

type UpdateTaskUseCase struct {
	ticketRepo ticket.TicketRepository
	taskRepo   ticket.TaskRepository
	txMgr      TransactionManager
	clock      biztime.Clock
	logger     logger.Interface
}

func NewUpdateTaskUseCase(
	ticketRepo ticket.TicketRepository,
	taskRepo ticket.TaskRepository,
	txMgr TransactionManager,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		txMgr:      txMgr,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*TaskResult, error) {
	uc.logger.Infow("executing update task use case", "task_id", cmd.TaskID)

	if cmd.TaskID == 0 {
		return nil, errors.NewValidationError("task ID is required")
	}
	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("task name is required")
	}
	if cmd.Status != "" && !vo.TaskStatus(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid task status")
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

	if err := existing.UpdateDetails(cmd.Name, cmd.Description, cmd.AssigneeID, cmd.StartDate, cmd.DueDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Status != "" {
		if err := existing.ChangeStatus(vo.TaskStatus(cmd.Status), uc.clock.Now()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

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
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task updated", "task_id", cmd.TaskID, "ticket_status", result.TicketStatus)
	return result, nil
}
