package usecases

import (
	"context"
	"time"

	"norte/internal/domain/ticket"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type CreateTaskCommand struct {
	TicketID    uint
	Name        string
	Description string
	AssigneeID  *uint
	StartDate   *time.Time
	DueDate     *time.Time
}

// TaskResult carries the mutated task plus the parent ticket status after
// re-derivation, so clients can refresh both without a second round trip.
type TaskResult struct {
	Task         TaskDTO
	TicketStatus string
	Progress     int
}

// CreateTaskUseCase adds a task to a ticket's checklist. The write and the
// parent status re-derivation commit or roll back together.
type CreateTaskUseCase struct {
	ticketRepo ticket.TicketRepository
	taskRepo   ticket.TaskRepository
	txMgr      TransactionManager
	logger     logger.Interface
}

func NewCreateTaskUseCase(
	ticketRepo ticket.TicketRepository,
	taskRepo ticket.TaskRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*TaskResult, error) {
	uc.logger.Infow("executing create task use case", "ticket_id", cmd.TicketID, "name", cmd.Name)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("task name is required")
	}

	parent, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if parent == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	newTask, err := ticket.NewTask(cmd.TicketID, cmd.Name, cmd.Description, cmd.AssigneeID, cmd.StartDate, cmd.DueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *TaskResult
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.taskRepo.Save(txCtx, newTask); err != nil {
			return err
		}

		tasks, err := uc.taskRepo.GetByTicketID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if parent.RefreshStatus(tasks) {
			if err := uc.ticketRepo.Update(txCtx, parent); err != nil {
				return err
			}
		}

		result = &TaskResult{
			Task:         taskToDTO(newTask),
			TicketStatus: parent.Status().String(),
			Progress:     ticket.Progress(tasks),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create task", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task created", "ticket_id", cmd.TicketID, "task_id", newTask.ID(), "ticket_status", result.TicketStatus)
	return result, nil
}
