package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	apperrors "norte/internal/shared/errors"
)

func TestCreateTaskUseCase_Execute_Success(t *testing.T) {
	tkt := reconstructTicket(t, 10, vo.StatusScheduled)

	var saved *ticket.Task
	taskRepo := &mockTaskRepository{
		SaveFunc: func(ctx context.Context, task *ticket.Task) error {
			if err := task.SetID(7); err != nil {
				return err
			}
			saved = task
			return nil
		},
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Task, error) {
			return []*ticket.Task{saved}, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	useCase := NewCreateTaskUseCase(ticketRepo, taskRepo, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTaskCommand{
		TicketID: 10,
		Name:     "Levantar inventario",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.Task.ID)
	assert.Equal(t, vo.TaskStatusPending.String(), result.Task.Status)
	assert.Equal(t, vo.StatusScheduled.String(), result.TicketStatus)
	assert.Equal(t, 0, result.Progress)
}

func TestCreateTaskUseCase_Execute_NewTaskRegressesCompletedTicket(t *testing.T) {
	// A Completado ticket with no completed tasks left goes back to
	// Programado. A fresh checklist on a completed ticket means zero
	// completed tasks.
	tkt := reconstructTicket(t, 10, vo.StatusCompleted)

	var saved *ticket.Task
	taskRepo := &mockTaskRepository{
		SaveFunc: func(ctx context.Context, task *ticket.Task) error {
			if err := task.SetID(7); err != nil {
				return err
			}
			saved = task
			return nil
		},
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Task, error) {
			return []*ticket.Task{saved}, nil
		},
	}
	var persistedStatus string
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
		UpdateFunc: func(ctx context.Context, updated *ticket.Ticket) error {
			persistedStatus = updated.Status().String()
			return nil
		},
	}

	useCase := NewCreateTaskUseCase(ticketRepo, taskRepo, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTaskCommand{
		TicketID: 10,
		Name:     "Nueva revisión",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusScheduled.String(), result.TicketStatus)
	assert.Equal(t, vo.StatusScheduled.String(), persistedStatus)
}

func TestCreateTaskUseCase_Execute_TicketNotFound(t *testing.T) {
	useCase := NewCreateTaskUseCase(&mockTicketRepository{}, &mockTaskRepository{}, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTaskCommand{TicketID: 99, Name: "x"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateTaskUseCase_Execute_MissingName(t *testing.T) {
	useCase := NewCreateTaskUseCase(&mockTicketRepository{}, &mockTaskRepository{}, &mockTxManager{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTaskCommand{TicketID: 10})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
