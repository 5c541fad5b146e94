package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	apperrors "norte/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			if err := tkt.SetID(100); err != nil {
				return err
			}
			savedTicket = tkt
			return nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		BudgetID:   5,
		AssigneeID: 2,
		Priority:   string(vo.PriorityHigh),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(100), result.TicketID)
	assert.Equal(t, vo.StatusScheduled.String(), result.Status)

	require.NotNil(t, savedTicket)
	assert.Equal(t, uint(5), savedTicket.BudgetID())
	assert.Equal(t, vo.PriorityHigh, savedTicket.Priority())
}

func TestCreateTicketUseCase_Execute_DefaultsPriority(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(101)
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		BudgetID:   5,
		AssigneeID: 2,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name:    "missing budget",
			command: CreateTicketCommand{AssigneeID: 2},
		},
		{
			name:    "missing assignee",
			command: CreateTicketCommand{BudgetID: 5},
		},
		{
			name:    "invalid priority",
			command: CreateTicketCommand{BudgetID: 5, AssigneeID: 2, Priority: "Urgente"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	repoErr := errors.New("database unavailable")
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return repoErr
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		BudgetID:   5,
		AssigneeID: 2,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repoErr)
}
