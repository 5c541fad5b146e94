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

func TestListTicketsUseCase_Execute_ConvertsFilters(t *testing.T) {
	var gotFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	status := vo.StatusInProgress.String()
	priority := vo.PriorityHigh.String()

	useCase := NewListTicketsUseCase(mockRepo, &mockTaskRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		Status:   &status,
		Priority: &priority,
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusInProgress, *gotFilter.Status)
	require.NotNil(t, gotFilter.Priority)
	assert.Equal(t, vo.PriorityHigh, *gotFilter.Priority)
}

func TestListTicketsUseCase_Execute_NoFilters(t *testing.T) {
	var gotFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockTaskRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListTicketsQuery{})

	require.NoError(t, err)
	assert.Nil(t, gotFilter.Status)
	assert.Nil(t, gotFilter.Priority)
}

func TestListTicketsUseCase_Execute_InvalidFilters(t *testing.T) {
	badStatus := "Desconocido"
	badPriority := "Urgentísima"

	tests := []struct {
		name  string
		query ListTicketsQuery
	}{
		{name: "invalid status", query: ListTicketsQuery{Status: &badStatus}},
		{name: "invalid priority", query: ListTicketsQuery{Priority: &badPriority}},
	}

	useCase := NewListTicketsUseCase(&mockTicketRepository{}, &mockTaskRepository{}, &mockLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), tt.query)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
