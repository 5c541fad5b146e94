package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/budget"
	apperrors "norte/internal/shared/errors"
)

func reconstructBudget(t *testing.T, id uint) *budget.Budget {
	t.Helper()
	now := time.Now()
	b, err := budget.ReconstructBudget(id, "Obra civil", "Construcción", budget.DefaultStatus, "", "", "Media", 1, 2, 3, "", now, now)
	require.NoError(t, err)
	return b
}

func reconstructConcept(t *testing.T, id, budgetID uint, amount string) *budget.Concept {
	t.Helper()
	now := time.Now()
	c, err := budget.ReconstructConcept(id, budgetID, "Partida", decimal.RequireFromString(amount), now, now)
	require.NoError(t, err)
	return c
}

func reconstructPayment(t *testing.T, id, budgetID uint, amount string) *budget.Payment {
	t.Helper()
	now := time.Now()
	p, err := budget.ReconstructPayment(id, budgetID, decimal.RequireFromString(amount), now, "Transferencia", "", now, now)
	require.NoError(t, err)
	return p
}

func TestGetBudgetUseCase_Execute_ComputesRollup(t *testing.T) {
	b := reconstructBudget(t, 20)

	budgetRepo := &mockBudgetRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*budget.Budget, error) {
			return b, nil
		},
	}
	conceptRepo := &mockConceptRepository{
		GetByBudgetIDFunc: func(ctx context.Context, budgetID uint) ([]*budget.Concept, error) {
			return []*budget.Concept{
				reconstructConcept(t, 1, 20, "1500.50"),
				reconstructConcept(t, 2, 20, "2499.50"),
			}, nil
		},
	}
	paymentRepo := &mockPaymentRepository{
		GetByBudgetIDFunc: func(ctx context.Context, budgetID uint) ([]*budget.Payment, error) {
			return []*budget.Payment{
				reconstructPayment(t, 1, 20, "1000.00"),
			}, nil
		},
	}

	useCase := NewGetBudgetUseCase(budgetRepo, conceptRepo, paymentRepo, &mockLogger{})
	dto, err := useCase.Execute(context.Background(), GetBudgetQuery{BudgetID: 20})

	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.True(t, dto.TotalCost.Equal(decimal.RequireFromString("4000.00")), "got %s", dto.TotalCost)
	assert.True(t, dto.TotalPaid.Equal(decimal.RequireFromString("1000.00")), "got %s", dto.TotalPaid)
	assert.True(t, dto.BalanceDue.Equal(decimal.RequireFromString("3000.00")), "got %s", dto.BalanceDue)
	assert.Len(t, dto.Concepts, 2)
	assert.Len(t, dto.Payments, 1)
}

func TestGetBudgetUseCase_Execute_EmptyCollectionsYieldZeroTotals(t *testing.T) {
	b := reconstructBudget(t, 21)

	budgetRepo := &mockBudgetRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*budget.Budget, error) {
			return b, nil
		},
	}

	useCase := NewGetBudgetUseCase(budgetRepo, &mockConceptRepository{}, &mockPaymentRepository{}, &mockLogger{})
	dto, err := useCase.Execute(context.Background(), GetBudgetQuery{BudgetID: 21})

	require.NoError(t, err)
	assert.True(t, dto.TotalCost.IsZero())
	assert.True(t, dto.TotalPaid.IsZero())
	assert.True(t, dto.BalanceDue.IsZero())
	assert.NotNil(t, dto.Concepts)
	assert.NotNil(t, dto.Payments)
}

func TestGetBudgetUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewGetBudgetUseCase(&mockBudgetRepository{}, &mockConceptRepository{}, &mockPaymentRepository{}, &mockLogger{})
	dto, err := useCase.Execute(context.Background(), GetBudgetQuery{BudgetID: 99})

	require.Error(t, err)
	assert.Nil(t, dto)
	assert.True(t, apperrors.IsNotFoundError(err))
}
