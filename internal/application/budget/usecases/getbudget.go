package usecases

import (
	"context"

	"norte/internal/domain/budget"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type GetBudgetQuery struct {
	BudgetID uint
}

// GetBudgetUseCase loads a budget with its concepts and payments and
// computes the financial rollup for the response.
type GetBudgetUseCase struct {
	budgetRepo  budget.BudgetRepository
	conceptRepo budget.ConceptRepository
	paymentRepo budget.PaymentRepository
	logger      logger.Interface
}

func NewGetBudgetUseCase(
	budgetRepo budget.BudgetRepository,
	conceptRepo budget.ConceptRepository,
	paymentRepo budget.PaymentRepository,
	logger logger.Interface,
) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:  budgetRepo,
		conceptRepo: conceptRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *GetBudgetUseCase) Execute(ctx context.Context, query GetBudgetQuery) (*BudgetDTO, error) {
	if query.BudgetID == 0 {
		return nil, errors.NewValidationError("budget ID is required")
	}

	existing, err := uc.budgetRepo.GetByID(ctx, query.BudgetID)
	if err != nil {
		uc.logger.Errorw("failed to get budget", "budget_id", query.BudgetID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("budget not found")
	}

	concepts, err := uc.conceptRepo.GetByBudgetID(ctx, query.BudgetID)
	if err != nil {
		uc.logger.Errorw("failed to load budget concepts", "budget_id", query.BudgetID, "error", err)
		return nil, err
	}
	existing.SetConcepts(concepts)

	payments, err := uc.paymentRepo.GetByBudgetID(ctx, query.BudgetID)
	if err != nil {
		uc.logger.Errorw("failed to load budget payments", "budget_id", query.BudgetID, "error", err)
		return nil, err
	}
	existing.SetPayments(payments)

	return budgetToDTO(existing), nil
}
