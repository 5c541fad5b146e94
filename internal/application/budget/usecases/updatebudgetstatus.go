package usecases

import (
	"context"

	"norte/internal/domain/budget"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type UpdateBudgetStatusCommand struct {
	BudgetID uint
	Status   string
}

type UpdateBudgetStatusResult struct {
	BudgetID uint
	Status   string
}

type UpdateBudgetStatusUseCase struct {
	budgetRepo budget.BudgetRepository
	logger     logger.Interface
}

func NewUpdateBudgetStatusUseCase(
	budgetRepo budget.BudgetRepository,
	logger logger.Interface,
) *UpdateBudgetStatusUseCase {
	return &UpdateBudgetStatusUseCase{
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

func (uc *UpdateBudgetStatusUseCase) Execute(ctx context.Context, cmd UpdateBudgetStatusCommand) (*UpdateBudgetStatusResult, error) {
	uc.logger.Infow("executing update budget status use case", "budget_id", cmd.BudgetID, "status", cmd.Status)

	if cmd.BudgetID == 0 {
		return nil, errors.NewValidationError("budget ID is required")
	}

	existing, err := uc.budgetRepo.GetByID(ctx, cmd.BudgetID)
	if err != nil {
		uc.logger.Errorw("failed to get budget", "budget_id", cmd.BudgetID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("budget not found")
	}

	if err := existing.ChangeStatus(cmd.Status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.budgetRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update budget status", "budget_id", cmd.BudgetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("budget status updated", "budget_id", existing.ID(), "status", existing.Status())

	return &UpdateBudgetStatusResult{
		BudgetID: existing.ID(),
		Status:   existing.Status(),
	}, nil
}
