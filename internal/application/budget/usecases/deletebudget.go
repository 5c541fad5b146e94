package usecases

import (
	"context"

	"norte/internal/domain/budget"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type DeleteBudgetCommand struct {
	BudgetID uint
}

// DeleteBudgetUseCase removes a budget with its concepts in one
// transaction. Payment rows cascade at the database level.
type DeleteBudgetUseCase struct {
	budgetRepo  budget.BudgetRepository
	conceptRepo budget.ConceptRepository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewDeleteBudgetUseCase(
	budgetRepo budget.BudgetRepository,
	conceptRepo budget.ConceptRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo:  budgetRepo,
		conceptRepo: conceptRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, cmd DeleteBudgetCommand) error {
	uc.logger.Infow("executing delete budget use case", "budget_id", cmd.BudgetID)

	if cmd.BudgetID == 0 {
		return errors.NewValidationError("budget ID is required")
	}

	existing, err := uc.budgetRepo.GetByID(ctx, cmd.BudgetID)
	if err != nil {
		uc.logger.Errorw("failed to get budget", "budget_id", cmd.BudgetID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("budget not found")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.conceptRepo.DeleteByBudgetID(txCtx, cmd.BudgetID); err != nil {
			return err
		}
		return uc.budgetRepo.Delete(txCtx, cmd.BudgetID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete budget", "budget_id", cmd.BudgetID, "error", err)
		return err
	}

	uc.logger.Infow("budget deleted", "budget_id", cmd.BudgetID)
	return nil
}
