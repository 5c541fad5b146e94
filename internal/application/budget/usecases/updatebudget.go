package usecases

import (
	"context"

	"norte/internal/domain/budget"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type UpdateBudgetCommand struct {
	BudgetID          uint
	Name              string
	ServiceType       string
	Description       string
	Duration          string
	Priority          string
	ResponsibleID     uint
	CustomerID        uint
	CustomerContactID uint
	Branch            string
	Concepts          []ConceptInput
}

// UpdateBudgetUseCase updates a budget and replaces its line items
// wholesale. Old concepts are deleted and the submitted set inserted inside
// one transaction, so a failure leaves the previous list intact.
type UpdateBudgetUseCase struct {
	budgetRepo  budget.BudgetRepository
	conceptRepo budget.ConceptRepository
	paymentRepo budget.PaymentRepository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewUpdateBudgetUseCase(
	budgetRepo budget.BudgetRepository,
	conceptRepo budget.ConceptRepository,
	paymentRepo budget.PaymentRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:  budgetRepo,
		conceptRepo: conceptRepo,
		paymentRepo: paymentRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, cmd UpdateBudgetCommand) (*BudgetDTO, error) {
	uc.logger.Infow("executing update budget use case", "budget_id", cmd.BudgetID)

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

	if err := existing.UpdateDetails(
		cmd.Name,
		cmd.ServiceType,
		cmd.ResponsibleID,
		cmd.CustomerID,
		cmd.CustomerContactID,
		cmd.Description,
		cmd.Duration,
		cmd.Priority,
		cmd.Branch,
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	concepts := make([]*budget.Concept, 0, len(cmd.Concepts))
	for _, in := range cmd.Concepts {
		concept, err := budget.NewConcept(cmd.BudgetID, in.Concept, in.Amount)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		concepts = append(concepts, concept)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.budgetRepo.Update(txCtx, existing); err != nil {
			return err
		}
		if err := uc.conceptRepo.DeleteByBudgetID(txCtx, cmd.BudgetID); err != nil {
			return err
		}
		for _, concept := range concepts {
			if err := uc.conceptRepo.Save(txCtx, concept); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update budget", "budget_id", cmd.BudgetID, "error", err)
		return nil, err
	}

	existing.SetConcepts(concepts)

	payments, err := uc.paymentRepo.GetByBudgetID(ctx, cmd.BudgetID)
	if err != nil {
		uc.logger.Errorw("failed to load budget payments", "budget_id", cmd.BudgetID, "error", err)
		return nil, err
	}
	existing.SetPayments(payments)

	uc.logger.Infow("budget updated successfully", "budget_id", existing.ID())
	return budgetToDTO(existing), nil
}
