package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"norte/internal/domain/budget"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type ConceptInput struct {
	Concept string
	Amount  decimal.Decimal
}

type CreateBudgetCommand struct {
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

// CreateBudgetUseCase creates a budget together with its initial line
// items in one transaction.
type CreateBudgetUseCase struct {
	budgetRepo  budget.BudgetRepository
	conceptRepo budget.ConceptRepository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewCreateBudgetUseCase(
	budgetRepo budget.BudgetRepository,
	conceptRepo budget.ConceptRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:  budgetRepo,
		conceptRepo: conceptRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *CreateBudgetUseCase) Execute(ctx context.Context, cmd CreateBudgetCommand) (*BudgetDTO, error) {
	uc.logger.Infow("executing create budget use case", "name", cmd.Name, "customer_id", cmd.CustomerID)

	newBudget, err := budget.NewBudget(
		cmd.Name,
		cmd.ServiceType,
		cmd.ResponsibleID,
		cmd.CustomerID,
		cmd.CustomerContactID,
		cmd.Description,
		cmd.Duration,
		cmd.Priority,
		cmd.Branch,
	)
	if err != nil {
		uc.logger.Errorw("invalid create budget command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	concepts := make([]*budget.Concept, 0, len(cmd.Concepts))
	for _, in := range cmd.Concepts {
		concept, err := budget.NewConcept(0, in.Concept, in.Amount)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		concepts = append(concepts, concept)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.budgetRepo.Save(txCtx, newBudget); err != nil {
			return err
		}
		for _, concept := range concepts {
			concept.SetBudgetID(newBudget.ID())
			if err := uc.conceptRepo.Save(txCtx, concept); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save budget", "error", err)
		return nil, err
	}

	newBudget.SetConcepts(concepts)

	uc.logger.Infow("budget created successfully", "budget_id", newBudget.ID())
	return budgetToDTO(newBudget), nil
}
