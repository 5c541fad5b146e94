package usecases

import (
	"context"

	"norte/internal/domain/customer"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type DeleteCustomerCommand struct {
	CustomerID uint
}

// DeleteCustomerUseCase removes a customer and its contacts in one
// transaction.
type DeleteCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	contactRepo  customer.ContactRepository
	txMgr        TransactionManager
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(
	customerRepo customer.CustomerRepository,
	contactRepo customer.ContactRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, cmd DeleteCustomerCommand) error {
	uc.logger.Infow("executing delete customer use case", "customer_id", cmd.CustomerID)

	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer ID is required")
	}

	existing, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "customer_id", cmd.CustomerID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("customer not found")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		contacts, err := uc.contactRepo.GetByCustomerID(txCtx, cmd.CustomerID)
		if err != nil {
			return err
		}
		for _, contact := range contacts {
			if err := uc.contactRepo.Delete(txCtx, contact.ID()); err != nil {
				return err
			}
		}
		return uc.customerRepo.Delete(txCtx, cmd.CustomerID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete customer", "customer_id", cmd.CustomerID, "error", err)
		return err
	}

	uc.logger.Infow("customer deleted", "customer_id", cmd.CustomerID)
	return nil
}
