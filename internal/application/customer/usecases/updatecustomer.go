package usecases

import (
	"context"

	"norte/internal/domain/customer"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type UpdateCustomerCommand struct {
	CustomerID       uint
	Name             string
	BusinessName     string
	RFC              string
	PaymentCondition string
	PaymentMethod    string
	InvoiceUsage     string
	Currency         string
	Active           *bool
}

type UpdateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	contactRepo  customer.ContactRepository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.CustomerRepository,
	contactRepo customer.ContactRepository,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*CustomerDTO, error) {
	uc.logger.Infow("executing update customer use case", "customer_id", cmd.CustomerID)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	existing, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	if err := existing.UpdateDetails(
		cmd.Name,
		cmd.BusinessName,
		cmd.RFC,
		cmd.PaymentCondition,
		cmd.PaymentMethod,
		cmd.InvoiceUsage,
		cmd.Currency,
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Active != nil {
		if *cmd.Active {
			existing.Activate()
		} else {
			existing.Deactivate()
		}
	}

	if err := uc.customerRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	contacts, err := uc.contactRepo.GetByCustomerID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to load customer contacts", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}
	existing.SetContacts(contacts)

	uc.logger.Infow("customer updated successfully", "customer_id", existing.ID())
	return customerToDTO(existing), nil
}
