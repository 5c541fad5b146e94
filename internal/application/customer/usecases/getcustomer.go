package usecases

import (
	"context"

	"norte/internal/domain/customer"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type GetCustomerQuery struct {
	CustomerID uint
}

type GetCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	contactRepo  customer.ContactRepository
	logger       logger.Interface
}

func NewGetCustomerUseCase(
	customerRepo customer.CustomerRepository,
	contactRepo customer.ContactRepository,
	logger logger.Interface,
) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*CustomerDTO, error) {
	if query.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	existing, err := uc.customerRepo.GetByID(ctx, query.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "customer_id", query.CustomerID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	contacts, err := uc.contactRepo.GetByCustomerID(ctx, query.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to load customer contacts", "customer_id", query.CustomerID, "error", err)
		return nil, err
	}
	existing.SetContacts(contacts)

	return customerToDTO(existing), nil
}
