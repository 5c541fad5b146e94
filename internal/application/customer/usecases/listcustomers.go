package usecases

import (
	"context"

	"norte/internal/domain/customer"
	"norte/internal/shared/constants"
	"norte/internal/shared/logger"
)

type ListCustomersQuery struct {
	Active    *bool
	Search    *string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListCustomersResult struct {
	Customers []CustomerDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListCustomersUseCase struct {
	customerRepo customer.CustomerRepository
	contactRepo  customer.ContactRepository
	logger       logger.Interface
}

func NewListCustomersUseCase(
	customerRepo customer.CustomerRepository,
	contactRepo customer.ContactRepository,
	logger logger.Interface,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	customers, total, err := uc.customerRepo.List(ctx, customer.CustomerFilter{
		Active:    query.Active,
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	})
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}

	dtos := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		contacts, err := uc.contactRepo.GetByCustomerID(ctx, c.ID())
		if err != nil {
			uc.logger.Errorw("failed to load customer contacts", "customer_id", c.ID(), "error", err)
			return nil, err
		}
		c.SetContacts(contacts)
		dtos = append(dtos, *customerToDTO(c))
	}

	return &ListCustomersResult{
		Customers: dtos,
		Total:     total,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}, nil
}
