package customer

import "context"

// CustomerFilter describes the supported list filters. Search matches
// name, business name and RFC.
type CustomerFilter struct {
	Active *bool
	Search *string

	Page     int
	PageSize int

	SortBy    string
	SortOrder string
}

type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}

type ContactRepository interface {
	Save(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Contact, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]*Contact, error)
}
