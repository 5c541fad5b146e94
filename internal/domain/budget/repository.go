package budget

import "context"

// BudgetFilter describes the supported list filters. Nil fields are not
// applied.
type BudgetFilter struct {
	Status      *string
	Priority    *string
	CustomerID  *uint
	ResponsibleID *uint
	Search      *string

	Page     int
	PageSize int

	SortBy    string
	SortOrder string
}

// BudgetRepository persists budget aggregates. GetByID and List load the
// concept and payment collections so totals can be computed.
type BudgetRepository interface {
	Save(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Budget, error)
	List(ctx context.Context, filter BudgetFilter) ([]*Budget, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// ConceptRepository persists budget line items.
type ConceptRepository interface {
	Save(ctx context.Context, concept *Concept) error
	GetByBudgetID(ctx context.Context, budgetID uint) ([]*Concept, error)
	DeleteByBudgetID(ctx context.Context, budgetID uint) error
}

// PaymentRepository persists budget payments.
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetByBudgetID(ctx context.Context, budgetID uint) ([]*Payment, error)
}
