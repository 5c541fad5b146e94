package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateBudgetExecutor interface {
	Execute(ctx context.Context, cmd CreateBudgetCommand) (*BudgetDTO, error)
}

type UpdateBudgetExecutor interface {
	Execute(ctx context.Context, cmd UpdateBudgetCommand) (*BudgetDTO, error)
}

type UpdateBudgetStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateBudgetStatusCommand) (*UpdateBudgetStatusResult, error)
}

type DeleteBudgetExecutor interface {
	Execute(ctx context.Context, cmd DeleteBudgetCommand) error
}

type GetBudgetExecutor interface {
	Execute(ctx context.Context, query GetBudgetQuery) (*BudgetDTO, error)
}

type ListBudgetsExecutor interface {
	Execute(ctx context.Context, query ListBudgetsQuery) (*ListBudgetsResult, error)
}

type AddPaymentExecutor interface {
	Execute(ctx context.Context, cmd AddPaymentCommand) (*PaymentDTO, error)
}

type DeletePaymentExecutor interface {
	Execute(ctx context.Context, cmd DeletePaymentCommand) error
}
