package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateCustomerExecutor interface {
	Execute(ctx context.Context, cmd CreateCustomerCommand) (*CustomerDTO, error)
}

type UpdateCustomerExecutor interface {
	Execute(ctx context.Context, cmd UpdateCustomerCommand) (*CustomerDTO, error)
}

type DeleteCustomerExecutor interface {
	Execute(ctx context.Context, cmd DeleteCustomerCommand) error
}

type GetCustomerExecutor interface {
	Execute(ctx context.Context, query GetCustomerQuery) (*CustomerDTO, error)
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error)
}

type CreateContactExecutor interface {
	Execute(ctx context.Context, cmd CreateContactCommand) (*ContactDTO, error)
}

type UpdateContactExecutor interface {
	Execute(ctx context.Context, cmd UpdateContactCommand) (*ContactDTO, error)
}

type DeleteContactExecutor interface {
	Execute(ctx context.Context, cmd DeleteContactCommand) error
}
