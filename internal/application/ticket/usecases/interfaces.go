package usecases

import "context"

// TransactionManager runs a function inside a database transaction. The
// shared db package provides the gorm-backed implementation.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketDTO, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type CreateTaskExecutor interface {
	Execute(ctx context.Context, cmd CreateTaskCommand) (*TaskResult, error)
}

type UpdateTaskExecutor interface {
	Execute(ctx context.Context, cmd UpdateTaskCommand) (*TaskResult, error)
}

type ToggleTaskExecutor interface {
	Execute(ctx context.Context, cmd ToggleTaskCommand) (*TaskResult, error)
}

type DeleteTaskExecutor interface {
	Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error)
}
