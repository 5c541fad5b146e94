package ticket

import (
	"context"

	vo "norte/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	AssigneeID *uint
	BudgetID   *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, taskID uint) error
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Task, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
