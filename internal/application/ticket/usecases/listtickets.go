package usecases

import (
	"context"

	"norte/internal/domain/ticket"
	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/shared/constants"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status     *string
	Priority   *string
	AssigneeID *uint
	BudgetID   *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets  []TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	taskRepo   ticket.TaskRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	taskRepo ticket.TaskRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.Status != nil && !vo.Status(*query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status filter")
	}
	if query.Priority != nil && !vo.Priority(*query.Priority).IsValid() {
		return nil, errors.NewValidationError("invalid priority filter")
	}

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := ticket.TicketFilter{
		AssigneeID: query.AssigneeID,
		BudgetID:   query.BudgetID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}
	if query.Status != nil {
		status := vo.Status(*query.Status)
		filter.Status = &status
	}
	if query.Priority != nil {
		priority := vo.Priority(*query.Priority)
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		tasks, err := uc.taskRepo.GetByTicketID(ctx, t.ID())
		if err != nil {
			uc.logger.Errorw("failed to load ticket tasks", "ticket_id", t.ID(), "error", err)
			return nil, err
		}
		t.SetTasks(tasks)
		dtos = append(dtos, *ticketToDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  dtos,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
