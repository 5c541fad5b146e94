package usecases

import (
	"context"

	"norte/internal/domain/budget"
	"norte/internal/shared/constants"
	"norte/internal/shared/logger"
)

type ListBudgetsQuery struct {
	Status        *string
	Priority      *string
	CustomerID    *uint
	ResponsibleID *uint
	Search        *string
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type ListBudgetsResult struct {
	Budgets  []BudgetDTO
	Total    int64
	Page     int
	PageSize int
}

type ListBudgetsUseCase struct {
	budgetRepo budget.BudgetRepository
	logger     logger.Interface
}

func NewListBudgetsUseCase(
	budgetRepo budget.BudgetRepository,
	logger logger.Interface,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

func (uc *ListBudgetsUseCase) Execute(ctx context.Context, query ListBudgetsQuery) (*ListBudgetsResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := budget.BudgetFilter{
		Status:        query.Status,
		Priority:      query.Priority,
		CustomerID:    query.CustomerID,
		ResponsibleID: query.ResponsibleID,
		Search:        query.Search,
		Page:          query.Page,
		PageSize:      query.PageSize,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
	}

	budgets, total, err := uc.budgetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list budgets", "error", err)
		return nil, err
	}

	dtos := make([]BudgetDTO, 0, len(budgets))
	for _, b := range budgets {
		dtos = append(dtos, *budgetToDTO(b))
	}

	return &ListBudgetsResult{
		Budgets:  dtos,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
