package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type StatusCount struct {
	Status string
	Total  int64
}

type ServiceTypeCount struct {
	ServiceType string
	Total       int64
}

type PriorityCount struct {
	Priority string
	Total    int64
}

type CustomerPaymentTotal struct {
	CustomerID uint
	Name       string
	TotalPaid  decimal.Decimal
}

type AssigneeCount struct {
	UserID uint
	Name   string
	Total  int64
}

type PeriodAmount struct {
	Period time.Time
	Amount decimal.Decimal
}

type PeriodCount struct {
	Period time.Time
	Total  int64
}

// CRMStatsRepository is the read model behind the CRM dashboard. All range
// bounds are inclusive.
type CRMStatsRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountCustomersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountBudgetsCreatedBetweenWithStatuses(ctx context.Context, from, to time.Time, statuses []string) (int64, error)
	CountBudgetsWithStatus(ctx context.Context, status string) (int64, error)
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumConceptsForBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumPaymentsForBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	BudgetStatusDistribution(ctx context.Context, from, to time.Time) ([]StatusCount, error)
	TopServiceTypes(ctx context.Context, from, to time.Time, limit int) ([]ServiceTypeCount, error)
	TopCustomersByPayments(ctx context.Context, from, to time.Time, limit int) ([]CustomerPaymentTotal, error)
	PaymentTotalsByDay(ctx context.Context, from, to time.Time) ([]PeriodAmount, error)
	PaymentTotalsByMonth(ctx context.Context, from, to time.Time) ([]PeriodAmount, error)
}

// TicketStatsRepository is the read model behind the service dashboard.
// Period filters apply to the scheduled start date unless noted.
type TicketStatsRepository interface {
	CountTicketsScheduledBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountTicketsScheduledBetweenWithStatus(ctx context.Context, from, to time.Time, status string) (int64, error)
	// CountOverdueTickets counts tickets whose scheduled end falls in the
	// range, is already past, and whose status is not the given one.
	CountOverdueTickets(ctx context.Context, from, to, now time.Time, notStatus string) (int64, error)
	TicketCountsByDay(ctx context.Context, from, to time.Time) ([]PeriodCount, error)
	TicketCountsByMonth(ctx context.Context, from, to time.Time) ([]PeriodCount, error)
	WorkloadByAssignee(ctx context.Context, from, to time.Time, limit int) ([]AssigneeCount, error)
	PriorityDistribution(ctx context.Context, from, to time.Time) ([]PriorityCount, error)
	CountTicketsExcludingStatuses(ctx context.Context, statuses []string) (int64, error)
	CountTasksExcludingStatus(ctx context.Context, status string) (int64, error)
	AssigneesWithPendingTasks(ctx context.Context, limit int) ([]AssigneeCount, error)
}

type GetCRMAnalyticsExecutor interface {
	Execute(ctx context.Context, query AnalyticsQuery) (*CRMAnalyticsDTO, error)
}

type GetTicketAnalyticsExecutor interface {
	Execute(ctx context.Context, query AnalyticsQuery) (*TicketAnalyticsDTO, error)
}
