package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"norte/internal/shared/logger"
)

type mockCRMStatsRepository struct {
	CountCustomersFunc                          func(ctx context.Context) (int64, error)
	CountCustomersCreatedBetweenFunc            func(ctx context.Context, from, to time.Time) (int64, error)
	CountBudgetsCreatedBetweenFunc              func(ctx context.Context, from, to time.Time) (int64, error)
	CountBudgetsCreatedBetweenWithStatusesFunc  func(ctx context.Context, from, to time.Time, statuses []string) (int64, error)
	CountBudgetsWithStatusFunc                  func(ctx context.Context, status string) (int64, error)
	SumPaymentsBetweenFunc                      func(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumConceptsForBudgetsCreatedBetweenFunc     func(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumPaymentsForBudgetsCreatedBetweenFunc     func(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	BudgetStatusDistributionFunc                func(ctx context.Context, from, to time.Time) ([]StatusCount, error)
	TopServiceTypesFunc                         func(ctx context.Context, from, to time.Time, limit int) ([]ServiceTypeCount, error)
	TopCustomersByPaymentsFunc                  func(ctx context.Context, from, to time.Time, limit int) ([]CustomerPaymentTotal, error)
	PaymentTotalsByDayFunc                      func(ctx context.Context, from, to time.Time) ([]PeriodAmount, error)
	PaymentTotalsByMonthFunc                    func(ctx context.Context, from, to time.Time) ([]PeriodAmount, error)
}

func (m *mockCRMStatsRepository) CountCustomers(ctx context.Context) (int64, error) {
	if m.CountCustomersFunc != nil {
		return m.CountCustomersFunc(ctx)
	}
	return 0, nil
}

func (m *mockCRMStatsRepository) CountCustomersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCustomersCreatedBetweenFunc != nil {
		return m.CountCustomersCreatedBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockCRMStatsRepository) CountBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountBudgetsCreatedBetweenFunc != nil {
		return m.CountBudgetsCreatedBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockCRMStatsRepository) CountBudgetsCreatedBetweenWithStatuses(ctx context.Context, from, to time.Time, statuses []string) (int64, error) {
	if m.CountBudgetsCreatedBetweenWithStatusesFunc != nil {
		return m.CountBudgetsCreatedBetweenWithStatusesFunc(ctx, from, to, statuses)
	}
	return 0, nil
}

func (m *mockCRMStatsRepository) CountBudgetsWithStatus(ctx context.Context, status string) (int64, error) {
	if m.CountBudgetsWithStatusFunc != nil {
		return m.CountBudgetsWithStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockCRMStatsRepository) SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if m.SumPaymentsBetweenFunc != nil {
		return m.SumPaymentsBetweenFunc(ctx, from, to)
	}
	return decimal.Zero, nil
}

func (m *mockCRMStatsRepository) SumConceptsForBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if m.SumConceptsForBudgetsCreatedBetweenFunc != nil {
		return m.SumConceptsForBudgetsCreatedBetweenFunc(ctx, from, to)
	}
	return decimal.Zero, nil
}

func (m *mockCRMStatsRepository) SumPaymentsForBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if m.SumPaymentsForBudgetsCreatedBetweenFunc != nil {
		return m.SumPaymentsForBudgetsCreatedBetweenFunc(ctx, from, to)
	}
	return decimal.Zero, nil
}

func (m *mockCRMStatsRepository) BudgetStatusDistribution(ctx context.Context, from, to time.Time) ([]StatusCount, error) {
	if m.BudgetStatusDistributionFunc != nil {
		return m.BudgetStatusDistributionFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockCRMStatsRepository) TopServiceTypes(ctx context.Context, from, to time.Time, limit int) ([]ServiceTypeCount, error) {
	if m.TopServiceTypesFunc != nil {
		return m.TopServiceTypesFunc(ctx, from, to, limit)
	}
	return nil, nil
}

func (m *mockCRMStatsRepository) TopCustomersByPayments(ctx context.Context, from, to time.Time, limit int) ([]CustomerPaymentTotal, error) {
	if m.TopCustomersByPaymentsFunc != nil {
		return m.TopCustomersByPaymentsFunc(ctx, from, to, limit)
	}
	return nil, nil
}

func (m *mockCRMStatsRepository) PaymentTotalsByDay(ctx context.Context, from, to time.Time) ([]PeriodAmount, error) {
	if m.PaymentTotalsByDayFunc != nil {
		return m.PaymentTotalsByDayFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockCRMStatsRepository) PaymentTotalsByMonth(ctx context.Context, from, to time.Time) ([]PeriodAmount, error) {
	if m.PaymentTotalsByMonthFunc != nil {
		return m.PaymentTotalsByMonthFunc(ctx, from, to)
	}
	return nil, nil
}

type mockTicketStatsRepository struct {
	CountTicketsScheduledBetweenFunc           func(ctx context.Context, from, to time.Time) (int64, error)
	CountTicketsScheduledBetweenWithStatusFunc func(ctx context.Context, from, to time.Time, status string) (int64, error)
	CountOverdueTicketsFunc                    func(ctx context.Context, from, to, now time.Time, notStatus string) (int64, error)
	TicketCountsByDayFunc                      func(ctx context.Context, from, to time.Time) ([]PeriodCount, error)
	TicketCountsByMonthFunc                    func(ctx context.Context, from, to time.Time) ([]PeriodCount, error)
	WorkloadByAssigneeFunc                     func(ctx context.Context, from, to time.Time, limit int) ([]AssigneeCount, error)
	PriorityDistributionFunc                   func(ctx context.Context, from, to time.Time) ([]PriorityCount, error)
	CountTicketsExcludingStatusesFunc          func(ctx context.Context, statuses []string) (int64, error)
	CountTasksExcludingStatusFunc              func(ctx context.Context, status string) (int64, error)
	AssigneesWithPendingTasksFunc              func(ctx context.Context, limit int) ([]AssigneeCount, error)
}

func (m *mockTicketStatsRepository) CountTicketsScheduledBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountTicketsScheduledBetweenFunc != nil {
		return m.CountTicketsScheduledBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockTicketStatsRepository) CountTicketsScheduledBetweenWithStatus(ctx context.Context, from, to time.Time, status string) (int64, error) {
	if m.CountTicketsScheduledBetweenWithStatusFunc != nil {
		return m.CountTicketsScheduledBetweenWithStatusFunc(ctx, from, to, status)
	}
	return 0, nil
}

func (m *mockTicketStatsRepository) CountOverdueTickets(ctx context.Context, from, to, now time.Time, notStatus string) (int64, error) {
	if m.CountOverdueTicketsFunc != nil {
		return m.CountOverdueTicketsFunc(ctx, from, to, now, notStatus)
	}
	return 0, nil
}

func (m *mockTicketStatsRepository) TicketCountsByDay(ctx context.Context, from, to time.Time) ([]PeriodCount, error) {
	if m.TicketCountsByDayFunc != nil {
		return m.TicketCountsByDayFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockTicketStatsRepository) TicketCountsByMonth(ctx context.Context, from, to time.Time) ([]PeriodCount, error) {
	if m.TicketCountsByMonthFunc != nil {
		return m.TicketCountsByMonthFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockTicketStatsRepository) WorkloadByAssignee(ctx context.Context, from, to time.Time, limit int) ([]AssigneeCount, error) {
	if m.WorkloadByAssigneeFunc != nil {
		return m.WorkloadByAssigneeFunc(ctx, from, to, limit)
	}
	return nil, nil
}

func (m *mockTicketStatsRepository) PriorityDistribution(ctx context.Context, from, to time.Time) ([]PriorityCount, error) {
	if m.PriorityDistributionFunc != nil {
		return m.PriorityDistributionFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockTicketStatsRepository) CountTicketsExcludingStatuses(ctx context.Context, statuses []string) (int64, error) {
	if m.CountTicketsExcludingStatusesFunc != nil {
		return m.CountTicketsExcludingStatusesFunc(ctx, statuses)
	}
	return 0, nil
}

func (m *mockTicketStatsRepository) CountTasksExcludingStatus(ctx context.Context, status string) (int64, error) {
	if m.CountTasksExcludingStatusFunc != nil {
		return m.CountTasksExcludingStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockTicketStatsRepository) AssigneesWithPendingTasks(ctx context.Context, limit int) ([]AssigneeCount, error) {
	if m.AssigneesWithPendingTasksFunc != nil {
		return m.AssigneesWithPendingTasksFunc(ctx, limit)
	}
	return nil, nil
}

type mockClock struct {
	NowFunc func() time.Time
}

func (m *mockClock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now()
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
