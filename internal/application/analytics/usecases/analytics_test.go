package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "norte/internal/shared/errors"
)

func fixedClock(t time.Time) *mockClock {
	return &mockClock{NowFunc: func() time.Time { return t }}
}

func TestGetCRMAnalyticsUseCase_Execute(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	repo := &mockCRMStatsRepository{
		CountCustomersFunc: func(ctx context.Context) (int64, error) { return 40, nil },
		CountCustomersCreatedBetweenFunc: func(ctx context.Context, from, to time.Time) (int64, error) {
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, 31, to.Day())
			return 3, nil
		},
		CountBudgetsCreatedBetweenFunc: func(ctx context.Context, from, to time.Time) (int64, error) {
			return 8, nil
		},
		CountBudgetsCreatedBetweenWithStatusesFunc: func(ctx context.Context, from, to time.Time, statuses []string) (int64, error) {
			assert.Contains(t, statuses, "Facturado")
			assert.Contains(t, statuses, "Pagado")
			return 2, nil
		},
		CountBudgetsWithStatusFunc: func(ctx context.Context, status string) (int64, error) {
			assert.Equal(t, "Trabajo en proceso", status)
			return 5, nil
		},
		SumPaymentsBetweenFunc: func(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
			return decimal.NewFromFloat(1500.50), nil
		},
		SumConceptsForBudgetsCreatedBetweenFunc: func(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(5000), nil
		},
		SumPaymentsForBudgetsCreatedBetweenFunc: func(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(1200), nil
		},
	}

	uc := NewGetCRMAnalyticsUseCase(repo, fixedClock(now), &mockLogger{})
	result, err := uc.Execute(context.Background(), AnalyticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(40), result.TotalCustomers)
	assert.Equal(t, int64(3), result.NewCustomers)
	assert.Equal(t, int64(8), result.TotalBudgets)
	assert.Equal(t, int64(2), result.WonBudgets)
	assert.Equal(t, 25.0, result.ConversionRate)
	assert.True(t, result.TotalRevenue.Equal(decimal.NewFromFloat(1500.50)))
	assert.True(t, result.PendingBalance.Equal(decimal.NewFromInt(3800)))
	assert.Equal(t, int64(5), result.ActiveProjects)
	// March has 31 daily buckets.
	assert.Len(t, result.Income.Labels, 31)
	assert.Equal(t, "01/03", result.Income.Labels[0])
}

func TestGetCRMAnalyticsUseCase_Execute_IncomeSeriesZeroFilled(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &mockCRMStatsRepository{
		PaymentTotalsByDayFunc: func(ctx context.Context, from, to time.Time) ([]PeriodAmount, error) {
			return []PeriodAmount{{Period: day, Amount: decimal.NewFromInt(300)}}, nil
		},
	}

	uc := NewGetCRMAnalyticsUseCase(repo, fixedClock(day), &mockLogger{})
	result, err := uc.Execute(context.Background(), AnalyticsQuery{
		From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, result.Income.Data, 3)
	assert.True(t, result.Income.Data[0].IsZero())
	assert.True(t, result.Income.Data[1].Equal(decimal.NewFromInt(300)))
	assert.True(t, result.Income.Data[2].IsZero())
}

func TestGetCRMAnalyticsUseCase_Execute_MonthlyBucketsForLongRanges(t *testing.T) {
	var monthlyCalled bool
	repo := &mockCRMStatsRepository{
		PaymentTotalsByMonthFunc: func(ctx context.Context, from, to time.Time) ([]PeriodAmount, error) {
			monthlyCalled = true
			return nil, nil
		},
	}

	uc := NewGetCRMAnalyticsUseCase(repo, fixedClock(time.Now()), &mockLogger{})
	result, err := uc.Execute(context.Background(), AnalyticsQuery{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, monthlyCalled)
	assert.Len(t, result.Income.Labels, 6)
	assert.Equal(t, "Jan 2026", result.Income.Labels[0])
}

func TestGetCRMAnalyticsUseCase_Execute_InvalidRange(t *testing.T) {
	uc := NewGetCRMAnalyticsUseCase(&mockCRMStatsRepository{}, fixedClock(time.Now()), &mockLogger{})

	_, err := uc.Execute(context.Background(), AnalyticsQuery{
		From: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestGetTicketAnalyticsUseCase_Execute(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	repo := &mockTicketStatsRepository{
		CountTicketsScheduledBetweenFunc: func(ctx context.Context, from, to time.Time) (int64, error) {
			return 10, nil
		},
		CountTicketsScheduledBetweenWithStatusFunc: func(ctx context.Context, from, to time.Time, status string) (int64, error) {
			assert.Equal(t, "Completado", status)
			return 7, nil
		},
		CountOverdueTicketsFunc: func(ctx context.Context, from, to, nowArg time.Time, notStatus string) (int64, error) {
			assert.Equal(t, now, nowArg)
			assert.Equal(t, "Completado", notStatus)
			return 2, nil
		},
		CountTicketsExcludingStatusesFunc: func(ctx context.Context, statuses []string) (int64, error) {
			assert.ElementsMatch(t, []string{"Completado", "Cancelado"}, statuses)
			return 12, nil
		},
		CountTasksExcludingStatusFunc: func(ctx context.Context, status string) (int64, error) {
			assert.Equal(t, "Completada", status)
			return 19, nil
		},
		AssigneesWithPendingTasksFunc: func(ctx context.Context, limit int) ([]AssigneeCount, error) {
			return []AssigneeCount{{UserID: 3, Name: "Luis", Total: 6}}, nil
		},
	}

	uc := NewGetTicketAnalyticsUseCase(repo, fixedClock(now), &mockLogger{})
	result, err := uc.Execute(context.Background(), AnalyticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.TotalTickets)
	assert.Equal(t, int64(7), result.CompletedTickets)
	assert.Equal(t, 70.0, result.CompletionRate)
	assert.Equal(t, int64(2), result.OverdueTickets)
	assert.Equal(t, int64(12), result.Backlog)
	assert.Equal(t, int64(19), result.PendingTasks)
	require.Len(t, result.BusyAssignees, 1)
	assert.Equal(t, "Luis", result.BusyAssignees[0].Name)
}

func TestGetTicketAnalyticsUseCase_Execute_ZeroTicketsZeroRate(t *testing.T) {
	uc := NewGetTicketAnalyticsUseCase(&mockTicketStatsRepository{}, fixedClock(time.Now()), &mockLogger{})

	result, err := uc.Execute(context.Background(), AnalyticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.CompletionRate)
}
