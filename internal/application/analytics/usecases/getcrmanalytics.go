// Package usecases holds the read-only dashboard aggregations for the CRM
// and service areas. Queries fan out concurrently; a failed leg aborts the
// whole snapshot.
package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"norte/internal/shared/biztime"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

// wonStatuses mark a budget as converted into actual work.
var wonStatuses = []string{"Facturado", "Trabajo en proceso", "Trabajo terminado", "Pagado"}

// activeProjectStatus is the pipeline stage counted as an ongoing project.
const activeProjectStatus = "Trabajo en proceso"

const topListLimit = 5

// monthlyChartThreshold switches the income chart from daily to monthly
// buckets for long ranges.
const monthlyChartThreshold = 60 * 24 * time.Hour

type GetCRMAnalyticsUseCase struct {
	statsRepo CRMStatsRepository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewGetCRMAnalyticsUseCase(
	statsRepo CRMStatsRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *GetCRMAnalyticsUseCase {
	return &GetCRMAnalyticsUseCase{
		statsRepo: statsRepo,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *GetCRMAnalyticsUseCase) Execute(ctx context.Context, query AnalyticsQuery) (*CRMAnalyticsDTO, error) {
	from, to, err := resolveRange(query, uc.clock)
	if err != nil {
		return nil, err
	}

	uc.logger.Debugw("fetching crm analytics", "from", from, "to", to)

	var (
		totalCustomers int64
		newCustomers   int64
		totalBudgets   int64
		wonBudgets     int64
		activeProjects int64
		totalRevenue   decimal.Decimal
		estimatedCost  decimal.Decimal
		collectedCost  decimal.Decimal
		statusDist     []StatusCount
		topServices    []ServiceTypeCount
		topCustomers   []CustomerPaymentTotal
		income         []PeriodAmount
	)

	monthly := to.Sub(from) > monthlyChartThreshold

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalCustomers, err = uc.statsRepo.CountCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		newCustomers, err = uc.statsRepo.CountCustomersCreatedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		totalBudgets, err = uc.statsRepo.CountBudgetsCreatedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		wonBudgets, err = uc.statsRepo.CountBudgetsCreatedBetweenWithStatuses(gctx, from, to, wonStatuses)
		return err
	})
	g.Go(func() error {
		var err error
		activeProjects, err = uc.statsRepo.CountBudgetsWithStatus(gctx, activeProjectStatus)
		return err
	})
	g.Go(func() error {
		var err error
		totalRevenue, err = uc.statsRepo.SumPaymentsBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		estimatedCost, err = uc.statsRepo.SumConceptsForBudgetsCreatedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		collectedCost, err = uc.statsRepo.SumPaymentsForBudgetsCreatedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		statusDist, err = uc.statsRepo.BudgetStatusDistribution(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		topServices, err = uc.statsRepo.TopServiceTypes(gctx, from, to, topListLimit)
		return err
	})
	g.Go(func() error {
		var err error
		topCustomers, err = uc.statsRepo.TopCustomersByPayments(gctx, from, to, topListLimit)
		return err
	})
	g.Go(func() error {
		var err error
		if monthly {
			income, err = uc.statsRepo.PaymentTotalsByMonth(gctx, from, to)
		} else {
			income, err = uc.statsRepo.PaymentTotalsByDay(gctx, from, to)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to build crm analytics", "error", err)
		return nil, err
	}

	conversionRate := 0.0
	if totalBudgets > 0 {
		conversionRate = roundRate(float64(wonBudgets) / float64(totalBudgets) * 100)
	}

	dto := &CRMAnalyticsDTO{
		TotalCustomers:     totalCustomers,
		NewCustomers:       newCustomers,
		TotalBudgets:       totalBudgets,
		WonBudgets:         wonBudgets,
		ConversionRate:     conversionRate,
		TotalRevenue:       totalRevenue,
		PendingBalance:     estimatedCost.Sub(collectedCost),
		ActiveProjects:     activeProjects,
		Income:             buildAmountSeries(income, from, to, monthly),
		StatusDistribution: make([]StatusCountDTO, 0, len(statusDist)),
		TopServices:        make([]ServiceTypeCountDTO, 0, len(topServices)),
		TopCustomers:       make([]TopCustomerDTO, 0, len(topCustomers)),
		From:               from,
		To:                 to,
	}

	for _, s := range statusDist {
		dto.StatusDistribution = append(dto.StatusDistribution, StatusCountDTO{Status: s.Status, Total: s.Total})
	}
	for _, s := range topServices {
		dto.TopServices = append(dto.TopServices, ServiceTypeCountDTO{ServiceType: s.ServiceType, Total: s.Total})
	}
	for _, c := range topCustomers {
		dto.TopCustomers = append(dto.TopCustomers, TopCustomerDTO{CustomerID: c.CustomerID, Name: c.Name, TotalPaid: c.TotalPaid})
	}

	return dto, nil
}

// resolveRange fills missing bounds with the current month. Caller-supplied
// bounds are day-start instants (the interface layer parses dates through
// biztime), so the end bound is extended to cover its whole day rather than
// re-anchored to a timezone day boundary.
func resolveRange(query AnalyticsQuery, clock biztime.Clock) (time.Time, time.Time, error) {
	now := clock.Now().UTC()

	from := query.From
	to := query.To
	if from.IsZero() {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, 1, 0).Add(-time.Nanosecond)
	} else {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.NewValidationError("date range end must not be before start")
	}
	return from, to, nil
}

func roundRate(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}

// buildAmountSeries produces a gap-free chart over the range: one bucket per
// day or per month, zero-filled where no payments landed.
func buildAmountSeries(points []PeriodAmount, from, to time.Time, monthly bool) ChartSeries {
	byKey := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		byKey[periodKey(p.Period, monthly)] = p.Amount
	}

	series := ChartSeries{}
	for cursor := from; !cursor.After(to); {
		key := periodKey(cursor, monthly)
		amount, ok := byKey[key]
		if !ok {
			amount = decimal.Zero
		}
		series.Labels = append(series.Labels, periodLabel(cursor, monthly))
		series.Data = append(series.Data, amount)

		if monthly {
			cursor = cursor.AddDate(0, 1, 0)
		} else {
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return series
}

func periodKey(t time.Time, monthly bool) string {
	if monthly {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

func periodLabel(t time.Time, monthly bool) string {
	if monthly {
		return t.Format("Jan 2006")
	}
	return t.Format("02/01")
}
