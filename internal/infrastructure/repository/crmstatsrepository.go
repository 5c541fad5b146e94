package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"norte/internal/application/analytics/usecases"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

// CRMStatsRepository answers the aggregate queries behind the CRM dashboard.
// Time series are grouped by payment date in SQL and rolled up to months in
// Go so the queries stay dialect neutral.
type CRMStatsRepository struct {
	db *gorm.DB
}

func NewCRMStatsRepository(db *gorm.DB) *CRMStatsRepository {
	return &CRMStatsRepository{db: db}
}

func (r *CRMStatsRepository) CountCustomers(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.CustomerModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *CRMStatsRepository) CountCustomersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.CustomerModel{}).
		Where("created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *CRMStatsRepository) CountBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.BudgetModel{}).
		Where("created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count budgets: %w", err)
	}
	return count, nil
}

func (r *CRMStatsRepository) CountBudgetsCreatedBetweenWithStatuses(ctx context.Context, from, to time.Time, statuses []string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.BudgetModel{}).
		Where("created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Where("status IN ?", statuses).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count budgets by statuses: %w", err)
	}
	return count, nil
}

func (r *CRMStatsRepository) CountBudgetsWithStatus(ctx context.Context, status string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.BudgetModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count budgets by status: %w", err)
	}
	return count, nil
}

func (r *CRMStatsRepository) SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row struct{ Total decimal.Decimal }
	if err := tx.
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("payment_date BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return row.Total, nil
}

func (r *CRMStatsRepository) SumConceptsForBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row struct{ Total decimal.Decimal }
	if err := tx.
		Model(&models.ConceptModel{}).
		Select("COALESCE(SUM(budget_concepts.amount), 0) as total").
		Joins("JOIN budgets ON budgets.id = budget_concepts.budget_id").
		Where("budgets.created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum concepts: %w", err)
	}
	return row.Total, nil
}

func (r *CRMStatsRepository) SumPaymentsForBudgetsCreatedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row struct{ Total decimal.Decimal }
	if err := tx.
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(budget_payments.amount), 0) as total").
		Joins("JOIN budgets ON budgets.id = budget_payments.budget_id").
		Where("budgets.created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum budget payments: %w", err)
	}
	return row.Total, nil
}

func (r *CRMStatsRepository) BudgetStatusDistribution(ctx context.Context, from, to time.Time) ([]usecases.StatusCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []usecases.StatusCount
	if err := tx.
		Model(&models.BudgetModel{}).
		Select("status, COUNT(*) as total").
		Where("created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Group("status").
		Order("total DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load status distribution: %w", err)
	}
	return rows, nil
}

func (r *CRMStatsRepository) TopServiceTypes(ctx context.Context, from, to time.Time, limit int) ([]usecases.ServiceTypeCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []usecases.ServiceTypeCount
	if err := tx.
		Model(&models.BudgetModel{}).
		Select("service_type, COUNT(*) as total").
		Where("created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Group("service_type").
		Order("total DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load top service types: %w", err)
	}
	return rows, nil
}

func (r *CRMStatsRepository) TopCustomersByPayments(ctx context.Context, from, to time.Time, limit int) ([]usecases.CustomerPaymentTotal, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		CustomerID uint
		Name       string
		TotalPaid  decimal.Decimal
	}
	if err := tx.
		Model(&models.PaymentModel{}).
		Select("customers.id as customer_id, customers.name as name, SUM(budget_payments.amount) as total_paid").
		Joins("JOIN budgets ON budgets.id = budget_payments.budget_id").
		Joins("JOIN customers ON customers.id = budgets.customer_id").
		Where("budget_payments.payment_date BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Group("customers.id, customers.name").
		Order("total_paid DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load top customers: %w", err)
	}

	totals := make([]usecases.CustomerPaymentTotal, len(rows))
	for i, row := range rows {
		totals[i] = usecases.CustomerPaymentTotal{
			CustomerID: row.CustomerID,
			Name:       row.Name,
			TotalPaid:  row.TotalPaid,
		}
	}
	return totals, nil
}

func (r *CRMStatsRepository) PaymentTotalsByDay(ctx context.Context, from, to time.Time) ([]usecases.PeriodAmount, error) {
	return r.paymentTotals(ctx, from, to, false)
}

func (r *CRMStatsRepository) PaymentTotalsByMonth(ctx context.Context, from, to time.Time) ([]usecases.PeriodAmount, error) {
	return r.paymentTotals(ctx, from, to, true)
}

func (r *CRMStatsRepository) paymentTotals(ctx context.Context, from, to time.Time, byMonth bool) ([]usecases.PeriodAmount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		PaymentDate datatypes.Date
		Total       decimal.Decimal
	}
	if err := tx.
		Model(&models.PaymentModel{}).
		Select("payment_date, SUM(amount) as total").
		Where("payment_date BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Group("payment_date").
		Order("payment_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load payment totals: %w", err)
	}

	if !byMonth {
		totals := make([]usecases.PeriodAmount, len(rows))
		for i, row := range rows {
			totals[i] = usecases.PeriodAmount{Period: time.Time(row.PaymentDate), Amount: row.Total}
		}
		return totals, nil
	}

	// Roll daily groups up to months, preserving chronological order.
	var totals []usecases.PeriodAmount
	for _, row := range rows {
		day := time.Time(row.PaymentDate)
		month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		if n := len(totals); n > 0 && totals[n-1].Period.Equal(month) {
			totals[n-1].Amount = totals[n-1].Amount.Add(row.Total)
			continue
		}
		totals = append(totals, usecases.PeriodAmount{Period: month, Amount: row.Total})
	}
	return totals, nil
}
