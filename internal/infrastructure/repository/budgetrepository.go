package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"norte/internal/domain/budget"
	"norte/internal/infrastructure/persistence/mappers"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

var allowedBudgetOrderByFields = map[string]bool{
	"id":           true,
	"name":         true,
	"service_type": true,
	"status":       true,
	"priority":     true,
	"customer_id":  true,
	"created_at":   true,
	"updated_at":   true,
}

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Save(ctx context.Context, b *budget.Budget) error {
	model := mappers.BudgetToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	model := mappers.BudgetToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BudgetModel{}).
		Where("id = ?", model.ID).
		Select("name", "service_type", "status", "description", "duration", "priority",
			"responsible_id", "customer_id", "customer_contact_id", "branch", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}

	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("budget_id = ?", id).Delete(&models.ConceptModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete budget concepts: %w", err)
	}
	if err := tx.Where("budget_id = ?", id).Delete(&models.PaymentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete budget payments: %w", err)
	}

	result := tx.Delete(&models.BudgetModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("budget not found")
	}
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id uint) (*budget.Budget, error) {
	var model models.BudgetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	b, err := mappers.BudgetToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadCollections(ctx, b, model.ID); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *BudgetRepository) List(ctx context.Context, filter budget.BudgetFilter) ([]*budget.Budget, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BudgetModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ResponsibleID != nil {
		query = query.Where("responsible_id = ?", *filter.ResponsibleID)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("name LIKE ? OR branch LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count budgets: %w", err)
	}

	query = applyOrder(query, filter.SortBy, filter.SortOrder, allowedBudgetOrderByFields, "created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var budgetModels []models.BudgetModel
	if err := query.Find(&budgetModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list budgets: %w", err)
	}

	budgets := make([]*budget.Budget, len(budgetModels))
	for i, model := range budgetModels {
		b, err := mappers.BudgetToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		if err := r.loadCollections(ctx, b, model.ID); err != nil {
			return nil, 0, err
		}
		budgets[i] = b
	}

	return budgets, total, nil
}

func (r *BudgetRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := tx.
		Model(&models.BudgetModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count budgets by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// loadCollections attaches the concepts and payments so the aggregate can
// compute its totals.
func (r *BudgetRepository) loadCollections(ctx context.Context, b *budget.Budget, budgetID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var conceptModels []models.ConceptModel
	if err := tx.
		Where("budget_id = ?", budgetID).
		Order("created_at ASC").
		Find(&conceptModels).Error; err != nil {
		return fmt.Errorf("failed to load concepts: %w", err)
	}

	concepts := make([]*budget.Concept, len(conceptModels))
	for i, cm := range conceptModels {
		c, err := mappers.ConceptToDomain(&cm)
		if err != nil {
			return err
		}
		concepts[i] = c
	}
	b.SetConcepts(concepts)

	var paymentModels []models.PaymentModel
	if err := tx.
		Where("budget_id = ?", budgetID).
		Order("payment_date ASC").
		Find(&paymentModels).Error; err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}

	payments := make([]*budget.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		p, err := mappers.PaymentToDomain(&pm)
		if err != nil {
			return err
		}
		payments[i] = p
	}
	b.SetPayments(payments)

	return nil
}

type ConceptRepository struct {
	db *gorm.DB
}

func NewConceptRepository(db *gorm.DB) *ConceptRepository {
	return &ConceptRepository{db: db}
}

func (r *ConceptRepository) Save(ctx context.Context, c *budget.Concept) error {
	model := mappers.ConceptToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save concept: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ConceptRepository) GetByBudgetID(ctx context.Context, budgetID uint) ([]*budget.Concept, error) {
	var conceptModels []models.ConceptModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("budget_id = ?", budgetID).
		Order("created_at ASC").
		Find(&conceptModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find concepts: %w", err)
	}

	concepts := make([]*budget.Concept, len(conceptModels))
	for i, model := range conceptModels {
		c, err := mappers.ConceptToDomain(&model)
		if err != nil {
			return nil, err
		}
		concepts[i] = c
	}

	return concepts, nil
}

func (r *ConceptRepository) DeleteByBudgetID(ctx context.Context, budgetID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("budget_id = ?", budgetID).Delete(&models.ConceptModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete concepts: %w", err)
	}
	return nil
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Save(ctx context.Context, p *budget.Payment) error {
	model := mappers.PaymentToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PaymentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment not found")
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*budget.Payment, error) {
	var model models.PaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) GetByBudgetID(ctx context.Context, budgetID uint) ([]*budget.Payment, error) {
	var paymentModels []models.PaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("budget_id = ?", budgetID).
		Order("payment_date ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}

	payments := make([]*budget.Payment, len(paymentModels))
	for i, model := range paymentModels {
		p, err := mappers.PaymentToDomain(&model)
		if err != nil {
			return nil, err
		}
		payments[i] = p
	}

	return payments, nil
}
