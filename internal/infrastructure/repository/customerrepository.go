package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"norte/internal/domain/customer"
	"norte/internal/infrastructure/persistence/mappers"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

// allowedCustomerOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedCustomerOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"rfc":        true,
	"active":     true,
	"created_at": true,
	"updated_at": true,
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Select("name", "business_name", "rfc", "payment_condition", "payment_method", "invoice_usage", "currency", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}

	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("customer_id = ?", id).Delete(&models.ContactModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete customer contacts: %w", err)
	}

	result := tx.Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("customer not found")
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	c, err := mappers.CustomerToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadContacts(ctx, c, model.ID); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CustomerModel{})

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("name LIKE ? OR business_name LIKE ? OR rfc LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query = applyOrder(query, filter.SortBy, filter.SortOrder, allowedCustomerOrderByFields, "name ASC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var customerModels []models.CustomerModel
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*customer.Customer, len(customerModels))
	for i, model := range customerModels {
		c, err := mappers.CustomerToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		if err := r.loadContacts(ctx, c, model.ID); err != nil {
			return nil, 0, err
		}
		customers[i] = c
	}

	return customers, total, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.CustomerModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return total, nil
}

func (r *CustomerRepository) loadContacts(ctx context.Context, c *customer.Customer, customerID uint) error {
	var contactModels []models.ContactModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&contactModels).Error; err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	contacts := make([]*customer.Contact, len(contactModels))
	for i, cm := range contactModels {
		contact, err := mappers.ContactToDomain(&cm)
		if err != nil {
			return err
		}
		contacts[i] = contact
	}
	c.SetContacts(contacts)

	return nil
}

// applyOrder appends an ORDER BY clause after validating the column against
// a whitelist.
func applyOrder(query *gorm.DB, sortBy, sortOrder string, allowed map[string]bool, fallback string) *gorm.DB {
	column := strings.ToLower(sortBy)
	if column == "" || !allowed[column] {
		return query.Order(fallback)
	}
	order := strings.ToUpper(sortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	return query.Order(column + " " + order)
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Save(ctx context.Context, c *customer.Contact) error {
	model := mappers.ContactToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ContactRepository) Update(ctx context.Context, c *customer.Contact) error {
	model := mappers.ContactToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ContactModel{}).
		Where("id = ?", model.ID).
		Select("name", "position", "email", "phone", "branches", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update contact: %w", result.Error)
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ContactModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("contact not found")
	}
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*customer.Contact, error) {
	var model models.ContactModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	return mappers.ContactToDomain(&model)
}

func (r *ContactRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]*customer.Contact, error) {
	var contactModels []models.ContactModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&contactModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find contacts: %w", err)
	}

	contacts := make([]*customer.Contact, len(contactModels))
	for i, model := range contactModels {
		c, err := mappers.ContactToDomain(&model)
		if err != nil {
			return nil, err
		}
		contacts[i] = c
	}

	return contacts, nil
}
