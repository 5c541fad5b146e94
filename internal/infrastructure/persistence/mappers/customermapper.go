package mappers

import (
	"norte/internal/domain/customer"
	"norte/internal/infrastructure/persistence/models"
)

func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:               c.ID(),
		Name:             c.Name(),
		BusinessName:     c.BusinessName(),
		RFC:              c.RFC(),
		PaymentCondition: c.PaymentCondition(),
		PaymentMethod:    c.PaymentMethod(),
		InvoiceUsage:     c.InvoiceUsage(),
		Currency:         c.Currency(),
		Active:           c.IsActive(),
		CreatedAt:        c.CreatedAt().UnixMilli(),
		UpdatedAt:        c.UpdatedAt().UnixMilli(),
	}
}

func CustomerToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Name,
		model.BusinessName,
		model.RFC,
		model.PaymentCondition,
		model.PaymentMethod,
		model.InvoiceUsage,
		model.Currency,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func ContactToModel(c *customer.Contact) *models.ContactModel {
	return &models.ContactModel{
		ID:         c.ID(),
		CustomerID: c.CustomerID(),
		Name:       c.Name(),
		Position:   c.Position(),
		Email:      c.Email(),
		Phone:      c.Phone(),
		Branches:   c.Branches(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func ContactToDomain(model *models.ContactModel) (*customer.Contact, error) {
	return customer.ReconstructContact(
		model.ID,
		model.CustomerID,
		model.Name,
		model.Position,
		model.Email,
		model.Phone,
		model.Branches,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
