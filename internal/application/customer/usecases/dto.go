package usecases

import (
	"time"

	"norte/internal/domain/customer"
)

type ContactDTO struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Branches   string `json:"branches,omitempty"`
}

type CustomerDTO struct {
	ID               uint         `json:"id"`
	Name             string       `json:"name"`
	BusinessName     string       `json:"business_name,omitempty"`
	RFC              string       `json:"rfc,omitempty"`
	PaymentCondition string       `json:"payment_condition,omitempty"`
	PaymentMethod    string       `json:"payment_method,omitempty"`
	InvoiceUsage     string       `json:"invoice_usage,omitempty"`
	Currency         string       `json:"currency"`
	Active           bool         `json:"active"`
	Contacts         []ContactDTO `json:"contacts"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func contactToDTO(c *customer.Contact) ContactDTO {
	return ContactDTO{
		ID:         c.ID(),
		CustomerID: c.CustomerID(),
		Name:       c.Name(),
		Position:   c.Position(),
		Email:      c.Email(),
		Phone:      c.Phone(),
		Branches:   c.Branches(),
	}
}

func customerToDTO(c *customer.Customer) *CustomerDTO {
	contacts := c.Contacts()
	contactDTOs := make([]ContactDTO, 0, len(contacts))
	for _, contact := range contacts {
		contactDTOs = append(contactDTOs, contactToDTO(contact))
	}

	return &CustomerDTO{
		ID:               c.ID(),
		Name:             c.Name(),
		BusinessName:     c.BusinessName(),
		RFC:              c.RFC(),
		PaymentCondition: c.PaymentCondition(),
		PaymentMethod:    c.PaymentMethod(),
		InvoiceUsage:     c.InvoiceUsage(),
		Currency:         c.Currency(),
		Active:           c.IsActive(),
		Contacts:         contactDTOs,
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}
