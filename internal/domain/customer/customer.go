// Package customer holds the client directory: companies the business
// sells to, each with one or more named contacts.
package customer

import (
	"fmt"
	"time"
)

type Customer struct {
	id               uint
	name             string
	businessName     string
	rfc              string
	paymentCondition string
	paymentMethod    string
	invoiceUsage     string
	currency         string
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
	contacts         []*Contact
}

func NewCustomer(name, businessName, rfc, paymentCondition, paymentMethod, invoiceUsage, currency string) (*Customer, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("customer name exceeds maximum length of 255 characters")
	}
	if len(rfc) > 13 {
		return nil, fmt.Errorf("RFC exceeds maximum length of 13 characters")
	}
	if currency == "" {
		currency = "MXN"
	}

	now := time.Now()
	return &Customer{
		name:             name,
		businessName:     businessName,
		rfc:              rfc,
		paymentCondition: paymentCondition,
		paymentMethod:    paymentMethod,
		invoiceUsage:     invoiceUsage,
		currency:         currency,
		active:           true,
		createdAt:        now,
		updatedAt:        now,
		contacts:         []*Contact{},
	}, nil
}

func ReconstructCustomer(
	id uint,
	name, businessName, rfc, paymentCondition, paymentMethod, invoiceUsage, currency string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}

	return &Customer{
		id:               id,
		name:             name,
		businessName:     businessName,
		rfc:              rfc,
		paymentCondition: paymentCondition,
		paymentMethod:    paymentMethod,
		invoiceUsage:     invoiceUsage,
		currency:         currency,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		contacts:         []*Contact{},
	}, nil
}

func (c *Customer) ID() uint                 { return c.id }
func (c *Customer) Name() string             { return c.name }
func (c *Customer) BusinessName() string     { return c.businessName }
func (c *Customer) RFC() string              { return c.rfc }
func (c *Customer) PaymentCondition() string { return c.paymentCondition }
func (c *Customer) PaymentMethod() string    { return c.paymentMethod }
func (c *Customer) InvoiceUsage() string     { return c.invoiceUsage }
func (c *Customer) Currency() string         { return c.currency }
func (c *Customer) IsActive() bool           { return c.active }
func (c *Customer) CreatedAt() time.Time     { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time     { return c.updatedAt }

func (c *Customer) Contacts() []*Contact {
	contactsCopy := make([]*Contact, len(c.contacts))
	copy(contactsCopy, c.contacts)
	return contactsCopy
}

func (c *Customer) SetContacts(contacts []*Contact) {
	if contacts == nil {
		contacts = []*Contact{}
	}
	c.contacts = contacts
}

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) UpdateDetails(name, businessName, rfc, paymentCondition, paymentMethod, invoiceUsage, currency string) error {
	if len(name) == 0 {
		return fmt.Errorf("customer name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("customer name exceeds maximum length of 255 characters")
	}
	if len(rfc) > 13 {
		return fmt.Errorf("RFC exceeds maximum length of 13 characters")
	}

	c.name = name
	c.businessName = businessName
	c.rfc = rfc
	c.paymentCondition = paymentCondition
	c.paymentMethod = paymentMethod
	c.invoiceUsage = invoiceUsage
	if currency != "" {
		c.currency = currency
	}
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) Activate() {
	c.active = true
	c.updatedAt = time.Now()
}

func (c *Customer) Deactivate() {
	c.active = false
	c.updatedAt = time.Now()
}
