package customer

import (
	"fmt"
	"net/mail"
	"time"
)

// Contact is a named person at a customer. Budgets reference a contact so
// quotes always land with a specific person.
type Contact struct {
	id         uint
	customerID uint
	name       string
	position   string
	email      string
	phone      string
	branches   string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewContact(customerID uint, name, position, email, phone, branches string) (*Contact, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("contact name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("contact name exceeds maximum length of 255 characters")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid contact email: %w", err)
		}
	}

	now := time.Now()
	return &Contact{
		customerID: customerID,
		name:       name,
		position:   position,
		email:      email,
		phone:      phone,
		branches:   branches,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructContact(
	id, customerID uint,
	name, position, email, phone, branches string,
	createdAt, updatedAt time.Time,
) (*Contact, error) {
	if id == 0 {
		return nil, fmt.Errorf("contact ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("contact name is required")
	}

	return &Contact{
		id:         id,
		customerID: customerID,
		name:       name,
		position:   position,
		email:      email,
		phone:      phone,
		branches:   branches,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Contact) ID() uint             { return c.id }
func (c *Contact) CustomerID() uint     { return c.customerID }
func (c *Contact) Name() string         { return c.name }
func (c *Contact) Position() string     { return c.position }
func (c *Contact) Email() string        { return c.email }
func (c *Contact) Phone() string        { return c.phone }
func (c *Contact) Branches() string     { return c.branches }
func (c *Contact) CreatedAt() time.Time { return c.createdAt }
func (c *Contact) UpdatedAt() time.Time { return c.updatedAt }

func (c *Contact) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contact ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contact ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Contact) SetCustomerID(customerID uint) {
	c.customerID = customerID
}

func (c *Contact) UpdateDetails(name, position, email, phone, branches string) error {
	if len(name) == 0 {
		return fmt.Errorf("contact name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("contact name exceeds maximum length of 255 characters")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("invalid contact email: %w", err)
		}
	}

	c.name = name
	c.position = position
	c.email = email
	c.phone = phone
	c.branches = branches
	c.updatedAt = time.Now()
	return nil
}
