// Package budget holds the sales quote aggregate: a budget with its cost
// concepts and received payments. Financial totals are always recomputed
// from the owned collections and never stored.
package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Pipeline statuses are free-form labels; the default for new budgets.
const DefaultStatus = "Presupuesto enviado"

type Budget struct {
	id                uint
	name              string
	serviceType       string
	status            string
	description       string
	duration          string
	priority          string
	responsibleID     uint
	customerID        uint
	customerContactID uint
	branch            string
	createdAt         time.Time
	updatedAt         time.Time
	concepts          []*Concept
	payments          []*Payment
}

func NewBudget(
	name, serviceType string,
	responsibleID, customerID, customerContactID uint,
	description, duration, priority, branch string,
) (*Budget, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("budget name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("budget name exceeds maximum length of 255 characters")
	}
	if len(serviceType) == 0 {
		return nil, fmt.Errorf("service type is required")
	}
	if responsibleID == 0 {
		return nil, fmt.Errorf("responsible ID is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if customerContactID == 0 {
		return nil, fmt.Errorf("customer contact ID is required")
	}
	if priority == "" {
		priority = "Media"
	}

	now := time.Now()
	return &Budget{
		name:              name,
		serviceType:       serviceType,
		status:            DefaultStatus,
		description:       description,
		duration:          duration,
		priority:          priority,
		responsibleID:     responsibleID,
		customerID:        customerID,
		customerContactID: customerContactID,
		branch:            branch,
		createdAt:         now,
		updatedAt:         now,
		concepts:          []*Concept{},
		payments:          []*Payment{},
	}, nil
}

func ReconstructBudget(
	id uint,
	name, serviceType, status, description, duration, priority string,
	responsibleID, customerID, customerContactID uint,
	branch string,
	createdAt, updatedAt time.Time,
) (*Budget, error) {
	if id == 0 {
		return nil, fmt.Errorf("budget ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("budget name is required")
	}

	return &Budget{
		id:                id,
		name:              name,
		serviceType:       serviceType,
		status:            status,
		description:       description,
		duration:          duration,
		priority:          priority,
		responsibleID:     responsibleID,
		customerID:        customerID,
		customerContactID: customerContactID,
		branch:            branch,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		concepts:          []*Concept{},
		payments:          []*Payment{},
	}, nil
}

func (b *Budget) ID() uint                 { return b.id }
func (b *Budget) Name() string             { return b.name }
func (b *Budget) ServiceType() string      { return b.serviceType }
func (b *Budget) Status() string           { return b.status }
func (b *Budget) Description() string      { return b.description }
func (b *Budget) Duration() string         { return b.duration }
func (b *Budget) Priority() string         { return b.priority }
func (b *Budget) ResponsibleID() uint      { return b.responsibleID }
func (b *Budget) CustomerID() uint         { return b.customerID }
func (b *Budget) CustomerContactID() uint  { return b.customerContactID }
func (b *Budget) Branch() string           { return b.branch }
func (b *Budget) CreatedAt() time.Time     { return b.createdAt }
func (b *Budget) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Budget) Concepts() []*Concept {
	conceptsCopy := make([]*Concept, len(b.concepts))
	copy(conceptsCopy, b.concepts)
	return conceptsCopy
}

func (b *Budget) Payments() []*Payment {
	paymentsCopy := make([]*Payment, len(b.payments))
	copy(paymentsCopy, b.payments)
	return paymentsCopy
}

// SetConcepts attaches the loaded line items. Used by repositories when
// reconstructing the aggregate.
func (b *Budget) SetConcepts(concepts []*Concept) {
	if concepts == nil {
		concepts = []*Concept{}
	}
	b.concepts = concepts
}

// SetPayments attaches the loaded payments.
func (b *Budget) SetPayments(payments []*Payment) {
	if payments == nil {
		payments = []*Payment{}
	}
	b.payments = payments
}

func (b *Budget) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("budget ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("budget ID cannot be zero")
	}
	b.id = id
	return nil
}

// Totals is the financial rollup of a budget: total cost from concepts,
// total paid from payments, and the remaining balance. Sums are exact
// decimal arithmetic at 2-decimal currency precision.
type Totals struct {
	TotalCost  decimal.Decimal
	TotalPaid  decimal.Decimal
	BalanceDue decimal.Decimal
}

// Totals recomputes the rollup from the loaded concepts and payments. The
// result is never persisted; every read recomputes from current rows.
func (b *Budget) Totals() Totals {
	totalCost := decimal.Zero
	for _, c := range b.concepts {
		totalCost = totalCost.Add(c.Amount())
	}

	totalPaid := decimal.Zero
	for _, p := range b.payments {
		totalPaid = totalPaid.Add(p.Amount())
	}

	return Totals{
		TotalCost:  totalCost,
		TotalPaid:  totalPaid,
		BalanceDue: totalCost.Sub(totalPaid),
	}
}

// ChangeStatus moves the budget through the sales pipeline. Labels are
// free-form but bounded.
func (b *Budget) ChangeStatus(status string) error {
	if len(status) == 0 {
		return fmt.Errorf("status is required")
	}
	if len(status) > 50 {
		return fmt.Errorf("status exceeds maximum length of 50 characters")
	}

	b.status = status
	b.updatedAt = time.Now()
	return nil
}

// UpdateDetails changes the descriptive and relational fields of the budget.
func (b *Budget) UpdateDetails(
	name, serviceType string,
	responsibleID, customerID, customerContactID uint,
	description, duration, priority, branch string,
) error {
	if len(name) == 0 {
		return fmt.Errorf("budget name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("budget name exceeds maximum length of 255 characters")
	}
	if len(serviceType) == 0 {
		return fmt.Errorf("service type is required")
	}
	if responsibleID == 0 {
		return fmt.Errorf("responsible ID is required")
	}
	if customerID == 0 {
		return fmt.Errorf("customer ID is required")
	}
	if customerContactID == 0 {
		return fmt.Errorf("customer contact ID is required")
	}

	b.name = name
	b.serviceType = serviceType
	b.responsibleID = responsibleID
	b.customerID = customerID
	b.customerContactID = customerContactID
	b.description = description
	b.duration = duration
	if priority != "" {
		b.priority = priority
	}
	b.branch = branch
	b.updatedAt = time.Now()
	return nil
}
