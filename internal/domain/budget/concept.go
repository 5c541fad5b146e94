package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Concept is a single cost line item on a budget.
type Concept struct {
	id        uint
	budgetID  uint
	concept   string
	amount    decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

func NewConcept(budgetID uint, concept string, amount decimal.Decimal) (*Concept, error) {
	if len(concept) == 0 {
		return nil, fmt.Errorf("concept label is required")
	}
	if len(concept) > 255 {
		return nil, fmt.Errorf("concept label exceeds maximum length of 255 characters")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("concept amount cannot be negative")
	}

	now := time.Now()
	return &Concept{
		budgetID:  budgetID,
		concept:   concept,
		amount:    amount.Round(2),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructConcept(id, budgetID uint, concept string, amount decimal.Decimal, createdAt, updatedAt time.Time) (*Concept, error) {
	if id == 0 {
		return nil, fmt.Errorf("concept ID cannot be zero")
	}

	return &Concept{
		id:        id,
		budgetID:  budgetID,
		concept:   concept,
		amount:    amount,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Concept) ID() uint                { return c.id }
func (c *Concept) BudgetID() uint          { return c.budgetID }
func (c *Concept) Label() string           { return c.concept }
func (c *Concept) Amount() decimal.Decimal { return c.amount }
func (c *Concept) CreatedAt() time.Time    { return c.createdAt }
func (c *Concept) UpdatedAt() time.Time    { return c.updatedAt }

func (c *Concept) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("concept ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("concept ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Concept) SetBudgetID(budgetID uint) {
	c.budgetID = budgetID
}
