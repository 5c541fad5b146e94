package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a payment received against a budget. The optional proof
// attachment is referenced by the media store, never inspected here.
type Payment struct {
	id            uint
	budgetID      uint
	amount        decimal.Decimal
	paymentDate   time.Time
	paymentMethod string
	reference     string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayment(budgetID uint, amount decimal.Decimal, paymentDate time.Time, method, reference string) (*Payment, error) {
	if budgetID == 0 {
		return nil, fmt.Errorf("budget ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if paymentDate.IsZero() {
		return nil, fmt.Errorf("payment date is required")
	}

	now := time.Now()
	return &Payment{
		budgetID:      budgetID,
		amount:        amount.Round(2),
		paymentDate:   paymentDate,
		paymentMethod: method,
		reference:     reference,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPayment(
	id, budgetID uint,
	amount decimal.Decimal,
	paymentDate time.Time,
	method, reference string,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}

	return &Payment{
		id:            id,
		budgetID:      budgetID,
		amount:        amount,
		paymentDate:   paymentDate,
		paymentMethod: method,
		reference:     reference,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Payment) ID() uint                { return p.id }
func (p *Payment) BudgetID() uint          { return p.budgetID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) PaymentDate() time.Time  { return p.paymentDate }
func (p *Payment) PaymentMethod() string   { return p.paymentMethod }
func (p *Payment) Reference() string       { return p.reference }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }

func (p *Payment) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = id
	return nil
}
