package usecases

import (
	"time"

	"github.com/shopspring/decimal"

	"norte/internal/domain/budget"
)

type ConceptDTO struct {
	ID      uint            `json:"id"`
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
}

type PaymentDTO struct {
	ID            uint            `json:"id"`
	BudgetID      uint            `json:"budget_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type BudgetDTO struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	ServiceType       string          `json:"service_type"`
	Status            string          `json:"status"`
	Description       string          `json:"description,omitempty"`
	Duration          string          `json:"duration,omitempty"`
	Priority          string          `json:"priority"`
	ResponsibleID     uint            `json:"responsible_id"`
	CustomerID        uint            `json:"customer_id"`
	CustomerContactID uint            `json:"customer_contact_id"`
	Branch            string          `json:"branch,omitempty"`
	Concepts          []ConceptDTO    `json:"concepts"`
	Payments          []PaymentDTO    `json:"payments"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	BalanceDue        decimal.Decimal `json:"balance_due"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func paymentToDTO(p *budget.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID(),
		BudgetID:      p.BudgetID(),
		Amount:        p.Amount(),
		PaymentDate:   p.PaymentDate(),
		PaymentMethod: p.PaymentMethod(),
		Reference:     p.Reference(),
		CreatedAt:     p.CreatedAt(),
	}
}

func budgetToDTO(b *budget.Budget) *BudgetDTO {
	concepts := b.Concepts()
	conceptDTOs := make([]ConceptDTO, 0, len(concepts))
	for _, c := range concepts {
		conceptDTOs = append(conceptDTOs, ConceptDTO{ID: c.ID(), Concept: c.Label(), Amount: c.Amount()})
	}

	payments := b.Payments()
	paymentDTOs := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		paymentDTOs = append(paymentDTOs, paymentToDTO(p))
	}

	totals := b.Totals()
	return &BudgetDTO{
		ID:                b.ID(),
		Name:              b.Name(),
		ServiceType:       b.ServiceType(),
		Status:            b.Status(),
		Description:       b.Description(),
		Duration:          b.Duration(),
		Priority:          b.Priority(),
		ResponsibleID:     b.ResponsibleID(),
		CustomerID:        b.CustomerID(),
		CustomerContactID: b.CustomerContactID(),
		Branch:            b.Branch(),
		Concepts:          conceptDTOs,
		Payments:          paymentDTOs,
		TotalCost:         totals.TotalCost,
		TotalPaid:         totals.TotalPaid,
		BalanceDue:        totals.BalanceDue,
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
}
