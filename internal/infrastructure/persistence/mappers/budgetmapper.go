package mappers

import (
	"time"

	"gorm.io/datatypes"

	"norte/internal/domain/budget"
	"norte/internal/infrastructure/persistence/models"
)

func BudgetToModel(b *budget.Budget) *models.BudgetModel {
	return &models.BudgetModel{
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
		CreatedAt:         b.CreatedAt().UnixMilli(),
		UpdatedAt:         b.UpdatedAt().UnixMilli(),
	}
}

// BudgetToDomain converts the budget row only. Concepts and payments are
// loaded separately by the repository.
func BudgetToDomain(model *models.BudgetModel) (*budget.Budget, error) {
	return budget.ReconstructBudget(
		model.ID,
		model.Name,
		model.ServiceType,
		model.Status,
		model.Description,
		model.Duration,
		model.Priority,
		model.ResponsibleID,
		model.CustomerID,
		model.CustomerContactID,
		model.Branch,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func ConceptToModel(c *budget.Concept) *models.ConceptModel {
	return &models.ConceptModel{
		ID:        c.ID(),
		BudgetID:  c.BudgetID(),
		Concept:   c.Label(),
		Amount:    c.Amount(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func ConceptToDomain(model *models.ConceptModel) (*budget.Concept, error) {
	return budget.ReconstructConcept(
		model.ID,
		model.BudgetID,
		model.Concept,
		model.Amount,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func PaymentToModel(p *budget.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:            p.ID(),
		BudgetID:      p.BudgetID(),
		Amount:        p.Amount(),
		PaymentDate:   datatypes.Date(p.PaymentDate()),
		PaymentMethod: p.PaymentMethod(),
		Reference:     p.Reference(),
		CreatedAt:     p.CreatedAt().UnixMilli(),
		UpdatedAt:     p.UpdatedAt().UnixMilli(),
	}
}

func PaymentToDomain(model *models.PaymentModel) (*budget.Payment, error) {
	return budget.ReconstructPayment(
		model.ID,
		model.BudgetID,
		model.Amount,
		time.Time(model.PaymentDate),
		model.PaymentMethod,
		model.Reference,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
