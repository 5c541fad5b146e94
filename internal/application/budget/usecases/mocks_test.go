package usecases

import (
	"context"

	"norte/internal/domain/budget"
	"norte/internal/shared/logger"
)

type mockBudgetRepository struct {
	SaveFunc          func(ctx context.Context, b *budget.Budget) error
	UpdateFunc        func(ctx context.Context, b *budget.Budget) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*budget.Budget, error)
	ListFunc          func(ctx context.Context, filter budget.BudgetFilter) ([]*budget.Budget, int64, error)
	CountByStatusFunc func(ctx context.Context) (map[string]int64, error)
}

func (m *mockBudgetRepository) Save(ctx context.Context, b *budget.Budget) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBudgetRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBudgetRepository) GetByID(ctx context.Context, id uint) (*budget.Budget, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBudgetRepository) List(ctx context.Context, filter budget.BudgetFilter) ([]*budget.Budget, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockBudgetRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}

type mockConceptRepository struct {
	SaveFunc             func(ctx context.Context, c *budget.Concept) error
	GetByBudgetIDFunc    func(ctx context.Context, budgetID uint) ([]*budget.Concept, error)
	DeleteByBudgetIDFunc func(ctx context.Context, budgetID uint) error
}

func (m *mockConceptRepository) Save(ctx context.Context, c *budget.Concept) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockConceptRepository) GetByBudgetID(ctx context.Context, budgetID uint) ([]*budget.Concept, error) {
	if m.GetByBudgetIDFunc != nil {
		return m.GetByBudgetIDFunc(ctx, budgetID)
	}
	return nil, nil
}

func (m *mockConceptRepository) DeleteByBudgetID(ctx context.Context, budgetID uint) error {
	if m.DeleteByBudgetIDFunc != nil {
		return m.DeleteByBudgetIDFunc(ctx, budgetID)
	}
	return nil
}

type mockPaymentRepository struct {
	SaveFunc          func(ctx context.Context, p *budget.Payment) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*budget.Payment, error)
	GetByBudgetIDFunc func(ctx context.Context, budgetID uint) ([]*budget.Payment, error)
}

func (m *mockPaymentRepository) Save(ctx context.Context, p *budget.Payment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPaymentRepository) GetByID(ctx context.Context, id uint) (*budget.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPaymentRepository) GetByBudgetID(ctx context.Context, budgetID uint) ([]*budget.Payment, error) {
	if m.GetByBudgetIDFunc != nil {
		return m.GetByBudgetIDFunc(ctx, budgetID)
	}
	return nil, nil
}

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
