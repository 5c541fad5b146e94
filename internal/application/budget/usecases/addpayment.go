package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"norte/internal/domain/budget"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type AddPaymentCommand struct {
	BudgetID      uint
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string
	Reference     string
}

type AddPaymentUseCase struct {
	budgetRepo  budget.BudgetRepository
	paymentRepo budget.PaymentRepository
	logger      logger.Interface
}

func NewAddPaymentUseCase(
	budgetRepo budget.BudgetRepository,
	paymentRepo budget.PaymentRepository,
	logger logger.Interface,
) *AddPaymentUseCase {
	return &AddPaymentUseCase{
		budgetRepo:  budgetRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *AddPaymentUseCase) Execute(ctx context.Context, cmd AddPaymentCommand) (*PaymentDTO, error) {
	uc.logger.Infow("executing add payment use case", "budget_id", cmd.BudgetID, "amount", cmd.Amount)

	if cmd.BudgetID == 0 {
		return nil, errors.NewValidationError("budget ID is required")
	}

	existing, err := uc.budgetRepo.GetByID(ctx, cmd.BudgetID)
	if err != nil {
		uc.logger.Errorw("failed to get budget", "budget_id", cmd.BudgetID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("budget not found")
	}

	payment, err := budget.NewPayment(cmd.BudgetID, cmd.Amount, cmd.PaymentDate, cmd.PaymentMethod, cmd.Reference)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.paymentRepo.Save(ctx, payment); err != nil {
		uc.logger.Errorw("failed to save payment", "budget_id", cmd.BudgetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("payment recorded", "budget_id", cmd.BudgetID, "payment_id", payment.ID())

	dto := paymentToDTO(payment)
	return &dto, nil
}
