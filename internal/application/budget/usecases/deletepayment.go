package usecases

import (
	"context"

	"norte/internal/domain/budget"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type DeletePaymentCommand struct {
	BudgetID  uint
	PaymentID uint
}

type DeletePaymentUseCase struct {
	paymentRepo budget.PaymentRepository
	logger      logger.Interface
}

func NewDeletePaymentUseCase(
	paymentRepo budget.PaymentRepository,
	logger logger.Interface,
) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *DeletePaymentUseCase) Execute(ctx context.Context, cmd DeletePaymentCommand) error {
	uc.logger.Infow("executing delete payment use case", "payment_id", cmd.PaymentID)

	if cmd.PaymentID == 0 {
		return errors.NewValidationError("payment ID is required")
	}

	existing, err := uc.paymentRepo.GetByID(ctx, cmd.PaymentID)
	if err != nil {
		uc.logger.Errorw("failed to get payment", "payment_id", cmd.PaymentID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("payment not found")
	}
	if cmd.BudgetID != 0 && existing.BudgetID() != cmd.BudgetID {
		return errors.NewNotFoundError("payment not found for budget")
	}

	if err := uc.paymentRepo.Delete(ctx, cmd.PaymentID); err != nil {
		uc.logger.Errorw("failed to delete payment", "payment_id", cmd.PaymentID, "error", err)
		return err
	}

	uc.logger.Infow("payment deleted", "payment_id", cmd.PaymentID)
	return nil
}
