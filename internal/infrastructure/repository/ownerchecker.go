package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"norte/internal/domain/media"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

// AttachmentOwnerChecker verifies that the record an attachment points at
// actually exists before the file is stored.
type AttachmentOwnerChecker struct {
	db *gorm.DB
}

func NewAttachmentOwnerChecker(db *gorm.DB) *AttachmentOwnerChecker {
	return &AttachmentOwnerChecker{db: db}
}

func (c *AttachmentOwnerChecker) OwnerExists(ctx context.Context, ownerType string, ownerID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, c.db)

	var model interface{}
	switch ownerType {
	case media.OwnerBudget:
		model = &models.BudgetModel{}
	case media.OwnerPayment:
		model = &models.PaymentModel{}
	case media.OwnerTicket:
		model = &models.TicketModel{}
	case media.OwnerTask:
		model = &models.TaskModel{}
	default:
		return false, fmt.Errorf("unknown attachment owner type: %s", ownerType)
	}

	var count int64
	if err := tx.Model(model).Where("id = ?", ownerID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check attachment owner: %w", err)
	}
	return count > 0, nil
}
