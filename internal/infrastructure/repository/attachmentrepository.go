package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"norte/internal/domain/media"
	"norte/internal/infrastructure/persistence/mappers"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *media.Attachment) error {
	model := mappers.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("attachment not found")
	}
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*media.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return mappers.AttachmentToDomain(&model)
}

func (r *AttachmentRepository) GetByOwner(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	attachments := make([]*media.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		a, err := mappers.AttachmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}

	return attachments, nil
}

func (r *AttachmentRepository) DeleteByOwner(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error) {
	detached, err := r.GetByOwner(ctx, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	if len(detached) == 0 {
		return nil, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Delete(&models.AttachmentModel{}).Error; err != nil {
		return nil, fmt.Errorf("failed to delete attachments: %w", err)
	}

	return detached, nil
}
