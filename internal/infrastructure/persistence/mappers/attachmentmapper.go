package mappers

import (
	"norte/internal/domain/media"
	"norte/internal/infrastructure/persistence/models"
)

func AttachmentToModel(a *media.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		OwnerType:    a.OwnerType(),
		OwnerID:      a.OwnerID(),
		Collection:   a.Collection(),
		Path:         a.Path(),
		OriginalName: a.OriginalName(),
		MimeType:     a.MimeType(),
		Size:         a.Size(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func AttachmentToDomain(model *models.AttachmentModel) (*media.Attachment, error) {
	return media.ReconstructAttachment(
		model.ID,
		model.OwnerType,
		model.OwnerID,
		model.Collection,
		model.Path,
		model.OriginalName,
		model.MimeType,
		model.Size,
		millisToTime(model.CreatedAt),
	)
}
