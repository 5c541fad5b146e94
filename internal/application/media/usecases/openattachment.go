package usecases

import (
	"context"
	"io"

	"norte/internal/domain/media"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type OpenAttachmentQuery struct {
	AttachmentID uint
}

// OpenAttachmentUseCase resolves an attachment row and opens its blob for
// streaming. The caller owns the returned reader.
type OpenAttachmentUseCase struct {
	attachmentRepo media.AttachmentRepository
	storage        BlobStorage
	logger         logger.Interface
}

func NewOpenAttachmentUseCase(
	attachmentRepo media.AttachmentRepository,
	storage BlobStorage,
	logger logger.Interface,
) *OpenAttachmentUseCase {
	return &OpenAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *OpenAttachmentUseCase) Execute(ctx context.Context, query OpenAttachmentQuery) (*AttachmentDTO, io.ReadCloser, error) {
	attachment, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to get attachment", "attachment_id", query.AttachmentID, "error", err)
		return nil, nil, err
	}
	if attachment == nil {
		return nil, nil, errors.NewNotFoundError("attachment not found")
	}

	content, err := uc.storage.Open(ctx, attachment.Path())
	if err != nil {
		uc.logger.Errorw("failed to open attachment blob", "attachment_id", query.AttachmentID, "path", attachment.Path(), "error", err)
		return nil, nil, errors.NewInternalError("failed to open attachment", err.Error())
	}

	return attachmentToDTO(attachment), content, nil
}
