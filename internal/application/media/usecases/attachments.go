// Package usecases implements the attachment store: uploads land on disk
// under opaque names with a database row per file, and owners cascade their
// attachments on delete.
package usecases

import (
	"context"
	"io"
	"time"

	"norte/internal/domain/media"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	OwnerType    string    `json:"owner_type"`
	OwnerID      uint      `json:"owner_id"`
	Collection   string    `json:"collection"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func attachmentToDTO(a *media.Attachment) *AttachmentDTO {
	return &AttachmentDTO{
		ID:           a.ID(),
		OwnerType:    a.OwnerType(),
		OwnerID:      a.OwnerID(),
		Collection:   a.Collection(),
		OriginalName: a.OriginalName(),
		Size:         a.Size(),
		MimeType:     a.MimeType(),
		CreatedAt:    a.CreatedAt(),
	}
}

type UploadAttachmentCommand struct {
	OwnerType    string
	OwnerID      uint
	Collection   string
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

type UploadAttachmentUseCase struct {
	attachmentRepo media.AttachmentRepository
	storage        BlobStorage
	owners         OwnerChecker
	maxFileSize    int64
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	attachmentRepo media.AttachmentRepository,
	storage BlobStorage,
	owners OwnerChecker,
	maxFileSize int64,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		owners:         owners,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*AttachmentDTO, error) {
	if !media.ValidOwnerType(cmd.OwnerType) {
		return nil, errors.NewValidationError("invalid attachment owner type")
	}
	if !media.ValidCollection(cmd.Collection) {
		return nil, errors.NewValidationError("invalid attachment collection")
	}
	if cmd.Size <= 0 {
		return nil, errors.NewValidationError("attachment is empty")
	}
	if uc.maxFileSize > 0 && cmd.Size > uc.maxFileSize {
		return nil, errors.NewValidationError("attachment exceeds the maximum allowed size")
	}

	exists, err := uc.owners.OwnerExists(ctx, cmd.OwnerType, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to check attachment owner", "error", err)
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("attachment owner not found")
	}

	path, err := uc.storage.Store(ctx, cmd.Content, cmd.OriginalName)
	if err != nil {
		uc.logger.Errorw("failed to store attachment content", "error", err)
		return nil, errors.NewInternalError("failed to store attachment")
	}

	attachment, err := media.NewAttachment(cmd.OwnerType, cmd.OwnerID, cmd.Collection, path, cmd.OriginalName, cmd.MimeType, cmd.Size)
	if err != nil {
		if removeErr := uc.storage.Remove(ctx, path); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned attachment file", "path", path, "error", removeErr)
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		if removeErr := uc.storage.Remove(ctx, path); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned attachment file", "path", path, "error", removeErr)
		}
		uc.logger.Errorw("failed to save attachment", "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment uploaded",
		"attachment_id", attachment.ID(), "owner_type", cmd.OwnerType, "owner_id", cmd.OwnerID)
	return attachmentToDTO(attachment), nil
}

type DeleteAttachmentCommand struct {
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	attachmentRepo media.AttachmentRepository
	storage        BlobStorage
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	attachmentRepo media.AttachmentRepository,
	storage BlobStorage,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	attachment, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to get attachment", "attachment_id", cmd.AttachmentID, "error", err)
		return err
	}
	if attachment == nil {
		return errors.NewNotFoundError("attachment not found")
	}

	if err := uc.attachmentRepo.Delete(ctx, cmd.AttachmentID); err != nil {
		uc.logger.Errorw("failed to delete attachment", "attachment_id", cmd.AttachmentID, "error", err)
		return err
	}

	// File removal failures leave an orphaned blob; the row is already gone.
	if err := uc.storage.Remove(ctx, attachment.Path()); err != nil {
		uc.logger.Warnw("failed to remove attachment file", "path", attachment.Path(), "error", err)
	}

	uc.logger.Infow("attachment deleted", "attachment_id", cmd.AttachmentID)
	return nil
}

type ListAttachmentsQuery struct {
	OwnerType string
	OwnerID   uint
}

type ListAttachmentsUseCase struct {
	attachmentRepo media.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(attachmentRepo media.AttachmentRepository, logger logger.Interface) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{attachmentRepo: attachmentRepo, logger: logger}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]AttachmentDTO, error) {
	if !media.ValidOwnerType(query.OwnerType) {
		return nil, errors.NewValidationError("invalid attachment owner type")
	}

	attachments, err := uc.attachmentRepo.GetByOwner(ctx, query.OwnerType, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err)
		return nil, err
	}

	dtos := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		dtos = append(dtos, *attachmentToDTO(a))
	}
	return dtos, nil
}

type DetachOwnerCommand struct {
	OwnerType string
	OwnerID   uint
}

// DetachOwnerUseCase cascades attachment cleanup when an owning record is
// deleted.
type DetachOwnerUseCase struct {
	attachmentRepo media.AttachmentRepository
	storage        BlobStorage
	logger         logger.Interface
}

func NewDetachOwnerUseCase(
	attachmentRepo media.AttachmentRepository,
	storage BlobStorage,
	logger logger.Interface,
) *DetachOwnerUseCase {
	return &DetachOwnerUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *DetachOwnerUseCase) Execute(ctx context.Context, cmd DetachOwnerCommand) error {
	detached, err := uc.attachmentRepo.DeleteByOwner(ctx, cmd.OwnerType, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to detach attachments",
			"owner_type", cmd.OwnerType, "owner_id", cmd.OwnerID, "error", err)
		return err
	}

	for _, a := range detached {
		if err := uc.storage.Remove(ctx, a.Path()); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "path", a.Path(), "error", err)
		}
	}
	return nil
}
