package usecases

import (
	"context"
	"io"
)

// BlobStorage persists attachment content under opaque names.
type BlobStorage interface {
	Store(ctx context.Context, content io.Reader, originalName string) (path string, err error)
	Remove(ctx context.Context, path string) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// OwnerChecker verifies the owning record exists before attaching a file.
type OwnerChecker interface {
	OwnerExists(ctx context.Context, ownerType string, ownerID uint) (bool, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*AttachmentDTO, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) error
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]AttachmentDTO, error)
}

type DetachOwnerExecutor interface {
	Execute(ctx context.Context, cmd DetachOwnerCommand) error
}
