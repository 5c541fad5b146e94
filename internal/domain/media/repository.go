package media

import "context"

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	GetByOwner(ctx context.Context, ownerType string, ownerID uint) ([]*Attachment, error)
	// DeleteByOwner removes all rows for an owner and returns the detached
	// attachments so callers can clean up the stored files.
	DeleteByOwner(ctx context.Context, ownerType string, ownerID uint) ([]*Attachment, error)
}
