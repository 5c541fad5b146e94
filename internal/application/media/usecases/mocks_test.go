package usecases

import (
	"context"
	"io"

	"norte/internal/domain/media"
	"norte/internal/shared/logger"
)

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, attachment *media.Attachment) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*media.Attachment, error)
	GetByOwnerFunc    func(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error)
	DeleteByOwnerFunc func(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *media.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return attachment.SetID(1)
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*media.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByOwner(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, ownerType, ownerID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) DeleteByOwner(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error) {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, ownerType, ownerID)
	}
	return nil, nil
}

type mockBlobStorage struct {
	StoreFunc  func(ctx context.Context, content io.Reader, originalName string) (string, error)
	RemoveFunc func(ctx context.Context, path string) error
	OpenFunc   func(ctx context.Context, path string) (io.ReadCloser, error)
}

func (m *mockBlobStorage) Store(ctx context.Context, content io.Reader, originalName string) (string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, content, originalName)
	}
	return "ab/abcdef.bin", nil
}

func (m *mockBlobStorage) Remove(ctx context.Context, path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, path)
	}
	return nil
}

func (m *mockBlobStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, path)
	}
	return nil, nil
}

type mockOwnerChecker struct {
	OwnerExistsFunc func(ctx context.Context, ownerType string, ownerID uint) (bool, error)
}

func (m *mockOwnerChecker) OwnerExists(ctx context.Context, ownerType string, ownerID uint) (bool, error) {
	if m.OwnerExistsFunc != nil {
		return m.OwnerExistsFunc(ctx, ownerType, ownerID)
	}
	return true, nil
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
