package usecases

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/media"
	apperrors "norte/internal/shared/errors"
)

func reconstructAttachment(t *testing.T, id uint, ownerType string, ownerID uint, path string) *media.Attachment {
	t.Helper()
	a, err := media.ReconstructAttachment(
		id, ownerType, ownerID, media.CollectionFiles,
		path, "cotizacion.pdf", "application/pdf", 2048,
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return a
}

func TestUploadAttachmentUseCase_Execute(t *testing.T) {
	var storedName string
	storage := &mockBlobStorage{
		StoreFunc: func(ctx context.Context, content io.Reader, originalName string) (string, error) {
			storedName = originalName
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "pdf-bytes", string(data))
			return "c4/c4a1.pdf", nil
		},
	}
	repo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, attachment *media.Attachment) error {
			return attachment.SetID(7)
		},
	}

	uc := NewUploadAttachmentUseCase(repo, storage, &mockOwnerChecker{}, 10<<20, &mockLogger{})

	dto, err := uc.Execute(context.Background(), UploadAttachmentCommand{
		OwnerType:    media.OwnerBudget,
		OwnerID:      3,
		Collection:   media.CollectionFiles,
		OriginalName: "cotizacion.pdf",
		MimeType:     "application/pdf",
		Size:         9,
		Content:      strings.NewReader("pdf-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), dto.ID)
	assert.Equal(t, media.OwnerBudget, dto.OwnerType)
	assert.Equal(t, "cotizacion.pdf", dto.OriginalName)
	assert.Equal(t, "cotizacion.pdf", storedName)
}

func TestUploadAttachmentUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  UploadAttachmentCommand
	}{
		{
			name: "unknown owner type",
			cmd: UploadAttachmentCommand{
				OwnerType: "invoice", OwnerID: 1, Collection: media.CollectionFiles,
				OriginalName: "a.pdf", Size: 10, Content: strings.NewReader("x"),
			},
		},
		{
			name: "unknown collection",
			cmd: UploadAttachmentCommand{
				OwnerType: media.OwnerTicket, OwnerID: 1, Collection: "gallery",
				OriginalName: "a.pdf", Size: 10, Content: strings.NewReader("x"),
			},
		},
		{
			name: "empty content",
			cmd: UploadAttachmentCommand{
				OwnerType: media.OwnerTicket, OwnerID: 1, Collection: media.CollectionEvidence,
				OriginalName: "a.pdf", Size: 0, Content: strings.NewReader(""),
			},
		},
		{
			name: "over size limit",
			cmd: UploadAttachmentCommand{
				OwnerType: media.OwnerTicket, OwnerID: 1, Collection: media.CollectionEvidence,
				OriginalName: "a.pdf", Size: 101, Content: strings.NewReader("x"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := false
			storage := &mockBlobStorage{
				StoreFunc: func(ctx context.Context, content io.Reader, originalName string) (string, error) {
					stored = true
					return "x", nil
				},
			}
			uc := NewUploadAttachmentUseCase(&mockAttachmentRepository{}, storage, &mockOwnerChecker{}, 100, &mockLogger{})

			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			assert.False(t, stored)
		})
	}
}

func TestUploadAttachmentUseCase_Execute_OwnerNotFound(t *testing.T) {
	owners := &mockOwnerChecker{
		OwnerExistsFunc: func(ctx context.Context, ownerType string, ownerID uint) (bool, error) {
			assert.Equal(t, media.OwnerTask, ownerType)
			assert.Equal(t, uint(42), ownerID)
			return false, nil
		},
	}
	uc := NewUploadAttachmentUseCase(&mockAttachmentRepository{}, &mockBlobStorage{}, owners, 0, &mockLogger{})

	_, err := uc.Execute(context.Background(), UploadAttachmentCommand{
		OwnerType: media.OwnerTask, OwnerID: 42, Collection: media.CollectionEvidence,
		OriginalName: "foto.jpg", Size: 5, Content: strings.NewReader("bytes"),
	})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestUploadAttachmentUseCase_Execute_SaveFailureRemovesFile(t *testing.T) {
	removed := ""
	storage := &mockBlobStorage{
		RemoveFunc: func(ctx context.Context, path string) error {
			removed = path
			return nil
		},
	}
	repo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, attachment *media.Attachment) error {
			return apperrors.NewInternalError("insert failed")
		},
	}
	uc := NewUploadAttachmentUseCase(repo, storage, &mockOwnerChecker{}, 0, &mockLogger{})

	_, err := uc.Execute(context.Background(), UploadAttachmentCommand{
		OwnerType: media.OwnerPayment, OwnerID: 2, Collection: media.CollectionProof,
		OriginalName: "recibo.png", Size: 5, Content: strings.NewReader("bytes"),
	})

	require.Error(t, err)
	assert.Equal(t, "ab/abcdef.bin", removed)
}

func TestDeleteAttachmentUseCase_Execute(t *testing.T) {
	deletedID := uint(0)
	removedPath := ""
	repo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*media.Attachment, error) {
			return reconstructAttachment(t, id, media.OwnerBudget, 3, "c4/c4a1.pdf"), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	storage := &mockBlobStorage{
		RemoveFunc: func(ctx context.Context, path string) error {
			removedPath = path
			return nil
		},
	}

	uc := NewDeleteAttachmentUseCase(repo, storage, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteAttachmentCommand{AttachmentID: 9})

	require.NoError(t, err)
	assert.Equal(t, uint(9), deletedID)
	assert.Equal(t, "c4/c4a1.pdf", removedPath)
}

func TestDeleteAttachmentUseCase_Execute_NotFound(t *testing.T) {
	uc := NewDeleteAttachmentUseCase(&mockAttachmentRepository{}, &mockBlobStorage{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAttachmentCommand{AttachmentID: 99})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestListAttachmentsUseCase_Execute(t *testing.T) {
	repo := &mockAttachmentRepository{
		GetByOwnerFunc: func(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error) {
			assert.Equal(t, media.OwnerTicket, ownerType)
			assert.Equal(t, uint(5), ownerID)
			return []*media.Attachment{
				reconstructAttachment(t, 1, ownerType, ownerID, "aa/one.pdf"),
				reconstructAttachment(t, 2, ownerType, ownerID, "bb/two.pdf"),
			}, nil
		},
	}

	uc := NewListAttachmentsUseCase(repo, &mockLogger{})
	dtos, err := uc.Execute(context.Background(), ListAttachmentsQuery{OwnerType: media.OwnerTicket, OwnerID: 5})

	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, uint(1), dtos[0].ID)
	assert.Equal(t, "cotizacion.pdf", dtos[0].OriginalName)
	assert.Equal(t, int64(2048), dtos[1].Size)
}

func TestDetachOwnerUseCase_Execute(t *testing.T) {
	var removed []string
	repo := &mockAttachmentRepository{
		DeleteByOwnerFunc: func(ctx context.Context, ownerType string, ownerID uint) ([]*media.Attachment, error) {
			return []*media.Attachment{
				reconstructAttachment(t, 1, ownerType, ownerID, "aa/one.pdf"),
				reconstructAttachment(t, 2, ownerType, ownerID, "bb/two.pdf"),
			}, nil
		},
	}
	storage := &mockBlobStorage{
		RemoveFunc: func(ctx context.Context, path string) error {
			removed = append(removed, path)
			return nil
		},
	}

	uc := NewDetachOwnerUseCase(repo, storage, &mockLogger{})
	err := uc.Execute(context.Background(), DetachOwnerCommand{OwnerType: media.OwnerBudget, OwnerID: 3})

	require.NoError(t, err)
	assert.Equal(t, []string{"aa/one.pdf", "bb/two.pdf"}, removed)
}
