package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"norte/internal/application/media/usecases"
	"norte/internal/domain/media"
	"norte/internal/shared/logger"
	"norte/internal/shared/utils"
)

type AttachmentHandler struct {
	uploadUseCase *usecases.UploadAttachmentUseCase
	deleteUseCase *usecases.DeleteAttachmentUseCase
	listUseCase   *usecases.ListAttachmentsUseCase
	openUseCase   *usecases.OpenAttachmentUseCase
	logger        logger.Interface
}

func NewAttachmentHandler(
	uploadUC *usecases.UploadAttachmentUseCase,
	deleteUC *usecases.DeleteAttachmentUseCase,
	listUC *usecases.ListAttachmentsUseCase,
	openUC *usecases.OpenAttachmentUseCase,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		uploadUseCase: uploadUC,
		deleteUseCase: deleteUC,
		listUseCase:   listUC,
		openUseCase:   openUC,
		logger:        logger,
	}
}

// UploadAttachment accepts a multipart form with a "file" field plus
// owner_type, owner_id and collection fields.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file field is required")
		return
	}

	ownerType := c.PostForm("owner_type")
	collection := c.PostForm("collection")
	if collection == "" {
		collection = media.CollectionFiles
	}

	ownerID, err := strconv.ParseUint(c.PostForm("owner_id"), 10, 32)
	if err != nil || ownerID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "owner_id must be a positive integer")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	cmd := usecases.UploadAttachmentCommand{
		OwnerType:    ownerType,
		OwnerID:      uint(ownerID),
		Collection:   collection,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Content:      file,
	}

	dto, err := h.uploadUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "attachment uploaded successfully")
}

func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	ownerType := c.Query("owner_type")

	ownerID, err := strconv.ParseUint(c.Query("owner_id"), 10, 32)
	if err != nil || ownerID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "owner_id must be a positive integer")
		return
	}

	query := usecases.ListAttachmentsQuery{
		OwnerType: ownerType,
		OwnerID:   uint(ownerID),
	}

	attachments, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", attachments)
}

// DownloadAttachment streams the blob with the original filename for the
// browser's save dialog.
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, content, err := h.openUseCase.Execute(c.Request.Context(), usecases.OpenAttachmentQuery{AttachmentID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer content.Close()

	contentType := dto.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(
		http.StatusOK,
		dto.Size,
		contentType,
		content,
		map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", dto.OriginalName),
		},
	)
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{AttachmentID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "attachment deleted successfully", nil)
}
