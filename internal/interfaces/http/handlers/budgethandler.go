package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"norte/internal/application/budget/usecases"
	mediaUsecases "norte/internal/application/media/usecases"
	"norte/internal/domain/media"
	"norte/internal/shared/biztime"
	"norte/internal/shared/logger"
	"norte/internal/shared/services/markdown"
	"norte/internal/shared/utils"
)

type BudgetHandler struct {
	createUseCase        *usecases.CreateBudgetUseCase
	updateUseCase        *usecases.UpdateBudgetUseCase
	deleteUseCase        *usecases.DeleteBudgetUseCase
	getUseCase           *usecases.GetBudgetUseCase
	listUseCase          *usecases.ListBudgetsUseCase
	updateStatusUseCase  *usecases.UpdateBudgetStatusUseCase
	addPaymentUseCase    *usecases.AddPaymentUseCase
	deletePaymentUseCase *usecases.DeletePaymentUseCase
	detachOwnerUseCase   *mediaUsecases.DetachOwnerUseCase
	markdownService      markdown.Service
	logger               logger.Interface
}

func NewBudgetHandler(
	createUC *usecases.CreateBudgetUseCase,
	updateUC *usecases.UpdateBudgetUseCase,
	deleteUC *usecases.DeleteBudgetUseCase,
	getUC *usecases.GetBudgetUseCase,
	listUC *usecases.ListBudgetsUseCase,
	updateStatusUC *usecases.UpdateBudgetStatusUseCase,
	addPaymentUC *usecases.AddPaymentUseCase,
	deletePaymentUC *usecases.DeletePaymentUseCase,
	detachOwnerUC *mediaUsecases.DetachOwnerUseCase,
	markdownService markdown.Service,
	logger logger.Interface,
) *BudgetHandler {
	return &BudgetHandler{
		createUseCase:        createUC,
		updateUseCase:        updateUC,
		deleteUseCase:        deleteUC,
		getUseCase:           getUC,
		listUseCase:          listUC,
		updateStatusUseCase:  updateStatusUC,
		addPaymentUseCase:    addPaymentUC,
		deletePaymentUseCase: deletePaymentUC,
		detachOwnerUseCase:   detachOwnerUC,
		markdownService:      markdownService,
		logger:               logger,
	}
}

type ConceptRequest struct {
	Concept string          `json:"concept" binding:"required,max=255"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

type BudgetRequest struct {
	Name              string           `json:"name" binding:"required,min=2,max=200"`
	ServiceType       string           `json:"service_type" binding:"required,max=100"`
	Description       string           `json:"description"`
	Duration          string           `json:"duration" binding:"max=100"`
	Priority          string           `json:"priority" binding:"max=20"`
	ResponsibleID     uint             `json:"responsible_id" binding:"required"`
	CustomerID        uint             `json:"customer_id" binding:"required"`
	CustomerContactID uint             `json:"customer_contact_id"`
	Branch            string           `json:"branch" binding:"max=150"`
	Concepts          []ConceptRequest `json:"concepts" binding:"required,min=1,dive"`
}

type UpdateBudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate   string          `json:"payment_date" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"max=100"`
	Reference     string          `json:"reference" binding:"max=150"`
}

// BudgetResponse wraps the budget payload with the sanitized HTML
// rendering of its markdown description.
type BudgetResponse struct {
	*usecases.BudgetDTO
	DescriptionHTML string `json:"description_html,omitempty"`
}

func (h *BudgetHandler) budgetResponse(dto *usecases.BudgetDTO) BudgetResponse {
	resp := BudgetResponse{BudgetDTO: dto}
	if dto.Description != "" {
		html, err := h.markdownService.ToHTMLSanitized(dto.Description)
		if err != nil {
			h.logger.Warnw("failed to render budget description", "budget_id", dto.ID, "error", err)
		} else {
			resp.DescriptionHTML = html
		}
	}
	return resp
}

func conceptInputs(reqs []ConceptRequest) []usecases.ConceptInput {
	concepts := make([]usecases.ConceptInput, 0, len(reqs))
	for _, r := range reqs {
		concepts = append(concepts, usecases.ConceptInput{
			Concept: r.Concept,
			Amount:  r.Amount,
		})
	}
	return concepts
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateBudgetCommand{
		Name:              req.Name,
		ServiceType:       req.ServiceType,
		Description:       req.Description,
		Duration:          req.Duration,
		Priority:          req.Priority,
		ResponsibleID:     req.ResponsibleID,
		CustomerID:        req.CustomerID,
		CustomerContactID: req.CustomerContactID,
		Branch:            req.Branch,
		Concepts:          conceptInputs(req.Concepts),
	}

	dto, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, h.budgetResponse(dto), "budget created successfully")
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListBudgetsQuery{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		query.Priority = &priority
	}
	if search := c.Query("search"); search != "" {
		query.Search = &search
	}
	if raw := c.Query("customer_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			customerID := uint(id)
			query.CustomerID = &customerID
		}
	}
	if raw := c.Query("responsible_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			responsibleID := uint(id)
			query.ResponsibleID = &responsibleID
		}
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Budgets, result.Total, result.Page, result.PageSize)
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetBudgetQuery{BudgetID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.budgetResponse(dto))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateBudgetCommand{
		BudgetID:          id,
		Name:              req.Name,
		ServiceType:       req.ServiceType,
		Description:       req.Description,
		Duration:          req.Duration,
		Priority:          req.Priority,
		ResponsibleID:     req.ResponsibleID,
		CustomerID:        req.CustomerID,
		CustomerContactID: req.CustomerContactID,
		Branch:            req.Branch,
		Concepts:          conceptInputs(req.Concepts),
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "budget updated successfully", h.budgetResponse(dto))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteBudgetCommand{BudgetID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Attachments are cleaned up after the row cascade succeeds.
	detach := mediaUsecases.DetachOwnerCommand{OwnerType: media.OwnerBudget, OwnerID: id}
	if err := h.detachOwnerUseCase.Execute(c.Request.Context(), detach); err != nil {
		h.logger.Warnw("failed to detach budget attachments", "budget_id", id, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "budget deleted successfully", nil)
}

func (h *BudgetHandler) UpdateBudgetStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBudgetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateBudgetStatusCommand{
		BudgetID: id,
		Status:   req.Status,
	}

	result, err := h.updateStatusUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "budget status updated", result)
}

func (h *BudgetHandler) AddPayment(c *gin.Context) {
	budgetID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	paymentDate, err := biztime.ParseDateInBizTimezone(req.PaymentDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "payment_date must be in YYYY-MM-DD format")
		return
	}

	cmd := usecases.AddPaymentCommand{
		BudgetID:      budgetID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	}

	dto, err := h.addPaymentUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "payment registered successfully")
}

func (h *BudgetHandler) DeletePayment(c *gin.Context) {
	budgetID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	paymentID, err := utils.ParseIDParam(c, "paymentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeletePaymentCommand{
		BudgetID:  budgetID,
		PaymentID: paymentID,
	}

	if err := h.deletePaymentUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detach := mediaUsecases.DetachOwnerCommand{OwnerType: media.OwnerPayment, OwnerID: paymentID}
	if err := h.detachOwnerUseCase.Execute(c.Request.Context(), detach); err != nil {
		h.logger.Warnw("failed to detach payment attachments", "payment_id", paymentID, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "payment deleted successfully", nil)
}
