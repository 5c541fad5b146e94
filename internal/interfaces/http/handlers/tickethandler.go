package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	mediaUsecases "norte/internal/application/media/usecases"
	"norte/internal/application/ticket/usecases"
	"norte/internal/domain/media"
	"norte/internal/shared/biztime"
	"norte/internal/shared/logger"
	"norte/internal/shared/services/markdown"
	"norte/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase       *usecases.CreateTicketUseCase
	updateUseCase       *usecases.UpdateTicketUseCase
	deleteUseCase       *usecases.DeleteTicketUseCase
	getUseCase          *usecases.GetTicketUseCase
	listUseCase         *usecases.ListTicketsUseCase
	updateStatusUseCase *usecases.UpdateTicketStatusUseCase
	createTaskUseCase   *usecases.CreateTaskUseCase
	updateTaskUseCase   *usecases.UpdateTaskUseCase
	deleteTaskUseCase   *usecases.DeleteTaskUseCase
	toggleTaskUseCase   *usecases.ToggleTaskUseCase
	detachOwnerUseCase  *mediaUsecases.DetachOwnerUseCase
	markdownService     markdown.Service
	logger              logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	updateStatusUC *usecases.UpdateTicketStatusUseCase,
	createTaskUC *usecases.CreateTaskUseCase,
	updateTaskUC *usecases.UpdateTaskUseCase,
	deleteTaskUC *usecases.DeleteTaskUseCase,
	toggleTaskUC *usecases.ToggleTaskUseCase,
	detachOwnerUC *mediaUsecases.DetachOwnerUseCase,
	markdownService markdown.Service,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase:       createUC,
		updateUseCase:       updateUC,
		deleteUseCase:       deleteUC,
		getUseCase:          getUC,
		listUseCase:         listUC,
		updateStatusUseCase: updateStatusUC,
		createTaskUseCase:   createTaskUC,
		updateTaskUseCase:   updateTaskUC,
		deleteTaskUseCase:   deleteTaskUC,
		toggleTaskUseCase:   toggleTaskUC,
		detachOwnerUseCase:  detachOwnerUC,
		markdownService:     markdownService,
		logger:              logger,
	}
}

type TicketRequest struct {
	BudgetID       uint   `json:"budget_id" binding:"required"`
	AssigneeID     uint   `json:"assignee_id" binding:"required"`
	Priority       string `json:"priority" binding:"max=20"`
	ScheduledStart string `json:"scheduled_start"`
	ScheduledEnd   string `json:"scheduled_end"`
	Instructions   string `json:"instructions"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description"`
	AssigneeID  *uint  `json:"assignee_id"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required"`
	AssigneeID  *uint  `json:"assignee_id"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
}

// TicketResponse wraps the ticket payload with the sanitized HTML
// rendering of its markdown instructions.
type TicketResponse struct {
	*usecases.TicketDTO
	InstructionsHTML string `json:"instructions_html,omitempty"`
}

func (h *TicketHandler) ticketResponse(dto *usecases.TicketDTO) TicketResponse {
	resp := TicketResponse{TicketDTO: dto}
	if dto.Instructions != "" {
		html, err := h.markdownService.ToHTMLSanitized(dto.Instructions)
		if err != nil {
			h.logger.Warnw("failed to render ticket instructions", "ticket_id", dto.ID, "error", err)
		} else {
			resp.InstructionsHTML = html
		}
	}
	return resp
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := biztime.ParseDateInBizTimezone(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	start, err := parseOptionalDate(req.ScheduledStart)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "scheduled_start must be in YYYY-MM-DD format")
		return
	}
	end, err := parseOptionalDate(req.ScheduledEnd)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "scheduled_end must be in YYYY-MM-DD format")
		return
	}

	cmd := usecases.CreateTicketCommand{
		BudgetID:       req.BudgetID,
		AssigneeID:     req.AssigneeID,
		Priority:       req.Priority,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Instructions:   req.Instructions,
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created successfully")
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
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
	if raw := c.Query("assignee_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			assigneeID := uint(id)
			query.AssigneeID = &assigneeID
		}
	}
	if raw := c.Query("budget_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			budgetID := uint(id)
			query.BudgetID = &budgetID
		}
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.ticketResponse(dto))
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	start, err := parseOptionalDate(req.ScheduledStart)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "scheduled_start must be in YYYY-MM-DD format")
		return
	}
	end, err := parseOptionalDate(req.ScheduledEnd)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "scheduled_end must be in YYYY-MM-DD format")
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:       id,
		AssigneeID:     req.AssigneeID,
		Priority:       req.Priority,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Instructions:   req.Instructions,
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", h.ticketResponse(dto))
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Attachments are cleaned up after the row cascade succeeds.
	detach := mediaUsecases.DetachOwnerCommand{OwnerType: media.OwnerTicket, OwnerID: id}
	if err := h.detachOwnerUseCase.Execute(c.Request.Context(), detach); err != nil {
		h.logger.Warnw("failed to detach ticket attachments", "ticket_id", id, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted successfully", nil)
}

func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateTicketStatusCommand{
		TicketID: id,
		Status:   req.Status,
	}

	result, err := h.updateStatusUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status updated", result)
}

func (h *TicketHandler) CreateTask(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "start_date must be in YYYY-MM-DD format")
		return
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "due_date must be in YYYY-MM-DD format")
		return
	}

	cmd := usecases.CreateTaskCommand{
		TicketID:    ticketID,
		Name:        req.Name,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		StartDate:   startDate,
		DueDate:     dueDate,
	}

	result, err := h.createTaskUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "task created successfully")
}

func (h *TicketHandler) UpdateTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "taskId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "start_date must be in YYYY-MM-DD format")
		return
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "due_date must be in YYYY-MM-DD format")
		return
	}

	cmd := usecases.UpdateTaskCommand{
		TaskID:      taskID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
		StartDate:   startDate,
		DueDate:     dueDate,
	}

	result, err := h.updateTaskUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "task updated successfully", result)
}

func (h *TicketHandler) ToggleTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "taskId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleTaskUseCase.Execute(c.Request.Context(), usecases.ToggleTaskCommand{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "task toggled", result)
}

func (h *TicketHandler) DeleteTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "taskId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTaskUseCase.Execute(c.Request.Context(), usecases.DeleteTaskCommand{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detach := mediaUsecases.DetachOwnerCommand{OwnerType: media.OwnerTask, OwnerID: taskID}
	if err := h.detachOwnerUseCase.Execute(c.Request.Context(), detach); err != nil {
		h.logger.Warnw("failed to detach task attachments", "task_id", taskID, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "task deleted successfully", result)
}
