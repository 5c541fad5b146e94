package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"norte/internal/application/calendar/usecases"
	"norte/internal/shared/logger"
	"norte/internal/shared/utils"
)

type CalendarHandler struct {
	createUseCase   *usecases.CreateEventUseCase
	updateUseCase   *usecases.UpdateEventUseCase
	deleteUseCase   *usecases.DeleteEventUseCase
	listUseCase     *usecases.ListEventsUseCase
	respondUseCase  *usecases.RespondInvitationUseCase
	overviewUseCase *usecases.GetOverviewUseCase
	logger          logger.Interface
}

func NewCalendarHandler(
	createUC *usecases.CreateEventUseCase,
	updateUC *usecases.UpdateEventUseCase,
	deleteUC *usecases.DeleteEventUseCase,
	listUC *usecases.ListEventsUseCase,
	respondUC *usecases.RespondInvitationUseCase,
	overviewUC *usecases.GetOverviewUseCase,
	logger logger.Interface,
) *CalendarHandler {
	return &CalendarHandler{
		createUseCase:   createUC,
		updateUseCase:   updateUC,
		deleteUseCase:   deleteUC,
		listUseCase:     listUC,
		respondUseCase:  respondUC,
		overviewUseCase: overviewUC,
		logger:          logger,
	}
}

type EventRequest struct {
	EventType      string    `json:"event_type" binding:"max=50"`
	Title          string    `json:"title" binding:"required,min=2,max=200"`
	Description    string    `json:"description"`
	Location       string    `json:"location" binding:"max=255"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	ParticipantIDs []uint    `json:"participant_ids"`
}

type RespondInvitationRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"max=255"`
}

func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateEventCommand{
		CreatorID:      utils.CurrentUserID(c),
		EventType:      req.EventType,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ParticipantIDs: req.ParticipantIDs,
	}

	dto, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "event created successfully")
}

func (h *CalendarHandler) ListEvents(c *gin.Context) {
	query := usecases.ListEventsQuery{}

	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			query.From = &from
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, "from must be an RFC3339 timestamp")
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			query.To = &to
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, "to must be an RFC3339 timestamp")
			return
		}
	}
	if raw := c.Query("mine"); raw != "" {
		if mine, err := strconv.ParseBool(raw); err == nil && mine {
			userID := utils.CurrentUserID(c)
			query.UserID = &userID
		}
	}

	events, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", events)
}

func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateEventCommand{
		EventID:        id,
		ActorID:        utils.CurrentUserID(c),
		EventType:      req.EventType,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ParticipantIDs: req.ParticipantIDs,
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event updated successfully", dto)
}

func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteEventCommand{
		EventID: id,
		ActorID: utils.CurrentUserID(c),
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event deleted successfully", nil)
}

func (h *CalendarHandler) RespondInvitation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RespondInvitationCommand{
		EventID: id,
		ActorID: utils.CurrentUserID(c),
		Status:  req.Status,
		Reason:  req.Reason,
	}

	dto, err := h.respondUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "invitation response recorded", dto)
}

func (h *CalendarHandler) GetOverview(c *gin.Context) {
	query := usecases.GetOverviewQuery{UserID: utils.CurrentUserID(c)}

	result, err := h.overviewUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
