package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"norte/internal/application/analytics/usecases"
	"norte/internal/shared/biztime"
	"norte/internal/shared/logger"
	"norte/internal/shared/utils"
)

type AnalyticsHandler struct {
	crmUseCase    *usecases.GetCRMAnalyticsUseCase
	ticketUseCase *usecases.GetTicketAnalyticsUseCase
	logger        logger.Interface
}

func NewAnalyticsHandler(
	crmUC *usecases.GetCRMAnalyticsUseCase,
	ticketUC *usecases.GetTicketAnalyticsUseCase,
	logger logger.Interface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		crmUseCase:    crmUC,
		ticketUseCase: ticketUC,
		logger:        logger,
	}
}

// analyticsQuery parses the optional from/to date bounds. Defaulting of an
// empty range is left to the use case.
func analyticsQuery(c *gin.Context) (usecases.AnalyticsQuery, bool) {
	var query usecases.AnalyticsQuery

	if raw := c.Query("from"); raw != "" {
		from, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "from must be in YYYY-MM-DD format")
			return query, false
		}
		query.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "to must be in YYYY-MM-DD format")
			return query, false
		}
		query.To = to
	}

	return query, true
}

func (h *AnalyticsHandler) GetCRMAnalytics(c *gin.Context) {
	query, ok := analyticsQuery(c)
	if !ok {
		return
	}

	dto, err := h.crmUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *AnalyticsHandler) GetTicketAnalytics(c *gin.Context) {
	query, ok := analyticsQuery(c)
	if !ok {
		return
	}

	dto, err := h.ticketUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
