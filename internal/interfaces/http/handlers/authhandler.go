package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"norte/internal/application/user/usecases"
	"norte/internal/shared/logger"
	"norte/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase   *usecases.LoginUseCase
	getUserUseCase *usecases.GetUserUseCase
	logger         logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	getUserUC *usecases.GetUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:   loginUC,
		getUserUseCase: getUserUC,
		logger:         logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "email", req.Email, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

// GetCurrentUser godoc
// @Summary Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	dto, err := h.getUserUseCase.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
