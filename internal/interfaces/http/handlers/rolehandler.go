package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"norte/internal/application/permission/usecases"
	"norte/internal/shared/logger"
	"norte/internal/shared/utils"
)

type RoleHandler struct {
	createUseCase          *usecases.CreateRoleUseCase
	updateUseCase          *usecases.UpdateRoleUseCase
	deleteUseCase          *usecases.DeleteRoleUseCase
	getUseCase             *usecases.GetRoleUseCase
	listUseCase            *usecases.ListRolesUseCase
	listPermissionsUseCase *usecases.ListPermissionsUseCase
	logger                 logger.Interface
}

func NewRoleHandler(
	createUC *usecases.CreateRoleUseCase,
	updateUC *usecases.UpdateRoleUseCase,
	deleteUC *usecases.DeleteRoleUseCase,
	getUC *usecases.GetRoleUseCase,
	listUC *usecases.ListRolesUseCase,
	listPermissionsUC *usecases.ListPermissionsUseCase,
	logger logger.Interface,
) *RoleHandler {
	return &RoleHandler{
		createUseCase:          createUC,
		updateUseCase:          updateUC,
		deleteUseCase:          deleteUC,
		getUseCase:             getUC,
		listUseCase:            listUC,
		listPermissionsUseCase: listPermissionsUC,
		logger:                 logger,
	}
}

type CreateRoleRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Description   string `json:"description" binding:"max=255"`
	PermissionIDs []uint `json:"permission_ids"`
}

type UpdateRoleRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Description   string `json:"description" binding:"max=255"`
	PermissionIDs []uint `json:"permission_ids"`
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateRoleCommand{
		Name:          req.Name,
		Description:   req.Description,
		PermissionIDs: req.PermissionIDs,
	}

	dto, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "role created successfully")
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", roles)
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetRoleQuery{RoleID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateRoleCommand{
		RoleID:        id,
		Name:          req.Name,
		Description:   req.Description,
		PermissionIDs: req.PermissionIDs,
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated successfully", dto)
}

func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteRoleCommand{RoleID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role deleted successfully", nil)
}

func (h *RoleHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.listPermissionsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", permissions)
}
