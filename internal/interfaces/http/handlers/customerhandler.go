package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"norte/internal/application/customer/usecases"
	"norte/internal/shared/logger"
	"norte/internal/shared/utils"
)

type CustomerHandler struct {
	createUseCase        *usecases.CreateCustomerUseCase
	updateUseCase        *usecases.UpdateCustomerUseCase
	deleteUseCase        *usecases.DeleteCustomerUseCase
	getUseCase           *usecases.GetCustomerUseCase
	listUseCase          *usecases.ListCustomersUseCase
	createContactUseCase *usecases.CreateContactUseCase
	updateContactUseCase *usecases.UpdateContactUseCase
	deleteContactUseCase *usecases.DeleteContactUseCase
	logger               logger.Interface
}

func NewCustomerHandler(
	createUC *usecases.CreateCustomerUseCase,
	updateUC *usecases.UpdateCustomerUseCase,
	deleteUC *usecases.DeleteCustomerUseCase,
	getUC *usecases.GetCustomerUseCase,
	listUC *usecases.ListCustomersUseCase,
	createContactUC *usecases.CreateContactUseCase,
	updateContactUC *usecases.UpdateContactUseCase,
	deleteContactUC *usecases.DeleteContactUseCase,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createUseCase:        createUC,
		updateUseCase:        updateUC,
		deleteUseCase:        deleteUC,
		getUseCase:           getUC,
		listUseCase:          listUC,
		createContactUseCase: createContactUC,
		updateContactUseCase: updateContactUC,
		deleteContactUseCase: deleteContactUC,
		logger:               logger,
	}
}

type ContactRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Position string `json:"position" binding:"max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"max=30"`
	Branches string `json:"branches" binding:"max=255"`
}

type CreateCustomerRequest struct {
	Name             string           `json:"name" binding:"required,min=2,max=150"`
	BusinessName     string           `json:"business_name" binding:"max=200"`
	RFC              string           `json:"rfc" binding:"max=13"`
	PaymentCondition string           `json:"payment_condition" binding:"max=100"`
	PaymentMethod    string           `json:"payment_method" binding:"max=100"`
	InvoiceUsage     string           `json:"invoice_usage" binding:"max=100"`
	Currency         string           `json:"currency" binding:"max=3"`
	Contacts         []ContactRequest `json:"contacts" binding:"dive"`
}

type UpdateCustomerRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=150"`
	BusinessName     string `json:"business_name" binding:"max=200"`
	RFC              string `json:"rfc" binding:"max=13"`
	PaymentCondition string `json:"payment_condition" binding:"max=100"`
	PaymentMethod    string `json:"payment_method" binding:"max=100"`
	InvoiceUsage     string `json:"invoice_usage" binding:"max=100"`
	Currency         string `json:"currency" binding:"max=3"`
	Active           *bool  `json:"active"`
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateCustomerCommand{
		Name:             req.Name,
		BusinessName:     req.BusinessName,
		RFC:              req.RFC,
		PaymentCondition: req.PaymentCondition,
		PaymentMethod:    req.PaymentMethod,
		InvoiceUsage:     req.InvoiceUsage,
		Currency:         req.Currency,
	}
	for _, contact := range req.Contacts {
		cmd.Contacts = append(cmd.Contacts, usecases.ContactInput{
			Name:     contact.Name,
			Position: contact.Position,
			Email:    contact.Email,
			Phone:    contact.Phone,
			Branches: contact.Branches,
		})
	}

	dto, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "customer created successfully")
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListCustomersQuery{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			query.Active = &active
		}
	}
	if search := c.Query("search"); search != "" {
		query.Search = &search
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Customers, result.Total, result.Page, result.PageSize)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetCustomerQuery{CustomerID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateCustomerCommand{
		CustomerID:       id,
		Name:             req.Name,
		BusinessName:     req.BusinessName,
		RFC:              req.RFC,
		PaymentCondition: req.PaymentCondition,
		PaymentMethod:    req.PaymentMethod,
		InvoiceUsage:     req.InvoiceUsage,
		Currency:         req.Currency,
		Active:           req.Active,
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customer updated successfully", dto)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteCustomerCommand{CustomerID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customer deleted successfully", nil)
}

func (h *CustomerHandler) CreateContact(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateContactCommand{
		CustomerID: customerID,
		Name:       req.Name,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
		Branches:   req.Branches,
	}

	dto, err := h.createContactUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "contact created successfully")
}

func (h *CustomerHandler) UpdateContact(c *gin.Context) {
	contactID, err := utils.ParseIDParam(c, "contactId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateContactCommand{
		ContactID: contactID,
		Name:      req.Name,
		Position:  req.Position,
		Email:     req.Email,
		Phone:     req.Phone,
		Branches:  req.Branches,
	}

	dto, err := h.updateContactUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "contact updated successfully", dto)
}

func (h *CustomerHandler) DeleteContact(c *gin.Context) {
	contactID, err := utils.ParseIDParam(c, "contactId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteContactUseCase.Execute(c.Request.Context(), usecases.DeleteContactCommand{ContactID: contactID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "contact deleted successfully", nil)
}
