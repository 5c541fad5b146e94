// Package http assembles the gin engine: route table, middleware chain and
// the dependency container behind the handlers.
package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"norte/internal/interfaces/http/middleware"
	"norte/internal/shared/logger"
)

type Router struct {
	engine         *gin.Engine
	container      *Container
	allowedOrigins []string
	logger         logger.Interface
}

func NewRouter(container *Container, allowedOrigins []string, log logger.Interface) *Router {
	return &Router{
		engine:         gin.New(),
		container:      container,
		allowedOrigins: allowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.container.UserHandler.HealthCheck)

	requireAuth := r.container.AuthMiddleware.RequireAuth()
	perm := r.container.PermissionMiddleware

	auth := r.engine.Group("/auth")
	{
		auth.POST("/login", r.container.LoginRateLimiter.Limit(), r.container.AuthHandler.Login)
		auth.GET("/me", requireAuth, r.container.AuthHandler.GetCurrentUser)
	}

	users := r.engine.Group("/users")
	users.Use(requireAuth)
	{
		h := r.container.UserHandler
		users.POST("", perm.RequirePermission("users", "create"), h.CreateUser)
		users.GET("", perm.RequirePermission("users", "index"), h.ListUsers)
		users.GET("/:id", perm.RequirePermission("users", "index"), h.GetUser)
		users.PUT("/:id", perm.RequirePermission("users", "edit"), h.UpdateUser)
		users.DELETE("/:id", perm.RequirePermission("users", "delete"), h.DeleteUser)
		users.PATCH("/:id/toggle-status", perm.RequirePermission("users", "toggle-status"), h.ToggleUserStatus)
		users.PUT("/:id/roles", perm.RequirePermission("users", "edit"), h.AssignRoles)
	}

	roles := r.engine.Group("/roles")
	roles.Use(requireAuth)
	{
		h := r.container.RoleHandler
		roles.POST("", perm.RequirePermission("roles", "create"), h.CreateRole)
		roles.GET("", perm.RequirePermission("roles", "index"), h.ListRoles)
		roles.GET("/:id", perm.RequirePermission("roles", "index"), h.GetRole)
		roles.PUT("/:id", perm.RequirePermission("roles", "edit"), h.UpdateRole)
		roles.DELETE("/:id", perm.RequirePermission("roles", "delete"), h.DeleteRole)
	}

	r.engine.GET("/permissions", requireAuth, perm.RequirePermission("roles", "index"),
		r.container.RoleHandler.ListPermissions)

	customers := r.engine.Group("/customers")
	customers.Use(requireAuth)
	{
		h := r.container.CustomerHandler
		customers.POST("", perm.RequirePermission("customers", "create"), h.CreateCustomer)
		customers.GET("", perm.RequirePermission("customers", "index"), h.ListCustomers)
		customers.GET("/:id", perm.RequirePermission("customers", "index"), h.GetCustomer)
		customers.PUT("/:id", perm.RequirePermission("customers", "edit"), h.UpdateCustomer)
		customers.DELETE("/:id", perm.RequirePermission("customers", "delete"), h.DeleteCustomer)

		customers.POST("/:id/contacts", perm.RequirePermission("customers", "edit"), h.CreateContact)
		customers.PUT("/:id/contacts/:contactId", perm.RequirePermission("customers", "edit"), h.UpdateContact)
		customers.DELETE("/:id/contacts/:contactId", perm.RequirePermission("customers", "edit"), h.DeleteContact)
	}

	budgets := r.engine.Group("/budgets")
	budgets.Use(requireAuth)
	{
		h := r.container.BudgetHandler
		budgets.POST("", perm.RequirePermission("budgets", "create"), h.CreateBudget)
		budgets.GET("", perm.RequirePermission("budgets", "index"), h.ListBudgets)
		budgets.GET("/:id", perm.RequirePermission("budgets", "index"), h.GetBudget)
		budgets.PUT("/:id", perm.RequirePermission("budgets", "edit"), h.UpdateBudget)
		budgets.DELETE("/:id", perm.RequirePermission("budgets", "delete"), h.DeleteBudget)
		budgets.PATCH("/:id/status", perm.RequirePermission("budgets", "edit"), h.UpdateBudgetStatus)

		budgets.POST("/:id/payments", perm.RequirePermission("budgets", "payments.manage"), h.AddPayment)
		budgets.DELETE("/:id/payments/:paymentId", perm.RequirePermission("budgets", "payments.manage"), h.DeletePayment)
	}

	tickets := r.engine.Group("/tickets")
	tickets.Use(requireAuth)
	{
		h := r.container.TicketHandler
		tickets.POST("", perm.RequirePermission("tickets", "create"), h.CreateTicket)
		tickets.GET("", perm.RequirePermission("tickets", "index"), h.ListTickets)
		tickets.GET("/:id", perm.RequirePermission("tickets", "index"), h.GetTicket)
		tickets.PUT("/:id", perm.RequirePermission("tickets", "edit"), h.UpdateTicket)
		tickets.DELETE("/:id", perm.RequirePermission("tickets", "delete"), h.DeleteTicket)
		tickets.PATCH("/:id/status", perm.RequirePermission("tickets", "edit"), h.UpdateTicketStatus)

		tickets.POST("/:id/tasks", perm.RequirePermission("tickets", "tasks.manage"), h.CreateTask)
		tickets.PUT("/:id/tasks/:taskId", perm.RequirePermission("tickets", "tasks.manage"), h.UpdateTask)
		tickets.PATCH("/:id/tasks/:taskId/toggle", perm.RequirePermission("tickets", "tasks.manage"), h.ToggleTask)
		tickets.DELETE("/:id/tasks/:taskId", perm.RequirePermission("tickets", "tasks.manage"), h.DeleteTask)
	}

	// Calendar is shared by every authenticated user; the use cases enforce
	// creator-only mutations.
	calendar := r.engine.Group("/calendar")
	calendar.Use(requireAuth)
	{
		h := r.container.CalendarHandler
		calendar.POST("/events", h.CreateEvent)
		calendar.GET("/events", h.ListEvents)
		calendar.PUT("/events/:id", h.UpdateEvent)
		calendar.DELETE("/events/:id", h.DeleteEvent)
		calendar.POST("/events/:id/respond", h.RespondInvitation)
		calendar.GET("/overview", h.GetOverview)
	}

	analytics := r.engine.Group("/analytics")
	analytics.Use(requireAuth)
	{
		h := r.container.AnalyticsHandler
		analytics.GET("/crm", perm.RequirePermission("crm", "analytics"), h.GetCRMAnalytics)
		analytics.GET("/tickets", perm.RequirePermission("tickets", "analytics"), h.GetTicketAnalytics)
	}

	attachments := r.engine.Group("/attachments")
	attachments.Use(requireAuth)
	{
		h := r.container.AttachmentHandler
		attachments.POST("", h.UploadAttachment)
		attachments.GET("", h.ListAttachments)
		attachments.GET("/:id/download", h.DownloadAttachment)
		attachments.DELETE("/:id", h.DeleteAttachment)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
