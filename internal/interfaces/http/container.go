package http

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	analyticsUsecases "norte/internal/application/analytics/usecases"
	budgetUsecases "norte/internal/application/budget/usecases"
	calendarUsecases "norte/internal/application/calendar/usecases"
	customerUsecases "norte/internal/application/customer/usecases"
	mediaUsecases "norte/internal/application/media/usecases"
	permissionApp "norte/internal/application/permission"
	permissionUsecases "norte/internal/application/permission/usecases"
	ticketUsecases "norte/internal/application/ticket/usecases"
	userUsecases "norte/internal/application/user/usecases"
	"norte/internal/infrastructure/auth"
	"norte/internal/infrastructure/config"
	"norte/internal/infrastructure/email"
	"norte/internal/infrastructure/media"
	permissionInfra "norte/internal/infrastructure/permission"
	"norte/internal/infrastructure/ratelimit"
	"norte/internal/infrastructure/repository"
	"norte/internal/interfaces/http/handlers"
	"norte/internal/interfaces/http/middleware"
	"norte/internal/shared/biztime"
	"norte/internal/shared/db"
	"norte/internal/shared/logger"
	"norte/internal/shared/services/markdown"
)

// Container wires repositories, use cases and handlers for the HTTP
// surface. Construction is eager so misconfiguration fails at startup.
type Container struct {
	AuthHandler       *handlers.AuthHandler
	UserHandler       *handlers.UserHandler
	RoleHandler       *handlers.RoleHandler
	CustomerHandler   *handlers.CustomerHandler
	BudgetHandler     *handlers.BudgetHandler
	TicketHandler     *handlers.TicketHandler
	CalendarHandler   *handlers.CalendarHandler
	AnalyticsHandler  *handlers.AnalyticsHandler
	AttachmentHandler *handlers.AttachmentHandler

	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	LoginRateLimiter     *middleware.LoginRateLimiter

	PermissionSeeder *permissionInfra.Seeder
}

func NewContainer(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	userRepo := repository.NewUserRepository(database)
	roleRepo := repository.NewRoleRepository(database)
	permissionRepo := repository.NewPermissionRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	contactRepo := repository.NewContactRepository(database)
	budgetRepo := repository.NewBudgetRepository(database)
	conceptRepo := repository.NewConceptRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	eventRepo := repository.NewEventRepository(database)
	participantRepo := repository.NewParticipantRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	ownerChecker := repository.NewAttachmentOwnerChecker(database)
	crmStatsRepo := repository.NewCRMStatsRepository(database)
	ticketStatsRepo := repository.NewTicketStatsRepository(database)

	txManager := db.NewTransactionManager(database)
	clock := biztime.SystemClock{}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permissionInfra.NewEnforcer(database, cfg.Casbin.ModelPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build policy enforcer: %w", err)
	}
	permissionService := permissionApp.NewService(roleRepo, permissionRepo, enforcer, log)

	mailer := email.NewInvitationMailer(&cfg.Email, userRepo, log)
	markdownService := markdown.NewService()

	storage, err := media.NewDiskStorage(cfg.Media.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	// auth
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtService, clock, log)

	// users
	createUserUC := userUsecases.NewCreateUserUseCase(userRepo, hasher, permissionService, log)
	updateUserUC := userUsecases.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userUsecases.NewDeleteUserUseCase(userRepo, permissionService, log)
	getUserUC := userUsecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, log)
	toggleUserStatusUC := userUsecases.NewToggleUserStatusUseCase(userRepo, log)
	assignRolesUC := userUsecases.NewAssignRolesUseCase(userRepo, permissionService, log)

	// roles and permissions
	createRoleUC := permissionUsecases.NewCreateRoleUseCase(roleRepo, permissionRepo, permissionService, log)
	updateRoleUC := permissionUsecases.NewUpdateRoleUseCase(roleRepo, permissionRepo, permissionService, log)
	deleteRoleUC := permissionUsecases.NewDeleteRoleUseCase(roleRepo, permissionService, log)
	getRoleUC := permissionUsecases.NewGetRoleUseCase(roleRepo, log)
	listRolesUC := permissionUsecases.NewListRolesUseCase(roleRepo, log)
	listPermissionsUC := permissionUsecases.NewListPermissionsUseCase(permissionRepo, log)

	// customers
	createCustomerUC := customerUsecases.NewCreateCustomerUseCase(customerRepo, contactRepo, txManager, log)
	updateCustomerUC := customerUsecases.NewUpdateCustomerUseCase(customerRepo, contactRepo, log)
	deleteCustomerUC := customerUsecases.NewDeleteCustomerUseCase(customerRepo, contactRepo, txManager, log)
	getCustomerUC := customerUsecases.NewGetCustomerUseCase(customerRepo, contactRepo, log)
	listCustomersUC := customerUsecases.NewListCustomersUseCase(customerRepo, contactRepo, log)
	createContactUC := customerUsecases.NewCreateContactUseCase(customerRepo, contactRepo, log)
	updateContactUC := customerUsecases.NewUpdateContactUseCase(contactRepo, log)
	deleteContactUC := customerUsecases.NewDeleteContactUseCase(contactRepo, log)

	// budgets
	createBudgetUC := budgetUsecases.NewCreateBudgetUseCase(budgetRepo, conceptRepo, txManager, log)
	updateBudgetUC := budgetUsecases.NewUpdateBudgetUseCase(budgetRepo, conceptRepo, paymentRepo, txManager, log)
	deleteBudgetUC := budgetUsecases.NewDeleteBudgetUseCase(budgetRepo, conceptRepo, txManager, log)
	getBudgetUC := budgetUsecases.NewGetBudgetUseCase(budgetRepo, conceptRepo, paymentRepo, log)
	listBudgetsUC := budgetUsecases.NewListBudgetsUseCase(budgetRepo, log)
	updateBudgetStatusUC := budgetUsecases.NewUpdateBudgetStatusUseCase(budgetRepo, log)
	addPaymentUC := budgetUsecases.NewAddPaymentUseCase(budgetRepo, paymentRepo, log)
	deletePaymentUC := budgetUsecases.NewDeletePaymentUseCase(paymentRepo, log)

	// tickets
	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, taskRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, taskRepo, txManager, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, taskRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, taskRepo, log)
	updateTicketStatusUC := ticketUsecases.NewUpdateTicketStatusUseCase(ticketRepo, log)
	createTaskUC := ticketUsecases.NewCreateTaskUseCase(ticketRepo, taskRepo, txManager, log)
	updateTaskUC := ticketUsecases.NewUpdateTaskUseCase(ticketRepo, taskRepo, txManager, clock, log)
	deleteTaskUC := ticketUsecases.NewDeleteTaskUseCase(ticketRepo, taskRepo, txManager, log)
	toggleTaskUC := ticketUsecases.NewToggleTaskUseCase(ticketRepo, taskRepo, txManager, clock, log)

	// calendar
	createEventUC := calendarUsecases.NewCreateEventUseCase(eventRepo, participantRepo, txManager, mailer, log)
	updateEventUC := calendarUsecases.NewUpdateEventUseCase(eventRepo, participantRepo, txManager, mailer, log)
	deleteEventUC := calendarUsecases.NewDeleteEventUseCase(eventRepo, participantRepo, txManager, log)
	listEventsUC := calendarUsecases.NewListEventsUseCase(eventRepo, participantRepo, log)
	respondInvitationUC := calendarUsecases.NewRespondInvitationUseCase(eventRepo, participantRepo, clock, log)
	overviewUC := calendarUsecases.NewGetOverviewUseCase(eventRepo, participantRepo, clock, log)

	// analytics
	crmAnalyticsUC := analyticsUsecases.NewGetCRMAnalyticsUseCase(crmStatsRepo, clock, log)
	ticketAnalyticsUC := analyticsUsecases.NewGetTicketAnalyticsUseCase(ticketStatsRepo, clock, log)

	// attachments
	uploadAttachmentUC := mediaUsecases.NewUploadAttachmentUseCase(attachmentRepo, storage, ownerChecker, cfg.Media.MaxFileSize, log)
	deleteAttachmentUC := mediaUsecases.NewDeleteAttachmentUseCase(attachmentRepo, storage, log)
	listAttachmentsUC := mediaUsecases.NewListAttachmentsUseCase(attachmentRepo, log)
	openAttachmentUC := mediaUsecases.NewOpenAttachmentUseCase(attachmentRepo, storage, log)
	detachOwnerUC := mediaUsecases.NewDetachOwnerUseCase(attachmentRepo, storage, log)

	rateLimiter := middleware.NewLoginRateLimiter(
		ratelimit.NewRedisRateLimiter(redisClient),
		log,
		ratelimit.Limit{Requests: 10, Window: time.Minute},
		ratelimit.Limit{Requests: 50, Window: time.Hour},
	)

	seeder := permissionInfra.NewSeeder(permissionRepo, roleRepo, userRepo, permissionService, log)

	return &Container{
		AuthHandler: handlers.NewAuthHandler(loginUC, getUserUC, log),
		UserHandler: handlers.NewUserHandler(
			createUserUC, updateUserUC, deleteUserUC, getUserUC,
			listUsersUC, toggleUserStatusUC, assignRolesUC, log,
		),
		RoleHandler: handlers.NewRoleHandler(
			createRoleUC, updateRoleUC, deleteRoleUC, getRoleUC,
			listRolesUC, listPermissionsUC, log,
		),
		CustomerHandler: handlers.NewCustomerHandler(
			createCustomerUC, updateCustomerUC, deleteCustomerUC, getCustomerUC,
			listCustomersUC, createContactUC, updateContactUC, deleteContactUC, log,
		),
		BudgetHandler: handlers.NewBudgetHandler(
			createBudgetUC, updateBudgetUC, deleteBudgetUC, getBudgetUC, listBudgetsUC,
			updateBudgetStatusUC, addPaymentUC, deletePaymentUC, detachOwnerUC, markdownService, log,
		),
		TicketHandler: handlers.NewTicketHandler(
			createTicketUC, updateTicketUC, deleteTicketUC, getTicketUC, listTicketsUC,
			updateTicketStatusUC, createTaskUC, updateTaskUC, deleteTaskUC, toggleTaskUC,
			detachOwnerUC, markdownService, log,
		),
		CalendarHandler: handlers.NewCalendarHandler(
			createEventUC, updateEventUC, deleteEventUC, listEventsUC,
			respondInvitationUC, overviewUC, log,
		),
		AnalyticsHandler: handlers.NewAnalyticsHandler(crmAnalyticsUC, ticketAnalyticsUC, log),
		AttachmentHandler: handlers.NewAttachmentHandler(
			uploadAttachmentUC, deleteAttachmentUC, listAttachmentsUC, openAttachmentUC, log,
		),

		AuthMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		PermissionMiddleware: middleware.NewPermissionMiddleware(permissionService, log),
		LoginRateLimiter:     rateLimiter,

		PermissionSeeder: seeder,
	}, nil
}
