// Package constants defines shared constant values used across the application.
package constants

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Table names.
const (
	TableUsers            = "users"
	TableRoles            = "roles"
	TablePermissions      = "permissions"
	TableRolePermissions  = "role_permissions"
	TableUserRoles        = "user_roles"
	TableCustomers        = "customers"
	TableCustomerContacts = "customer_contacts"
	TableBudgets          = "budgets"
	TableBudgetConcepts   = "budget_concepts"
	TableBudgetPayments   = "budget_payments"
	TableTickets          = "tickets"
	TableTicketTasks      = "ticket_tasks"
	TableCalendarEvents   = "calendar_events"
	TableCalendarParts    = "calendar_event_participants"
	TableAttachments      = "attachments"
)

// Runtime environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// BootstrapUserID is the developer/bootstrap account created by the first
// migration. It always passes permission checks on the permissions resource.
const BootstrapUserID uint = 1

// Gin context keys.
const (
	ContextUserID = "user_id"
)
