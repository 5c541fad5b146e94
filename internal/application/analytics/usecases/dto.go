package usecases

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsQuery bounds a dashboard to a date range. Zero values default to
// the current month.
type AnalyticsQuery struct {
	From time.Time
	To   time.Time
}

type ChartSeries struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

type CountSeries struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type ServiceTypeCountDTO struct {
	ServiceType string `json:"service_type"`
	Total       int64  `json:"total"`
}

type PriorityCountDTO struct {
	Priority string `json:"priority"`
	Total    int64  `json:"total"`
}

type TopCustomerDTO struct {
	CustomerID uint            `json:"customer_id"`
	Name       string          `json:"name"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}

type AssigneeCountDTO struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Total  int64  `json:"total"`
}

type CRMAnalyticsDTO struct {
	TotalCustomers     int64                 `json:"total_customers"`
	NewCustomers       int64                 `json:"new_customers"`
	TotalBudgets       int64                 `json:"total_budgets"`
	WonBudgets         int64                 `json:"won_budgets"`
	ConversionRate     float64               `json:"conversion_rate"`
	TotalRevenue       decimal.Decimal       `json:"total_revenue"`
	PendingBalance     decimal.Decimal       `json:"pending_balance"`
	ActiveProjects     int64                 `json:"active_projects"`
	Income             ChartSeries           `json:"income"`
	StatusDistribution []StatusCountDTO      `json:"status_distribution"`
	TopServices        []ServiceTypeCountDTO `json:"top_services"`
	TopCustomers       []TopCustomerDTO      `json:"top_customers"`
	From               time.Time             `json:"from"`
	To                 time.Time             `json:"to"`
}

type TicketAnalyticsDTO struct {
	TotalTickets         int64              `json:"total_tickets"`
	CompletedTickets     int64              `json:"completed_tickets"`
	CompletionRate       float64            `json:"completion_rate"`
	OverdueTickets       int64              `json:"overdue_tickets"`
	Timeline             CountSeries        `json:"timeline"`
	WorkloadByAssignee   []AssigneeCountDTO `json:"workload_by_assignee"`
	PriorityDistribution []PriorityCountDTO `json:"priority_distribution"`
	Backlog              int64              `json:"backlog"`
	PendingTasks         int64              `json:"pending_tasks"`
	BusyAssignees        []AssigneeCountDTO `json:"busy_assignees"`
	From                 time.Time          `json:"from"`
	To                   time.Time          `json:"to"`
}
