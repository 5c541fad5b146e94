package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"norte/internal/application/analytics/usecases"
	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

// TicketStatsRepository answers the aggregate queries behind the service
// dashboard. Period filters apply to the scheduled start date.
type TicketStatsRepository struct {
	db *gorm.DB
}

func NewTicketStatsRepository(db *gorm.DB) *TicketStatsRepository {
	return &TicketStatsRepository{db: db}
}

func (r *TicketStatsRepository) CountTicketsScheduledBetween(ctx context.Context, from, to time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("scheduled_start BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *TicketStatsRepository) CountTicketsScheduledBetweenWithStatus(ctx context.Context, from, to time.Time, status string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("scheduled_start BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return count, nil
}

func (r *TicketStatsRepository) CountOverdueTickets(ctx context.Context, from, to, now time.Time, notStatus string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("scheduled_end BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Where("scheduled_end < ?", datatypes.Date(now)).
		Where("status <> ?", notStatus).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count overdue tickets: %w", err)
	}
	return count, nil
}

func (r *TicketStatsRepository) TicketCountsByDay(ctx context.Context, from, to time.Time) ([]usecases.PeriodCount, error) {
	return r.ticketCounts(ctx, from, to, false)
}

func (r *TicketStatsRepository) TicketCountsByMonth(ctx context.Context, from, to time.Time) ([]usecases.PeriodCount, error) {
	return r.ticketCounts(ctx, from, to, true)
}

func (r *TicketStatsRepository) ticketCounts(ctx context.Context, from, to time.Time, byMonth bool) ([]usecases.PeriodCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		ScheduledStart datatypes.Date
		Total          int64
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Select("scheduled_start, COUNT(*) as total").
		Where("scheduled_start BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Group("scheduled_start").
		Order("scheduled_start ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket counts: %w", err)
	}

	if !byMonth {
		counts := make([]usecases.PeriodCount, len(rows))
		for i, row := range rows {
			counts[i] = usecases.PeriodCount{Period: time.Time(row.ScheduledStart), Total: row.Total}
		}
		return counts, nil
	}

	var counts []usecases.PeriodCount
	for _, row := range rows {
		day := time.Time(row.ScheduledStart)
		month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		if n := len(counts); n > 0 && counts[n-1].Period.Equal(month) {
			counts[n-1].Total += row.Total
			continue
		}
		counts = append(counts, usecases.PeriodCount{Period: month, Total: row.Total})
	}
	return counts, nil
}

func (r *TicketStatsRepository) WorkloadByAssignee(ctx context.Context, from, to time.Time, limit int) ([]usecases.AssigneeCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		UserID uint
		Name   string
		Total  int64
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Select("users.id as user_id, users.name as name, COUNT(*) as total").
		Joins("JOIN users ON users.id = tickets.assignee_id").
		Where("tickets.scheduled_start BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Group("users.id, users.name").
		Order("total DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load assignee workload: %w", err)
	}

	counts := make([]usecases.AssigneeCount, len(rows))
	for i, row := range rows {
		counts[i] = usecases.AssigneeCount{UserID: row.UserID, Name: row.Name, Total: row.Total}
	}
	return counts, nil
}

func (r *TicketStatsRepository) PriorityDistribution(ctx context.Context, from, to time.Time) ([]usecases.PriorityCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []usecases.PriorityCount
	if err := tx.
		Model(&models.TicketModel{}).
		Select("priority, COUNT(*) as total").
		Where("scheduled_start BETWEEN ? AND ?", datatypes.Date(from), datatypes.Date(to)).
		Group("priority").
		Order("total DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load priority distribution: %w", err)
	}
	return rows, nil
}

func (r *TicketStatsRepository) CountTicketsExcludingStatuses(ctx context.Context, statuses []string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("status NOT IN ?", statuses).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count open tickets: %w", err)
	}
	return count, nil
}

func (r *TicketStatsRepository) CountTasksExcludingStatus(ctx context.Context, status string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TaskModel{}).
		Where("status <> ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	return count, nil
}

func (r *TicketStatsRepository) AssigneesWithPendingTasks(ctx context.Context, limit int) ([]usecases.AssigneeCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		UserID uint
		Name   string
		Total  int64
	}
	if err := tx.
		Model(&models.TaskModel{}).
		Select("users.id as user_id, users.name as name, COUNT(*) as total").
		Joins("JOIN users ON users.id = ticket_tasks.assignee_id").
		Where("ticket_tasks.status <> ?", vo.TaskStatusCompleted.String()).
		Group("users.id, users.name").
		Order("total DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load pending task assignees: %w", err)
	}

	counts := make([]usecases.AssigneeCount, len(rows))
	for i, row := range rows {
		counts[i] = usecases.AssigneeCount{UserID: row.UserID, Name: row.Name, Total: row.Total}
	}
	return counts, nil
}
