package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"norte/internal/domain/ticket"
	"norte/internal/infrastructure/persistence/mappers"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

var allowedTicketOrderByFields = map[string]bool{
	"id":              true,
	"status":          true,
	"priority":        true,
	"assignee_id":     true,
	"budget_id":       true,
	"scheduled_start": true,
	"scheduled_end":   true,
	"created_at":      true,
	"updated_at":      true,
}

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := mappers.TicketToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := mappers.TicketToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("assignee_id", "status", "priority", "scheduled_start", "scheduled_end",
			"instructions", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TaskModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket tasks: %w", err)
	}

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := mappers.TicketToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadTasks(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", filters.Priority.String())
	}
	if filters.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filters.AssigneeID)
	}
	if filters.BudgetID != nil {
		query = query.Where("budget_id = ?", *filters.BudgetID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = applyOrder(query, filters.SortBy, filters.SortOrder, allowedTicketOrderByFields, "created_at DESC")

	if filters.PageSize > 0 {
		offset := (filters.Page - 1) * filters.PageSize
		query = query.Limit(filters.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := mappers.TicketToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		if err := r.loadTasks(ctx, t, model.ID); err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) loadTasks(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	var taskModels []models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&taskModels).Error; err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	tasks := make([]*ticket.Task, len(taskModels))
	for i, tm := range taskModels {
		task, err := mappers.TaskToDomain(&tm)
		if err != nil {
			return err
		}
		tasks[i] = task
	}
	t.SetTasks(tasks)

	return nil
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Save(ctx context.Context, t *ticket.Task) error {
	model := mappers.TaskToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TaskRepository) Update(ctx context.Context, t *ticket.Task) error {
	model := mappers.TaskToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Select("assignee_id", "name", "description", "status", "start_date", "due_date",
			"completed_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TaskModel{}, taskID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint) (*ticket.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return mappers.TaskToDomain(&model)
}

func (r *TaskRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Task, error) {
	var taskModels []models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}

	tasks := make([]*ticket.Task, len(taskModels))
	for i, model := range taskModels {
		t, err := mappers.TaskToDomain(&model)
		if err != nil {
			return nil, err
		}
		tasks[i] = t
	}

	return tasks, nil
}

func (r *TaskRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TaskModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}
	return nil
}
