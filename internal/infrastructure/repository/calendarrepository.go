package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"norte/internal/domain/calendar"
	"norte/internal/infrastructure/persistence/mappers"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Save(ctx context.Context, e *calendar.Event) error {
	model := mappers.EventToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EventRepository) Update(ctx context.Context, e *calendar.Event) error {
	model := mappers.EventToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EventModel{}).
		Where("id = ?", model.ID).
		Select("event_type", "title", "description", "location", "start_time", "end_time", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("event_id = ?", id).Delete(&models.ParticipantModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete event participants: %w", err)
	}

	result := tx.Delete(&models.EventModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("event not found")
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*calendar.Event, error) {
	var model models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	e, err := mappers.EventToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadParticipants(ctx, e, model.ID); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter calendar.EventFilter) ([]*calendar.Event, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.EventModel{})

	if filter.From != nil {
		query = query.Where("end_time >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		query = query.Where("start_time <= ?", filter.To.UnixMilli())
	}
	if filter.UserID != nil {
		query = query.Where(
			"creator_id = ? OR id IN (?)",
			*filter.UserID,
			tx.Model(&models.ParticipantModel{}).
				Select("event_id").
				Where("user_id = ?", *filter.UserID),
		)
	}

	var eventModels []models.EventModel
	if err := query.Order("start_time ASC").Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*calendar.Event, len(eventModels))
	for i, model := range eventModels {
		e, err := mappers.EventToDomain(&model)
		if err != nil {
			return nil, err
		}
		if err := r.loadParticipants(ctx, e, model.ID); err != nil {
			return nil, err
		}
		events[i] = e
	}

	return events, nil
}

func (r *EventRepository) loadParticipants(ctx context.Context, e *calendar.Event, eventID uint) error {
	var participantModels []models.ParticipantModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&participantModels).Error; err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}

	participants := make([]*calendar.Participant, len(participantModels))
	for i, pm := range participantModels {
		p, err := mappers.ParticipantToDomain(&pm)
		if err != nil {
			return err
		}
		participants[i] = p
	}
	e.SetParticipants(participants)

	return nil
}

type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Save(ctx context.Context, p *calendar.Participant) error {
	model := mappers.ParticipantToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ParticipantRepository) Update(ctx context.Context, p *calendar.Participant) error {
	model := mappers.ParticipantToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ParticipantModel{}).
		Where("id = ?", model.ID).
		Select("status", "rejection_reason", "responded_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update participant: %w", result.Error)
	}

	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ParticipantModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete participant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("participant not found")
	}
	return nil
}

func (r *ParticipantRepository) GetByEventID(ctx context.Context, eventID uint) ([]*calendar.Participant, error) {
	var participantModels []models.ParticipantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&participantModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find participants: %w", err)
	}

	participants := make([]*calendar.Participant, len(participantModels))
	for i, model := range participantModels {
		p, err := mappers.ParticipantToDomain(&model)
		if err != nil {
			return nil, err
		}
		participants[i] = p
	}

	return participants, nil
}

func (r *ParticipantRepository) DeleteByEventID(ctx context.Context, eventID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("event_id = ?", eventID).Delete(&models.ParticipantModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) CountPendingForUser(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.ParticipantModel{}).
		Where("user_id = ? AND status = ?", userID, calendar.InvitationPending.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending invitations: %w", err)
	}
	return count, nil
}
