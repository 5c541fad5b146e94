package mappers

import (
	"fmt"

	"norte/internal/domain/calendar"
	"norte/internal/infrastructure/persistence/models"
)

func EventToModel(e *calendar.Event) *models.EventModel {
	return &models.EventModel{
		ID:          e.ID(),
		CreatorID:   e.CreatorID(),
		EventType:   e.EventType(),
		Title:       e.Title(),
		Description: e.Description(),
		Location:    e.Location(),
		StartTime:   e.StartTime().UnixMilli(),
		EndTime:     e.EndTime().UnixMilli(),
		CreatedAt:   e.CreatedAt().UnixMilli(),
		UpdatedAt:   e.UpdatedAt().UnixMilli(),
	}
}

// EventToDomain converts the event row only. Participants are loaded
// separately by the repository.
func EventToDomain(model *models.EventModel) (*calendar.Event, error) {
	return calendar.ReconstructEvent(
		model.ID,
		model.CreatorID,
		model.EventType,
		model.Title,
		model.Description,
		model.Location,
		millisToTime(model.StartTime),
		millisToTime(model.EndTime),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func ParticipantToModel(p *calendar.Participant) *models.ParticipantModel {
	return &models.ParticipantModel{
		ID:              p.ID(),
		EventID:         p.EventID(),
		UserID:          p.UserID(),
		Status:          p.Status().String(),
		RejectionReason: p.RejectionReason(),
		RespondedAt:     timeToMillisPtr(p.RespondedAt()),
		CreatedAt:       p.CreatedAt().UnixMilli(),
		UpdatedAt:       p.UpdatedAt().UnixMilli(),
	}
}

func ParticipantToDomain(model *models.ParticipantModel) (*calendar.Participant, error) {
	status := calendar.InvitationStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invitation status (id=%d): %s", model.ID, model.Status)
	}

	return calendar.ReconstructParticipant(
		model.ID,
		model.EventID,
		model.UserID,
		status,
		model.RejectionReason,
		millisToTimePtr(model.RespondedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
