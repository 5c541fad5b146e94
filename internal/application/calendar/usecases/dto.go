package usecases

import (
	"time"

	"norte/internal/domain/calendar"
)

type ParticipantDTO struct {
	ID              uint       `json:"id"`
	EventID         uint       `json:"event_id"`
	UserID          uint       `json:"user_id"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
}

type EventDTO struct {
	ID           uint             `json:"id"`
	CreatorID    uint             `json:"creator_id"`
	EventType    string           `json:"event_type"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Location     string           `json:"location,omitempty"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      time.Time        `json:"end_time"`
	Participants []ParticipantDTO `json:"participants"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func participantToDTO(p *calendar.Participant) ParticipantDTO {
	return ParticipantDTO{
		ID:              p.ID(),
		EventID:         p.EventID(),
		UserID:          p.UserID(),
		Status:          p.Status().String(),
		RejectionReason: p.RejectionReason(),
		RespondedAt:     p.RespondedAt(),
	}
}

func eventToDTO(e *calendar.Event) *EventDTO {
	participants := e.Participants()
	participantDTOs := make([]ParticipantDTO, 0, len(participants))
	for _, p := range participants {
		participantDTOs = append(participantDTOs, participantToDTO(p))
	}

	return &EventDTO{
		ID:           e.ID(),
		CreatorID:    e.CreatorID(),
		EventType:    e.EventType(),
		Title:        e.Title(),
		Description:  e.Description(),
		Location:     e.Location(),
		StartTime:    e.StartTime(),
		EndTime:      e.EndTime(),
		Participants: participantDTOs,
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}
