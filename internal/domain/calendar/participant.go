package calendar

import (
	"fmt"
	"time"
)

// InvitationStatus is a participant's standing reply for an event.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "Pendiente"
	InvitationAccepted InvitationStatus = "Aceptado"
	InvitationRejected InvitationStatus = "Rechazado"
)

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationRejected:
		return true
	}
	return false
}

func (s InvitationStatus) String() string { return string(s) }

// Participant is one invited user on an event. The event creator is never a
// participant row; their relationship to the event is ownership.
type Participant struct {
	id              uint
	eventID         uint
	userID          uint
	status          InvitationStatus
	rejectionReason string
	respondedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewParticipant invites a user to an event. Invitations always start
// pending.
func NewParticipant(eventID, userID uint) (*Participant, error) {
	if userID == 0 {
		return nil, fmt.Errorf("participant user ID is required")
	}

	now := time.Now()
	return &Participant{
		eventID:   eventID,
		userID:    userID,
		status:    InvitationPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructParticipant(
	id, eventID, userID uint,
	status InvitationStatus,
	rejectionReason string,
	respondedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Participant, error) {
	if id == 0 {
		return nil, fmt.Errorf("participant ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invitation status: %s", status)
	}

	return &Participant{
		id:              id,
		eventID:         eventID,
		userID:          userID,
		status:          status,
		rejectionReason: rejectionReason,
		respondedAt:     respondedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (p *Participant) ID() uint                 { return p.id }
func (p *Participant) EventID() uint            { return p.eventID }
func (p *Participant) UserID() uint             { return p.userID }
func (p *Participant) Status() InvitationStatus { return p.status }
func (p *Participant) RejectionReason() string  { return p.rejectionReason }
func (p *Participant) RespondedAt() *time.Time  { return p.respondedAt }
func (p *Participant) CreatedAt() time.Time     { return p.createdAt }
func (p *Participant) UpdatedAt() time.Time     { return p.updatedAt }

func (p *Participant) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("participant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("participant ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Participant) SetEventID(eventID uint) {
	p.eventID = eventID
}

// Respond records the user's reply. A rejection must carry a reason; an
// acceptance discards any previous one. Participants may change their
// answer as often as they like.
func (p *Participant) Respond(status InvitationStatus, reason string, now time.Time) error {
	switch status {
	case InvitationAccepted:
		p.rejectionReason = ""
	case InvitationRejected:
		if reason == "" {
			return fmt.Errorf("rejection reason is required when declining an invitation")
		}
		p.rejectionReason = reason
	default:
		return fmt.Errorf("invitation response must be %s or %s", InvitationAccepted, InvitationRejected)
	}

	p.status = status
	p.respondedAt = &now
	p.updatedAt = now
	return nil
}
