// Package calendar holds the shared calendar aggregate: events owned by
// their creator with invited participants who accept or decline.
package calendar

import (
	"fmt"
	"time"
)

type Event struct {
	id           uint
	creatorID    uint
	eventType    string
	title        string
	description  string
	location     string
	startTime    time.Time
	endTime      time.Time
	createdAt    time.Time
	updatedAt    time.Time
	participants []*Participant
}

func NewEvent(creatorID uint, eventType, title, description, location string, startTime, endTime time.Time) (*Event, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("event creator ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("event title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("event title exceeds maximum length of 255 characters")
	}
	if eventType == "" {
		eventType = "Reunión"
	}
	if startTime.IsZero() || endTime.IsZero() {
		return nil, fmt.Errorf("event start and end times are required")
	}
	if !endTime.After(startTime) {
		return nil, fmt.Errorf("event end time must be after start time")
	}

	now := time.Now()
	return &Event{
		creatorID:    creatorID,
		eventType:    eventType,
		title:        title,
		description:  description,
		location:     location,
		startTime:    startTime,
		endTime:      endTime,
		createdAt:    now,
		updatedAt:    now,
		participants: []*Participant{},
	}, nil
}

func ReconstructEvent(
	id, creatorID uint,
	eventType, title, description, location string,
	startTime, endTime time.Time,
	createdAt, updatedAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("event creator ID is required")
	}

	return &Event{
		id:           id,
		creatorID:    creatorID,
		eventType:    eventType,
		title:        title,
		description:  description,
		location:     location,
		startTime:    startTime,
		endTime:      endTime,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		participants: []*Participant{},
	}, nil
}

func (e *Event) ID() uint             { return e.id }
func (e *Event) CreatorID() uint      { return e.creatorID }
func (e *Event) EventType() string    { return e.eventType }
func (e *Event) Title() string        { return e.title }
func (e *Event) Description() string  { return e.description }
func (e *Event) Location() string     { return e.location }
func (e *Event) StartTime() time.Time { return e.startTime }
func (e *Event) EndTime() time.Time   { return e.endTime }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }

func (e *Event) Participants() []*Participant {
	participantsCopy := make([]*Participant, len(e.participants))
	copy(participantsCopy, e.participants)
	return participantsCopy
}

func (e *Event) SetParticipants(participants []*Participant) {
	if participants == nil {
		participants = []*Participant{}
	}
	e.participants = participants
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

// IsCreator reports whether the given user owns this event. Only the
// creator may update or delete it.
func (e *Event) IsCreator(userID uint) bool {
	return e.creatorID == userID
}

// FindParticipant returns the invitation row for the given user, or nil.
func (e *Event) FindParticipant(userID uint) *Participant {
	for _, p := range e.participants {
		if p.UserID() == userID {
			return p
		}
	}
	return nil
}

// UpdateDetails changes the event fields. The same window rule as creation
// applies.
func (e *Event) UpdateDetails(eventType, title, description, location string, startTime, endTime time.Time) error {
	if len(title) == 0 {
		return fmt.Errorf("event title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("event title exceeds maximum length of 255 characters")
	}
	if startTime.IsZero() || endTime.IsZero() {
		return fmt.Errorf("event start and end times are required")
	}
	if !endTime.After(startTime) {
		return fmt.Errorf("event end time must be after start time")
	}

	if eventType != "" {
		e.eventType = eventType
	}
	e.title = title
	e.description = description
	e.location = location
	e.startTime = startTime
	e.endTime = endTime
	e.updatedAt = time.Now()
	return nil
}

// SyncParticipants reconciles the invitation list with the desired set of
// user IDs: kept users retain their current response, new users are invited
// pending, absent users are removed. The creator is filtered out so they
// never appear as their own invitee. Returns the added participants so
// callers can send fresh invitations.
func (e *Event) SyncParticipants(userIDs []uint) ([]*Participant, error) {
	desired := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		if id == 0 {
			return nil, fmt.Errorf("participant user ID is required")
		}
		if id == e.creatorID {
			continue
		}
		desired[id] = true
	}

	kept := make([]*Participant, 0, len(desired))
	existing := make(map[uint]bool, len(e.participants))
	for _, p := range e.participants {
		if desired[p.UserID()] {
			kept = append(kept, p)
			existing[p.UserID()] = true
		}
	}

	added := make([]*Participant, 0)
	for _, id := range userIDs {
		if id == e.creatorID || existing[id] || !desired[id] {
			continue
		}
		participant, err := NewParticipant(e.id, id)
		if err != nil {
			return nil, err
		}
		kept = append(kept, participant)
		added = append(added, participant)
		existing[id] = true
	}

	e.participants = kept
	return added, nil
}
