package calendar

import (
	"context"
	"time"
)

// EventFilter bounds the calendar listing to a date window and optionally a
// single user's events (created or invited).
type EventFilter struct {
	From   *time.Time
	To     *time.Time
	UserID *uint
}

type EventRepository interface {
	Save(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
}

type ParticipantRepository interface {
	Save(ctx context.Context, participant *Participant) error
	Update(ctx context.Context, participant *Participant) error
	Delete(ctx context.Context, id uint) error
	GetByEventID(ctx context.Context, eventID uint) ([]*Participant, error)
	DeleteByEventID(ctx context.Context, eventID uint) error
	// CountPendingForUser backs the navigation badge with the number of
	// unanswered invitations.
	CountPendingForUser(ctx context.Context, userID uint) (int64, error)
}
