package usecases

import (
	"context"

	"norte/internal/domain/calendar"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// InvitationMailer notifies a user they were invited to an event. Sends are
// fire-and-forget; a failed email never fails the mutation.
type InvitationMailer interface {
	SendInvitation(ctx context.Context, userID uint, event *calendar.Event) error
}

type CreateEventExecutor interface {
	Execute(ctx context.Context, cmd CreateEventCommand) (*EventDTO, error)
}

type UpdateEventExecutor interface {
	Execute(ctx context.Context, cmd UpdateEventCommand) (*EventDTO, error)
}

type DeleteEventExecutor interface {
	Execute(ctx context.Context, cmd DeleteEventCommand) error
}

type RespondInvitationExecutor interface {
	Execute(ctx context.Context, cmd RespondInvitationCommand) (*ParticipantDTO, error)
}

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) ([]EventDTO, error)
}

type GetOverviewExecutor interface {
	Execute(ctx context.Context, query GetOverviewQuery) (*OverviewResult, error)
}
