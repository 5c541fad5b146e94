package usecases

import (
	"context"

	"norte/internal/domain/calendar"
	"norte/internal/shared/biztime"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type GetOverviewQuery struct {
	UserID uint
}

// OverviewResult backs the topbar badge: unanswered invitations plus
// today's events that involve the user.
type OverviewResult struct {
	PendingInvitations int64 `json:"pending_invitations"`
	EventsToday        int   `json:"events_today"`
}

type GetOverviewUseCase struct {
	eventRepo       calendar.EventRepository
	participantRepo calendar.ParticipantRepository
	clock           biztime.Clock
	logger          logger.Interface
}

func NewGetOverviewUseCase(
	eventRepo calendar.EventRepository,
	participantRepo calendar.ParticipantRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		clock:           clock,
		logger:          logger,
	}
}

func (uc *GetOverviewUseCase) Execute(ctx context.Context, query GetOverviewQuery) (*OverviewResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	pending, err := uc.participantRepo.CountPendingForUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count pending invitations", "user_id", query.UserID, "error", err)
		return nil, err
	}

	now := uc.clock.Now()
	from := biztime.StartOfDayUTC(now)
	to := biztime.EndOfDayUTC(now)
	events, err := uc.eventRepo.List(ctx, calendar.EventFilter{
		From:   &from,
		To:     &to,
		UserID: &query.UserID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list today's events", "user_id", query.UserID, "error", err)
		return nil, err
	}

	// Created-by-me counts as involved; otherwise only accepted invitations
	// do. Pending and rejected invites stay out of the badge.
	involved := 0
	for _, event := range events {
		if event.IsCreator(query.UserID) {
			involved++
			continue
		}
		participants, err := uc.participantRepo.GetByEventID(ctx, event.ID())
		if err != nil {
			return nil, err
		}
		event.SetParticipants(participants)
		if p := event.FindParticipant(query.UserID); p != nil && p.Status() == calendar.InvitationAccepted {
			involved++
		}
	}

	return &OverviewResult{
		PendingInvitations: pending,
		EventsToday:        involved,
	}, nil
}
