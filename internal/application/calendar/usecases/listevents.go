package usecases

import (
	"context"
	"time"

	"norte/internal/domain/calendar"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type ListEventsQuery struct {
	From   *time.Time
	To     *time.Time
	UserID *uint
}

type ListEventsUseCase struct {
	eventRepo       calendar.EventRepository
	participantRepo calendar.ParticipantRepository
	logger          logger.Interface
}

func NewListEventsUseCase(
	eventRepo calendar.EventRepository,
	participantRepo calendar.ParticipantRepository,
	logger logger.Interface,
) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) ([]EventDTO, error) {
	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return nil, errors.NewValidationError("date range end must not be before start")
	}

	events, err := uc.eventRepo.List(ctx, calendar.EventFilter{
		From:   query.From,
		To:     query.To,
		UserID: query.UserID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list events", "error", err)
		return nil, err
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		participants, err := uc.participantRepo.GetByEventID(ctx, event.ID())
		if err != nil {
			uc.logger.Errorw("failed to load event participants", "event_id", event.ID(), "error", err)
			return nil, err
		}
		event.SetParticipants(participants)
		dtos = append(dtos, *eventToDTO(event))
	}

	return dtos, nil
}
