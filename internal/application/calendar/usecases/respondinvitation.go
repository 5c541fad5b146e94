package usecases

import (
	"context"

	"norte/internal/domain/calendar"
	"norte/internal/shared/biztime"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type RespondInvitationCommand struct {
	EventID uint
	ActorID uint
	Status  string
	Reason  string
}

// RespondInvitationUseCase records the acting user's answer on their own
// invitation row. Answers can be changed any number of times; declining
// always needs a reason.
type RespondInvitationUseCase struct {
	eventRepo       calendar.EventRepository
	participantRepo calendar.ParticipantRepository
	clock           biztime.Clock
	logger          logger.Interface
}

func NewRespondInvitationUseCase(
	eventRepo calendar.EventRepository,
	participantRepo calendar.ParticipantRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *RespondInvitationUseCase {
	return &RespondInvitationUseCase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		clock:           clock,
		logger:          logger,
	}
}

func (uc *RespondInvitationUseCase) Execute(ctx context.Context, cmd RespondInvitationCommand) (*ParticipantDTO, error) {
	uc.logger.Infow("executing respond invitation use case", "event_id", cmd.EventID, "actor_id", cmd.ActorID, "status", cmd.Status)

	if cmd.EventID == 0 {
		return nil, errors.NewValidationError("event ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	event, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to get event", "event_id", cmd.EventID, "error", err)
		return nil, err
	}
	if event == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	participants, err := uc.participantRepo.GetByEventID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to load event participants", "event_id", cmd.EventID, "error", err)
		return nil, err
	}
	event.SetParticipants(participants)

	participant := event.FindParticipant(cmd.ActorID)
	if participant == nil {
		return nil, errors.NewForbiddenError("user is not invited to this event")
	}

	if err := participant.Respond(calendar.InvitationStatus(cmd.Status), cmd.Reason, uc.clock.Now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.participantRepo.Update(ctx, participant); err != nil {
		uc.logger.Errorw("failed to update invitation", "event_id", cmd.EventID, "user_id", cmd.ActorID, "error", err)
		return nil, err
	}

	uc.logger.Infow("invitation answered", "event_id", cmd.EventID, "user_id", cmd.ActorID, "status", participant.Status())

	dto := participantToDTO(participant)
	return &dto, nil
}
