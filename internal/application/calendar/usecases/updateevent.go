package usecases

import (
	"context"
	"time"

	"norte/internal/domain/calendar"
	"norte/internal/shared/errors"
	"norte/internal/shared/goroutine"
	"norte/internal/shared/logger"
)

type UpdateEventCommand struct {
	EventID        uint
	ActorID        uint
	EventType      string
	Title          string
	Description    string
	Location       string
	StartTime      time.Time
	EndTime        time.Time
	ParticipantIDs []uint
}

// UpdateEventUseCase rewrites an event, creator-only. The participant list
// is reconciled rather than replaced: users kept in the list keep their
// response, new ones start Pendiente, absent ones lose their invitation.
type UpdateEventUseCase struct {
	eventRepo       calendar.EventRepository
	participantRepo calendar.ParticipantRepository
	txMgr           TransactionManager
	mailer          InvitationMailer
	logger          logger.Interface
}

func NewUpdateEventUseCase(
	eventRepo calendar.EventRepository,
	participantRepo calendar.ParticipantRepository,
	txMgr TransactionManager,
	mailer InvitationMailer,
	logger logger.Interface,
) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		txMgr:           txMgr,
		mailer:          mailer,
		logger:          logger,
	}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (*EventDTO, error) {
	uc.logger.Infow("executing update event use case", "event_id", cmd.EventID, "actor_id", cmd.ActorID)

	if cmd.EventID == 0 {
		return nil, errors.NewValidationError("event ID is required")
	}

	event, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to get event", "event_id", cmd.EventID, "error", err)
		return nil, err
	}
	if event == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	if !event.IsCreator(cmd.ActorID) {
		return nil, errors.NewForbiddenError("only the event creator can update it")
	}

	participants, err := uc.participantRepo.GetByEventID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to load event participants", "event_id", cmd.EventID, "error", err)
		return nil, err
	}
	event.SetParticipants(participants)
	removable := make(map[uint]*calendar.Participant, len(participants))
	for _, p := range participants {
		removable[p.UserID()] = p
	}

	if err := event.UpdateDetails(cmd.EventType, cmd.Title, cmd.Description, cmd.Location, cmd.StartTime, cmd.EndTime); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	added, err := event.SyncParticipants(cmd.ParticipantIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	for _, kept := range event.Participants() {
		delete(removable, kept.UserID())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.eventRepo.Update(txCtx, event); err != nil {
			return err
		}
		for _, removed := range removable {
			if err := uc.participantRepo.Delete(txCtx, removed.ID()); err != nil {
				return err
			}
		}
		for _, participant := range added {
			participant.SetEventID(event.ID())
			if err := uc.participantRepo.Save(txCtx, participant); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update event", "event_id", cmd.EventID, "error", err)
		return nil, err
	}

	for _, participant := range added {
		userID := participant.UserID()
		goroutine.SafeGo(uc.logger, "calendar.invitation_email", func() {
			if err := uc.mailer.SendInvitation(context.Background(), userID, event); err != nil {
				uc.logger.Warnw("failed to send invitation email", "event_id", event.ID(), "user_id", userID, "error", err)
			}
		})
	}

	uc.logger.Infow("event updated", "event_id", event.ID(), "added", len(added), "removed", len(removable))
	return eventToDTO(event), nil
}
