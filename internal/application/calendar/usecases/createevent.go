package usecases

import (
	"context"
	"time"

	"norte/internal/domain/calendar"
	"norte/internal/shared/errors"
	"norte/internal/shared/goroutine"
	"norte/internal/shared/logger"
)

type CreateEventCommand struct {
	CreatorID      uint
	EventType      string
	Title          string
	Description    string
	Location       string
	StartTime      time.Time
	EndTime        time.Time
	ParticipantIDs []uint
}

// CreateEventUseCase creates an event and attaches the invited users, all
// starting Pendiente. Invitation emails go out after commit without
// blocking the response.
type CreateEventUseCase struct {
	eventRepo       calendar.EventRepository
	participantRepo calendar.ParticipantRepository
	txMgr           TransactionManager
	mailer          InvitationMailer
	logger          logger.Interface
}

func NewCreateEventUseCase(
	eventRepo calendar.EventRepository,
	participantRepo calendar.ParticipantRepository,
	txMgr TransactionManager,
	mailer InvitationMailer,
	logger logger.Interface,
) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		txMgr:           txMgr,
		mailer:          mailer,
		logger:          logger,
	}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (*EventDTO, error) {
	uc.logger.Infow("executing create event use case", "creator_id", cmd.CreatorID, "title", cmd.Title)

	event, err := calendar.NewEvent(cmd.CreatorID, cmd.EventType, cmd.Title, cmd.Description, cmd.Location, cmd.StartTime, cmd.EndTime)
	if err != nil {
		uc.logger.Errorw("invalid create event command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.eventRepo.Save(txCtx, event); err != nil {
			return err
		}

		added, err := event.SyncParticipants(cmd.ParticipantIDs)
		if err != nil {
			return errors.NewValidationError(err.Error())
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
		uc.logger.Errorw("failed to create event", "error", err)
		return nil, err
	}

	uc.notifyParticipants(event)

	uc.logger.Infow("event created", "event_id", event.ID(), "participants", len(event.Participants()))
	return eventToDTO(event), nil
}

func (uc *CreateEventUseCase) notifyParticipants(event *calendar.Event) {
	for _, participant := range event.Participants() {
		userID := participant.UserID()
		goroutine.SafeGo(uc.logger, "calendar.invitation_email", func() {
			if err := uc.mailer.SendInvitation(context.Background(), userID, event); err != nil {
				uc.logger.Warnw("failed to send invitation email", "event_id", event.ID(), "user_id", userID, "error", err)
			}
		})
	}
}
