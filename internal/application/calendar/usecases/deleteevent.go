package usecases

import (
	"context"

	"norte/internal/domain/calendar"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type DeleteEventCommand struct {
	EventID uint
	ActorID uint
}

// DeleteEventUseCase removes an event and its invitations, creator-only.
type DeleteEventUseCase struct {
	eventRepo       calendar.EventRepository
	participantRepo calendar.ParticipantRepository
	txMgr           TransactionManager
	logger          logger.Interface
}

func NewDeleteEventUseCase(
	eventRepo calendar.EventRepository,
	participantRepo calendar.ParticipantRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		txMgr:           txMgr,
		logger:          logger,
	}
}

func (uc *DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) error {
	uc.logger.Infow("executing delete event use case", "event_id", cmd.EventID, "actor_id", cmd.ActorID)

	if cmd.EventID == 0 {
		return errors.NewValidationError("event ID is required")
	}

	event, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to get event", "event_id", cmd.EventID, "error", err)
		return err
	}
	if event == nil {
		return errors.NewNotFoundError("event not found")
	}

	if !event.IsCreator(cmd.ActorID) {
		return errors.NewForbiddenError("only the event creator can delete it")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.participantRepo.DeleteByEventID(txCtx, cmd.EventID); err != nil {
			return err
		}
		return uc.eventRepo.Delete(txCtx, cmd.EventID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete event", "event_id", cmd.EventID, "error", err)
		return err
	}

	uc.logger.Infow("event deleted", "event_id", cmd.EventID)
	return nil
}
