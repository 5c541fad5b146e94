package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/calendar"
	apperrors "norte/internal/shared/errors"
)

func TestRespondInvitationUseCase_Execute(t *testing.T) {
	newFixture := func(t *testing.T, status calendar.InvitationStatus) (*RespondInvitationUseCase, **calendar.Participant) {
		t.Helper()
		event := reconstructEvent(t, 100, 1)
		participant := reconstructParticipant(t, 11, 100, 2, status)

		eventRepo := &mockEventRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*calendar.Event, error) {
				return event, nil
			},
		}
		var updated *calendar.Participant
		participantRepo := &mockParticipantRepository{
			GetByEventIDFunc: func(ctx context.Context, eventID uint) ([]*calendar.Participant, error) {
				return []*calendar.Participant{participant}, nil
			},
			UpdateFunc: func(ctx context.Context, p *calendar.Participant) error {
				updated = p
				return nil
			},
		}

		return NewRespondInvitationUseCase(eventRepo, participantRepo, &mockClock{}, &mockLogger{}), &updated
	}

	t.Run("accept", func(t *testing.T) {
		useCase, updated := newFixture(t, calendar.InvitationPending)
		dto, err := useCase.Execute(context.Background(), RespondInvitationCommand{
			EventID: 100, ActorID: 2, Status: "Aceptado",
		})

		require.NoError(t, err)
		assert.Equal(t, "Aceptado", dto.Status)
		require.NotNil(t, *updated)
		assert.Equal(t, calendar.InvitationAccepted, (*updated).Status())
	})

	t.Run("reject without reason fails", func(t *testing.T) {
		useCase, updated := newFixture(t, calendar.InvitationPending)
		dto, err := useCase.Execute(context.Background(), RespondInvitationCommand{
			EventID: 100, ActorID: 2, Status: "Rechazado",
		})

		require.Error(t, err)
		assert.Nil(t, dto)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Nil(t, *updated, "nothing persisted on invalid response")
	})

	t.Run("reject with reason", func(t *testing.T) {
		useCase, _ := newFixture(t, calendar.InvitationPending)
		dto, err := useCase.Execute(context.Background(), RespondInvitationCommand{
			EventID: 100, ActorID: 2, Status: "Rechazado", Reason: "fuera de la ciudad",
		})

		require.NoError(t, err)
		assert.Equal(t, "Rechazado", dto.Status)
		assert.Equal(t, "fuera de la ciudad", dto.RejectionReason)
	})

	t.Run("answer can be changed after accepting", func(t *testing.T) {
		useCase, _ := newFixture(t, calendar.InvitationAccepted)
		dto, err := useCase.Execute(context.Background(), RespondInvitationCommand{
			EventID: 100, ActorID: 2, Status: "Rechazado", Reason: "conflicto de agenda",
		})

		require.NoError(t, err)
		assert.Equal(t, "Rechazado", dto.Status)
	})

	t.Run("uninvited user forbidden", func(t *testing.T) {
		useCase, _ := newFixture(t, calendar.InvitationPending)
		dto, err := useCase.Execute(context.Background(), RespondInvitationCommand{
			EventID: 100, ActorID: 5, Status: "Aceptado",
		})

		require.Error(t, err)
		assert.Nil(t, dto)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("creator has no row to answer", func(t *testing.T) {
		useCase, _ := newFixture(t, calendar.InvitationPending)
		_, err := useCase.Execute(context.Background(), RespondInvitationCommand{
			EventID: 100, ActorID: 1, Status: "Aceptado",
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}

func TestGetOverviewUseCase_Execute(t *testing.T) {
	event := reconstructEvent(t, 100, 1)
	other := reconstructEvent(t, 101, 3)

	eventRepo := &mockEventRepository{
		ListFunc: func(ctx context.Context, filter calendar.EventFilter) ([]*calendar.Event, error) {
			return []*calendar.Event{event, other}, nil
		},
	}
	participantRepo := &mockParticipantRepository{
		CountPendingForUserFunc: func(ctx context.Context, userID uint) (int64, error) {
			return 2, nil
		},
		GetByEventIDFunc: func(ctx context.Context, eventID uint) ([]*calendar.Participant, error) {
			// User 1 declined the other event, so it stays out of the count.
			return []*calendar.Participant{reconstructParticipant(t, 20, eventID, 1, calendar.InvitationRejected)}, nil
		},
	}

	useCase := NewGetOverviewUseCase(eventRepo, participantRepo, &mockClock{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetOverviewQuery{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.PendingInvitations)
	assert.Equal(t, 1, result.EventsToday)
}
