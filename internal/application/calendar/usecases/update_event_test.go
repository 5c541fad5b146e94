package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/calendar"
	apperrors "norte/internal/shared/errors"
)

func reconstructEvent(t *testing.T, id, creatorID uint) *calendar.Event {
	t.Helper()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now := time.Now()
	e, err := calendar.ReconstructEvent(id, creatorID, "Reunión", "Junta semanal", "", "Sala 2", start, start.Add(time.Hour), now, now)
	require.NoError(t, err)
	return e
}

func reconstructParticipant(t *testing.T, id, eventID, userID uint, status calendar.InvitationStatus) *calendar.Participant {
	t.Helper()
	now := time.Now()
	var reason string
	if status == calendar.InvitationRejected {
		reason = "no disponible"
	}
	p, err := calendar.ReconstructParticipant(id, eventID, userID, status, reason, nil, now, now)
	require.NoError(t, err)
	return p
}

func TestUpdateEventUseCase_Execute_SyncSemantics(t *testing.T) {
	event := reconstructEvent(t, 100, 1)
	kept := reconstructParticipant(t, 11, 100, 2, calendar.InvitationAccepted)
	removed := reconstructParticipant(t, 12, 100, 3, calendar.InvitationPending)

	eventRepo := &mockEventRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*calendar.Event, error) {
			return event, nil
		},
	}

	var savedNew []*calendar.Participant
	var deletedIDs []uint
	participantRepo := &mockParticipantRepository{
		GetByEventIDFunc: func(ctx context.Context, eventID uint) ([]*calendar.Participant, error) {
			return []*calendar.Participant{kept, removed}, nil
		},
		SaveFunc: func(ctx context.Context, p *calendar.Participant) error {
			savedNew = append(savedNew, p)
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedIDs = append(deletedIDs, id)
			return nil
		},
	}

	var invited []uint
	invitedCh := make(chan uint, 4)
	mailer := &mockInvitationMailer{
		SendInvitationFunc: func(ctx context.Context, userID uint, e *calendar.Event) error {
			invitedCh <- userID
			return nil
		},
	}

	start := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	useCase := NewUpdateEventUseCase(eventRepo, participantRepo, &mockTxManager{}, mailer, &mockLogger{})
	dto, err := useCase.Execute(context.Background(), UpdateEventCommand{
		EventID:        100,
		ActorID:        1,
		Title:          "Junta semanal",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		ParticipantIDs: []uint{2, 4},
	})

	require.NoError(t, err)
	require.NotNil(t, dto)

	require.Len(t, savedNew, 1)
	assert.Equal(t, uint(4), savedNew[0].UserID())
	assert.Equal(t, calendar.InvitationPending, savedNew[0].Status())

	assert.Equal(t, []uint{12}, deletedIDs, "absent invitee row must be removed")

	var keptDTO *ParticipantDTO
	for i := range dto.Participants {
		if dto.Participants[i].UserID == 2 {
			keptDTO = &dto.Participants[i]
		}
	}
	require.NotNil(t, keptDTO)
	assert.Equal(t, calendar.InvitationAccepted.String(), keptDTO.Status, "kept invitee keeps their response")

	select {
	case id := <-invitedCh:
		invited = append(invited, id)
	case <-time.After(time.Second):
	}
	assert.Equal(t, []uint{4}, invited, "only newly added invitees get an email")
}

func TestUpdateEventUseCase_Execute_NonCreatorForbidden(t *testing.T) {
	event := reconstructEvent(t, 100, 1)
	eventRepo := &mockEventRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*calendar.Event, error) {
			return event, nil
		},
	}

	start := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	useCase := NewUpdateEventUseCase(eventRepo, &mockParticipantRepository{}, &mockTxManager{}, &mockInvitationMailer{}, &mockLogger{})
	dto, err := useCase.Execute(context.Background(), UpdateEventCommand{
		EventID:   100,
		ActorID:   2,
		Title:     "Junta",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	require.Error(t, err)
	assert.Nil(t, dto)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteEventUseCase_Execute_NonCreatorForbidden(t *testing.T) {
	event := reconstructEvent(t, 100, 1)
	eventRepo := &mockEventRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*calendar.Event, error) {
			return event, nil
		},
	}

	useCase := NewDeleteEventUseCase(eventRepo, &mockParticipantRepository{}, &mockTxManager{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteEventCommand{EventID: 100, ActorID: 2})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteEventUseCase_Execute_CascadesParticipants(t *testing.T) {
	event := reconstructEvent(t, 100, 1)
	eventRepo := &mockEventRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*calendar.Event, error) {
			return event, nil
		},
	}

	var cascaded bool
	participantRepo := &mockParticipantRepository{
		DeleteByEventIDFunc: func(ctx context.Context, eventID uint) error {
			cascaded = true
			return nil
		},
	}

	useCase := NewDeleteEventUseCase(eventRepo, participantRepo, &mockTxManager{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteEventCommand{EventID: 100, ActorID: 1})

	require.NoError(t, err)
	assert.True(t, cascaded)
}
