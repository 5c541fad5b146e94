package usecases

import (
	"context"
	"time"

	"norte/internal/domain/calendar"
	"norte/internal/shared/logger"
)

type mockEventRepository struct {
	SaveFunc    func(ctx context.Context, e *calendar.Event) error
	UpdateFunc  func(ctx context.Context, e *calendar.Event) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*calendar.Event, error)
	ListFunc    func(ctx context.Context, filter calendar.EventFilter) ([]*calendar.Event, error)
}

func (m *mockEventRepository) Save(ctx context.Context, e *calendar.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) Update(ctx context.Context, e *calendar.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id uint) (*calendar.Event, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEventRepository) List(ctx context.Context, filter calendar.EventFilter) ([]*calendar.Event, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockParticipantRepository struct {
	SaveFunc                func(ctx context.Context, p *calendar.Participant) error
	UpdateFunc              func(ctx context.Context, p *calendar.Participant) error
	DeleteFunc              func(ctx context.Context, id uint) error
	GetByEventIDFunc        func(ctx context.Context, eventID uint) ([]*calendar.Participant, error)
	DeleteByEventIDFunc     func(ctx context.Context, eventID uint) error
	CountPendingForUserFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockParticipantRepository) Save(ctx context.Context, p *calendar.Participant) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockParticipantRepository) Update(ctx context.Context, p *calendar.Participant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockParticipantRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockParticipantRepository) GetByEventID(ctx context.Context, eventID uint) ([]*calendar.Participant, error) {
	if m.GetByEventIDFunc != nil {
		return m.GetByEventIDFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockParticipantRepository) DeleteByEventID(ctx context.Context, eventID uint) error {
	if m.DeleteByEventIDFunc != nil {
		return m.DeleteByEventIDFunc(ctx, eventID)
	}
	return nil
}

func (m *mockParticipantRepository) CountPendingForUser(ctx context.Context, userID uint) (int64, error) {
	if m.CountPendingForUserFunc != nil {
		return m.CountPendingForUserFunc(ctx, userID)
	}
	return 0, nil
}

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockInvitationMailer struct {
	SendInvitationFunc func(ctx context.Context, userID uint, event *calendar.Event) error
}

func (m *mockInvitationMailer) SendInvitation(ctx context.Context, userID uint, event *calendar.Event) error {
	if m.SendInvitationFunc != nil {
		return m.SendInvitationFunc(ctx, userID, event)
	}
	return nil
}

type mockClock struct {
	NowFunc func() time.Time
}

func (m *mockClock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now()
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
