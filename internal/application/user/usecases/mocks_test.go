package usecases

import (
	"context"
	"time"

	"norte/internal/domain/user"
	"norte/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc         func(ctx context.Context, u *user.User) error
	UpdateFunc       func(ctx context.Context, u *user.User) error
	DeleteFunc       func(ctx context.Context, id uint) error
	GetByIDFunc      func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ListFunc         func(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error)
	ReplaceRolesFunc func(ctx context.Context, userID uint, roleIDs []uint) error
	GetActiveIDsFunc func(ctx context.Context) ([]uint, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	if m.ReplaceRolesFunc != nil {
		return m.ReplaceRolesFunc(ctx, userID, roleIDs)
	}
	return nil
}

func (m *mockUserRepository) GetActiveIDs(ctx context.Context) ([]uint, error) {
	if m.GetActiveIDsFunc != nil {
		return m.GetActiveIDsFunc(ctx)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	return nil
}

type mockTokenGenerator struct {
	GenerateFunc func(userID uint, email string) (string, error)
}

func (m *mockTokenGenerator) Generate(userID uint, email string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email)
	}
	return "token", nil
}

type mockRoleSyncer struct {
	SyncUserRolesFunc func(ctx context.Context, userID uint, roleIDs []uint) error
}

func (m *mockRoleSyncer) SyncUserRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	if m.SyncUserRolesFunc != nil {
		return m.SyncUserRolesFunc(ctx, userID, roleIDs)
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
