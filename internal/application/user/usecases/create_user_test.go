package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/user"
	apperrors "norte/internal/shared/errors"
)

func TestCreateUserUseCase_Execute(t *testing.T) {
	var savedHash string
	var rolesReplaced []uint
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedHash = u.PasswordHash()
			return u.SetID(3)
		},
		ReplaceRolesFunc: func(ctx context.Context, userID uint, roleIDs []uint) error {
			assert.Equal(t, uint(3), userID)
			rolesReplaced = roleIDs
			return nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, &mockRoleSyncer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Ana Torres",
		Email:    "Ana@Norte.MX",
		Password: "secret123",
		RoleIDs:  []uint{2, 5},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.ID)
	assert.Equal(t, "ana@norte.mx", result.Email)
	assert.Equal(t, "hashed:secret123", savedHash)
	assert.Equal(t, []uint{2, 5}, rolesReplaced)
	assert.Equal(t, []uint{2, 5}, result.RoleIDs)
}

func TestCreateUserUseCase_Execute_ShortPassword(t *testing.T) {
	var saved bool
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = true
			return nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, &mockRoleSyncer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Ana Torres",
		Email:    "ana@norte.mx",
		Password: "short",
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.False(t, saved)
}

func TestCreateUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return errors.New("Error 1062: Duplicate entry 'ana@norte.mx' for key 'users.email'")
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, &mockRoleSyncer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Ana Torres",
		Email:    "ana@norte.mx",
		Password: "secret123",
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestToggleUserStatusUseCase_Execute_SelfDeactivateRejected(t *testing.T) {
	repo := &mockUserRepository{}
	uc := NewToggleUserStatusUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ToggleUserStatusCommand{UserID: 4, ActorID: 4})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestDeleteUserUseCase_Execute_SelfDeleteRejected(t *testing.T) {
	repo := &mockUserRepository{}
	uc := NewDeleteUserUseCase(repo, &mockRoleSyncer{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 4, ActorID: 4})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}
