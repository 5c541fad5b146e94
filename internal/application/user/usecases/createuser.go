package usecases

import (
	"context"

	"norte/internal/domain/user"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	RoleIDs  []uint
}

type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	roleSync RoleSyncer
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	roleSync RoleSyncer,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		roleSync: roleSync,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserDTO, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email)
	if err != nil {
		uc.logger.Errorw("invalid create user command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	if len(cmd.RoleIDs) > 0 {
		if err := uc.userRepo.ReplaceRoles(ctx, newUser.ID(), cmd.RoleIDs); err != nil {
			uc.logger.Errorw("failed to assign roles", "user_id", newUser.ID(), "error", err)
			return nil, err
		}
		newUser.SetRoleIDs(cmd.RoleIDs)

		if err := uc.roleSync.SyncUserRoles(ctx, newUser.ID(), cmd.RoleIDs); err != nil {
			uc.logger.Errorw("failed to sync user roles", "user_id", newUser.ID(), "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("user created successfully", "user_id", newUser.ID())
	return userToDTO(newUser), nil
}
