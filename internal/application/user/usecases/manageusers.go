package usecases

import (
	"context"

	"norte/internal/domain/user"
	"norte/internal/shared/constants"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID  uint
	ActorID uint
}

type DeleteUserUseCase struct {
	userRepo user.UserRepository
	roleSync RoleSyncer
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.UserRepository, roleSync RoleSyncer, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, roleSync: roleSync, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("users cannot delete their own account")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	if err := uc.roleSync.SyncUserRoles(ctx, cmd.UserID, nil); err != nil {
		uc.logger.Warnw("failed to clear user roles from policy engine", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.UserRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return userToDTO(existing), nil
}

type ListUsersQuery struct {
	Active    *bool
	Search    *string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListUsersResult struct {
	Users    []UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	users, total, err := uc.userRepo.List(ctx, user.UserFilter{
		Active:    query.Active,
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, *userToDTO(u))
	}

	return &ListUsersResult{
		Users:    dtos,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

type ToggleUserStatusCommand struct {
	UserID  uint
	ActorID uint
}

// ToggleUserStatusUseCase flips a user between active and inactive.
// Inactive users cannot log in.
type ToggleUserStatusUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewToggleUserStatusUseCase(userRepo user.UserRepository, logger logger.Interface) *ToggleUserStatusUseCase {
	return &ToggleUserStatusUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ToggleUserStatusUseCase) Execute(ctx context.Context, cmd ToggleUserStatusCommand) (*UserDTO, error) {
	uc.logger.Infow("executing toggle user status use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return nil, errors.NewValidationError("users cannot deactivate their own account")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if existing.IsActive() {
		existing.Deactivate()
	} else {
		existing.Activate()
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to toggle user status", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user status toggled", "user_id", existing.ID(), "active", existing.IsActive())
	return userToDTO(existing), nil
}

type AssignRolesCommand struct {
	UserID  uint
	RoleIDs []uint
}

type AssignRolesUseCase struct {
	userRepo user.UserRepository
	roleSync RoleSyncer
	logger   logger.Interface
}

func NewAssignRolesUseCase(userRepo user.UserRepository, roleSync RoleSyncer, logger logger.Interface) *AssignRolesUseCase {
	return &AssignRolesUseCase{userRepo: userRepo, roleSync: roleSync, logger: logger}
}

func (uc *AssignRolesUseCase) Execute(ctx context.Context, cmd AssignRolesCommand) (*UserDTO, error) {
	uc.logger.Infow("executing assign roles use case", "user_id", cmd.UserID, "roles", cmd.RoleIDs)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.ReplaceRoles(ctx, cmd.UserID, cmd.RoleIDs); err != nil {
		uc.logger.Errorw("failed to replace roles", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	existing.SetRoleIDs(cmd.RoleIDs)

	if err := uc.roleSync.SyncUserRoles(ctx, cmd.UserID, cmd.RoleIDs); err != nil {
		uc.logger.Errorw("failed to sync user roles", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("roles assigned", "user_id", existing.ID(), "roles", cmd.RoleIDs)
	return userToDTO(existing), nil
}
