package usecases

import (
	"context"

	"norte/internal/domain/permission"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type DeleteRoleCommand struct {
	RoleID uint
}

// DeleteRoleUseCase removes a role. Roles still assigned to users cannot be
// deleted; reassign the users first.
type DeleteRoleUseCase struct {
	roleRepo   permission.RoleRepository
	policySync PolicySyncer
	logger     logger.Interface
}

func NewDeleteRoleUseCase(
	roleRepo permission.RoleRepository,
	policySync PolicySyncer,
	logger logger.Interface,
) *DeleteRoleUseCase {
	return &DeleteRoleUseCase{roleRepo: roleRepo, policySync: policySync, logger: logger}
}

func (uc *DeleteRoleUseCase) Execute(ctx context.Context, cmd DeleteRoleCommand) error {
	uc.logger.Infow("executing delete role use case", "role_id", cmd.RoleID)

	if cmd.RoleID == 0 {
		return errors.NewValidationError("role ID is required")
	}

	existing, err := uc.roleRepo.GetByID(ctx, cmd.RoleID)
	if err != nil {
		uc.logger.Errorw("failed to get role", "role_id", cmd.RoleID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("role not found")
	}

	userCount, err := uc.roleRepo.CountUsers(ctx, cmd.RoleID)
	if err != nil {
		uc.logger.Errorw("failed to count role users", "role_id", cmd.RoleID, "error", err)
		return err
	}
	if userCount > 0 {
		return errors.NewConflictError("role is assigned to users and cannot be deleted")
	}

	if err := uc.roleRepo.Delete(ctx, cmd.RoleID); err != nil {
		uc.logger.Errorw("failed to delete role", "role_id", cmd.RoleID, "error", err)
		return err
	}

	if err := uc.policySync.RemoveRolePolicies(ctx, cmd.RoleID); err != nil {
		uc.logger.Errorw("failed to remove role policies", "role_id", cmd.RoleID, "error", err)
		return err
	}

	uc.logger.Infow("role deleted", "role_id", cmd.RoleID)
	return nil
}

type GetRoleQuery struct {
	RoleID uint
}

type GetRoleUseCase struct {
	roleRepo permission.RoleRepository
	logger   logger.Interface
}

func NewGetRoleUseCase(roleRepo permission.RoleRepository, logger logger.Interface) *GetRoleUseCase {
	return &GetRoleUseCase{roleRepo: roleRepo, logger: logger}
}

func (uc *GetRoleUseCase) Execute(ctx context.Context, query GetRoleQuery) (*RoleDTO, error) {
	if query.RoleID == 0 {
		return nil, errors.NewValidationError("role ID is required")
	}

	existing, err := uc.roleRepo.GetByID(ctx, query.RoleID)
	if err != nil {
		uc.logger.Errorw("failed to get role", "role_id", query.RoleID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("role not found")
	}

	permissionIDs, err := uc.roleRepo.GetPermissionIDs(ctx, query.RoleID)
	if err != nil {
		return nil, err
	}
	existing.SetPermissionIDs(permissionIDs)

	userCount, err := uc.roleRepo.CountUsers(ctx, query.RoleID)
	if err != nil {
		return nil, err
	}

	return roleToDTO(existing, userCount), nil
}

type ListRolesUseCase struct {
	roleRepo permission.RoleRepository
	logger   logger.Interface
}

func NewListRolesUseCase(roleRepo permission.RoleRepository, logger logger.Interface) *ListRolesUseCase {
	return &ListRolesUseCase{roleRepo: roleRepo, logger: logger}
}

func (uc *ListRolesUseCase) Execute(ctx context.Context) ([]RoleDTO, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list roles", "error", err)
		return nil, err
	}

	dtos := make([]RoleDTO, 0, len(roles))
	for _, r := range roles {
		permissionIDs, err := uc.roleRepo.GetPermissionIDs(ctx, r.ID())
		if err != nil {
			return nil, err
		}
		r.SetPermissionIDs(permissionIDs)

		userCount, err := uc.roleRepo.CountUsers(ctx, r.ID())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *roleToDTO(r, userCount))
	}

	return dtos, nil
}

type ListPermissionsUseCase struct {
	permissionRepo permission.PermissionRepository
	logger         logger.Interface
}

func NewListPermissionsUseCase(
	permissionRepo permission.PermissionRepository,
	logger logger.Interface,
) *ListPermissionsUseCase {
	return &ListPermissionsUseCase{permissionRepo: permissionRepo, logger: logger}
}

// Execute returns the full permission catalog so the role editor can render
// the grant matrix.
func (uc *ListPermissionsUseCase) Execute(ctx context.Context) ([]PermissionDTO, error) {
	perms, err := uc.permissionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list permissions", "error", err)
		return nil, err
	}

	dtos := make([]PermissionDTO, 0, len(perms))
	for _, p := range perms {
		dtos = append(dtos, permissionToDTO(p))
	}
	return dtos, nil
}
