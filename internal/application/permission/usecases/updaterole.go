package usecases

import (
	"context"

	"norte/internal/domain/permission"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type UpdateRoleCommand struct {
	RoleID        uint
	Name          string
	Description   string
	PermissionIDs []uint
}

type UpdateRoleUseCase struct {
	roleRepo       permission.RoleRepository
	permissionRepo permission.PermissionRepository
	policySync     PolicySyncer
	logger         logger.Interface
}

func NewUpdateRoleUseCase(
	roleRepo permission.RoleRepository,
	permissionRepo permission.PermissionRepository,
	policySync PolicySyncer,
	logger logger.Interface,
) *UpdateRoleUseCase {
	return &UpdateRoleUseCase{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		policySync:     policySync,
		logger:         logger,
	}
}

func (uc *UpdateRoleUseCase) Execute(ctx context.Context, cmd UpdateRoleCommand) (*RoleDTO, error) {
	uc.logger.Infow("executing update role use case", "role_id", cmd.RoleID)

	if cmd.RoleID == 0 {
		return nil, errors.NewValidationError("role ID is required")
	}

	existing, err := uc.roleRepo.GetByID(ctx, cmd.RoleID)
	if err != nil {
		uc.logger.Errorw("failed to get role", "role_id", cmd.RoleID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("role not found")
	}

	if cmd.Name != existing.Name() {
		byName, err := uc.roleRepo.GetByName(ctx, cmd.Name)
		if err != nil {
			return nil, err
		}
		if byName != nil && byName.ID() != cmd.RoleID {
			return nil, errors.NewConflictError("a role with this name already exists")
		}
	}

	if err := validatePermissionIDs(ctx, uc.permissionRepo, cmd.PermissionIDs); err != nil {
		return nil, err
	}

	if err := existing.UpdateDetails(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.roleRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update role", "role_id", cmd.RoleID, "error", err)
		return nil, err
	}

	if err := uc.roleRepo.ReplacePermissions(ctx, cmd.RoleID, cmd.PermissionIDs); err != nil {
		uc.logger.Errorw("failed to replace role permissions", "role_id", cmd.RoleID, "error", err)
		return nil, err
	}
	existing.SetPermissionIDs(cmd.PermissionIDs)

	if err := uc.policySync.SyncRolePolicies(ctx, cmd.RoleID); err != nil {
		uc.logger.Errorw("failed to sync role policies", "role_id", cmd.RoleID, "error", err)
		return nil, err
	}

	userCount, err := uc.roleRepo.CountUsers(ctx, cmd.RoleID)
	if err != nil {
		userCount = 0
	}

	uc.logger.Infow("role updated", "role_id", cmd.RoleID)
	return roleToDTO(existing, userCount), nil
}
