package usecases

import (
	"context"

	"norte/internal/domain/permission"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type CreateRoleCommand struct {
	Name          string
	Description   string
	PermissionIDs []uint
}

type CreateRoleUseCase struct {
	roleRepo       permission.RoleRepository
	permissionRepo permission.PermissionRepository
	policySync     PolicySyncer
	logger         logger.Interface
}

func NewCreateRoleUseCase(
	roleRepo permission.RoleRepository,
	permissionRepo permission.PermissionRepository,
	policySync PolicySyncer,
	logger logger.Interface,
) *CreateRoleUseCase {
	return &CreateRoleUseCase{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		policySync:     policySync,
		logger:         logger,
	}
}

func (uc *CreateRoleUseCase) Execute(ctx context.Context, cmd CreateRoleCommand) (*RoleDTO, error) {
	uc.logger.Infow("executing create role use case", "name", cmd.Name)

	existing, err := uc.roleRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check role name", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a role with this name already exists")
	}

	if err := uc.validatePermissionIDs(ctx, cmd.PermissionIDs); err != nil {
		return nil, err
	}

	newRole, err := permission.NewRole(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.roleRepo.Save(ctx, newRole); err != nil {
		uc.logger.Errorw("failed to save role", "error", err)
		return nil, err
	}

	if len(cmd.PermissionIDs) > 0 {
		if err := uc.roleRepo.ReplacePermissions(ctx, newRole.ID(), cmd.PermissionIDs); err != nil {
			uc.logger.Errorw("failed to set role permissions", "role_id", newRole.ID(), "error", err)
			return nil, err
		}
		newRole.SetPermissionIDs(cmd.PermissionIDs)
	}

	if err := uc.policySync.SyncRolePolicies(ctx, newRole.ID()); err != nil {
		uc.logger.Errorw("failed to sync role policies", "role_id", newRole.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("role created", "role_id", newRole.ID())
	return roleToDTO(newRole, 0), nil
}

func (uc *CreateRoleUseCase) validatePermissionIDs(ctx context.Context, ids []uint) error {
	return validatePermissionIDs(ctx, uc.permissionRepo, ids)
}

// validatePermissionIDs rejects grants referencing permissions that do not
// exist in the catalog.
func validatePermissionIDs(ctx context.Context, repo permission.PermissionRepository, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return errors.NewValidationError("one or more permission IDs do not exist")
	}
	return nil
}
