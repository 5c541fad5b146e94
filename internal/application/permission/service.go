// Package permission exposes the access control gate the HTTP layer calls
// before every guarded operation, plus the glue that keeps the policy engine
// aligned with role and assignment changes.
package permission

import (
	"context"

	"norte/internal/domain/permission"
	"norte/internal/shared/constants"
	"norte/internal/shared/logger"
)

// Checker is what middleware depends on.
type Checker interface {
	CheckPermission(ctx context.Context, userID uint, resource, action string) (bool, error)
}

type Service struct {
	roleRepo       permission.RoleRepository
	permissionRepo permission.PermissionRepository
	enforcer       permission.PermissionEnforcer
	logger         logger.Interface
}

func NewService(
	roleRepo permission.RoleRepository,
	permissionRepo permission.PermissionRepository,
	enforcer permission.PermissionEnforcer,
	logger logger.Interface,
) *Service {
	return &Service{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		enforcer:       enforcer,
		logger:         logger,
	}
}

// CheckPermission reports whether the user may perform action on resource.
// The bootstrap account always passes on the permissions resource so the
// matrix can be repaired even when every role grant is broken.
func (s *Service) CheckPermission(ctx context.Context, userID uint, resource, action string) (bool, error) {
	if userID == constants.BootstrapUserID && resource == "permissions" {
		return true, nil
	}
	return s.enforcer.Enforce(permission.UserSubject(userID), resource, action)
}

// SyncRolePolicies rewrites the policy rows for a role from its current
// permission grants. Called after role create/update and permission sync.
func (s *Service) SyncRolePolicies(ctx context.Context, roleID uint) error {
	subject := permission.RoleSubject(roleID)

	if err := s.enforcer.RemovePoliciesForRole(subject); err != nil {
		return err
	}

	permissionIDs, err := s.roleRepo.GetPermissionIDs(ctx, roleID)
	if err != nil {
		return err
	}
	if len(permissionIDs) == 0 {
		return nil
	}

	perms, err := s.permissionRepo.GetByIDs(ctx, permissionIDs)
	if err != nil {
		return err
	}

	for _, p := range perms {
		if err := s.enforcer.AddPolicy(subject, p.Resource(), p.Action()); err != nil {
			return err
		}
	}
	return nil
}

// RemoveRolePolicies drops all policy rows for a deleted role.
func (s *Service) RemoveRolePolicies(ctx context.Context, roleID uint) error {
	return s.enforcer.RemovePoliciesForRole(permission.RoleSubject(roleID))
}

// SyncUserRoles rewrites the grouping rows linking a user to its roles.
// Called after role assignment changes.
func (s *Service) SyncUserRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	subject := permission.UserSubject(userID)

	if err := s.enforcer.DeleteRolesForUser(subject); err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		if err := s.enforcer.AddRoleForUser(subject, permission.RoleSubject(roleID)); err != nil {
			return err
		}
	}
	return nil
}

// GetUserPermissions resolves the distinct permission set granted through a
// user's roles. Used by the profile endpoint so the UI can hide what the
// user cannot do.
func (s *Service) GetUserPermissions(ctx context.Context, userID uint) ([]*permission.Permission, error) {
	roleIDs, err := s.roleRepo.GetRoleIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{})
	var distinct []uint
	for _, roleID := range roleIDs {
		permissionIDs, err := s.roleRepo.GetPermissionIDs(ctx, roleID)
		if err != nil {
			return nil, err
		}
		for _, id := range permissionIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}

	if len(distinct) == 0 {
		return []*permission.Permission{}, nil
	}
	return s.permissionRepo.GetByIDs(ctx, distinct)
}
