package usecases

import "context"

// PolicySyncer keeps the policy engine aligned with role changes. Satisfied
// by the application permission Service.
type PolicySyncer interface {
	SyncRolePolicies(ctx context.Context, roleID uint) error
	RemoveRolePolicies(ctx context.Context, roleID uint) error
}

type CreateRoleExecutor interface {
	Execute(ctx context.Context, cmd CreateRoleCommand) (*RoleDTO, error)
}

type UpdateRoleExecutor interface {
	Execute(ctx context.Context, cmd UpdateRoleCommand) (*RoleDTO, error)
}

type DeleteRoleExecutor interface {
	Execute(ctx context.Context, cmd DeleteRoleCommand) error
}

type GetRoleExecutor interface {
	Execute(ctx context.Context, query GetRoleQuery) (*RoleDTO, error)
}

type ListRolesExecutor interface {
	Execute(ctx context.Context) ([]RoleDTO, error)
}

type ListPermissionsExecutor interface {
	Execute(ctx context.Context) ([]PermissionDTO, error)
}
