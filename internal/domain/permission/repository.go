package permission

import "context"

type PermissionRepository interface {
	Save(ctx context.Context, permission *Permission) error
	GetByID(ctx context.Context, id uint) (*Permission, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Permission, error)
	GetByResourceAction(ctx context.Context, resource, action string) (*Permission, error)
	List(ctx context.Context) ([]*Permission, error)
}

type RoleRepository interface {
	Save(ctx context.Context, role *Role) error
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	// ReplacePermissions swaps a role's grants for the given permission set.
	ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint) error
	GetPermissionIDs(ctx context.Context, roleID uint) ([]uint, error)
	// CountUsers reports how many users are assigned the role. Roles in use
	// cannot be deleted.
	CountUsers(ctx context.Context, roleID uint) (int64, error)
	GetRoleIDsForUser(ctx context.Context, userID uint) ([]uint, error)
}
