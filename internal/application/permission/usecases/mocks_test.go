package usecases

import (
	"context"

	"norte/internal/domain/permission"
	"norte/internal/shared/logger"
)

type mockRoleRepository struct {
	SaveFunc               func(ctx context.Context, role *permission.Role) error
	UpdateFunc             func(ctx context.Context, role *permission.Role) error
	DeleteFunc             func(ctx context.Context, id uint) error
	GetByIDFunc            func(ctx context.Context, id uint) (*permission.Role, error)
	GetByNameFunc          func(ctx context.Context, name string) (*permission.Role, error)
	ListFunc               func(ctx context.Context) ([]*permission.Role, error)
	ReplacePermissionsFunc func(ctx context.Context, roleID uint, permissionIDs []uint) error
	GetPermissionIDsFunc   func(ctx context.Context, roleID uint) ([]uint, error)
	CountUsersFunc         func(ctx context.Context, roleID uint) (int64, error)
	GetRoleIDsForUserFunc  func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockRoleRepository) Save(ctx context.Context, role *permission.Role) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, role)
	}
	return nil
}

func (m *mockRoleRepository) Update(ctx context.Context, role *permission.Role) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, role)
	}
	return nil
}

func (m *mockRoleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id uint) (*permission.Role, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRoleRepository) GetByName(ctx context.Context, name string) (*permission.Role, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockRoleRepository) List(ctx context.Context) ([]*permission.Role, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRoleRepository) ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint) error {
	if m.ReplacePermissionsFunc != nil {
		return m.ReplacePermissionsFunc(ctx, roleID, permissionIDs)
	}
	return nil
}

func (m *mockRoleRepository) GetPermissionIDs(ctx context.Context, roleID uint) ([]uint, error) {
	if m.GetPermissionIDsFunc != nil {
		return m.GetPermissionIDsFunc(ctx, roleID)
	}
	return nil, nil
}

func (m *mockRoleRepository) CountUsers(ctx context.Context, roleID uint) (int64, error) {
	if m.CountUsersFunc != nil {
		return m.CountUsersFunc(ctx, roleID)
	}
	return 0, nil
}

func (m *mockRoleRepository) GetRoleIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	if m.GetRoleIDsForUserFunc != nil {
		return m.GetRoleIDsForUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockPermissionRepository struct {
	SaveFunc                func(ctx context.Context, p *permission.Permission) error
	GetByIDFunc             func(ctx context.Context, id uint) (*permission.Permission, error)
	GetByIDsFunc            func(ctx context.Context, ids []uint) ([]*permission.Permission, error)
	GetByResourceActionFunc func(ctx context.Context, resource, action string) (*permission.Permission, error)
	ListFunc                func(ctx context.Context) ([]*permission.Permission, error)
}

func (m *mockPermissionRepository) Save(ctx context.Context, p *permission.Permission) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPermissionRepository) GetByID(ctx context.Context, id uint) (*permission.Permission, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPermissionRepository) GetByIDs(ctx context.Context, ids []uint) ([]*permission.Permission, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockPermissionRepository) GetByResourceAction(ctx context.Context, resource, action string) (*permission.Permission, error) {
	if m.GetByResourceActionFunc != nil {
		return m.GetByResourceActionFunc(ctx, resource, action)
	}
	return nil, nil
}

func (m *mockPermissionRepository) List(ctx context.Context) ([]*permission.Permission, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockPolicySyncer struct {
	SyncRolePoliciesFunc   func(ctx context.Context, roleID uint) error
	RemoveRolePoliciesFunc func(ctx context.Context, roleID uint) error
}

func (m *mockPolicySyncer) SyncRolePolicies(ctx context.Context, roleID uint) error {
	if m.SyncRolePoliciesFunc != nil {
		return m.SyncRolePoliciesFunc(ctx, roleID)
	}
	return nil
}

func (m *mockPolicySyncer) RemoveRolePolicies(ctx context.Context, roleID uint) error {
	if m.RemoveRolePoliciesFunc != nil {
		return m.RemoveRolePoliciesFunc(ctx, roleID)
	}
	return nil
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
