package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainperm "norte/internal/domain/permission"
	"norte/internal/shared/logger"
)

type mockEnforcer struct {
	EnforceFunc               func(subject, resource, action string) (bool, error)
	AddPolicyFunc             func(role, resource, action string) error
	RemovePolicyFunc          func(role, resource, action string) error
	RemovePoliciesForRoleFunc func(role string) error
	AddRoleForUserFunc        func(userID, role string) error
	DeleteRolesForUserFunc    func(userID string) error
	LoadPolicyFunc            func() error
}

func (m *mockEnforcer) Enforce(subject, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(subject, resource, action)
	}
	return false, nil
}

func (m *mockEnforcer) AddPolicy(role, resource, action string) error {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(role, resource, action)
	}
	return nil
}

func (m *mockEnforcer) RemovePolicy(role, resource, action string) error {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(role, resource, action)
	}
	return nil
}

func (m *mockEnforcer) RemovePoliciesForRole(role string) error {
	if m.RemovePoliciesForRoleFunc != nil {
		return m.RemovePoliciesForRoleFunc(role)
	}
	return nil
}

func (m *mockEnforcer) AddRoleForUser(userID, role string) error {
	if m.AddRoleForUserFunc != nil {
		return m.AddRoleForUserFunc(userID, role)
	}
	return nil
}

func (m *mockEnforcer) DeleteRolesForUser(userID string) error {
	if m.DeleteRolesForUserFunc != nil {
		return m.DeleteRolesForUserFunc(userID)
	}
	return nil
}

func (m *mockEnforcer) LoadPolicy() error {
	if m.LoadPolicyFunc != nil {
		return m.LoadPolicyFunc()
	}
	return nil
}

type mockRoleRepo struct {
	domainperm.RoleRepository
	GetPermissionIDsFunc func(ctx context.Context, roleID uint) ([]uint, error)
}

func (m *mockRoleRepo) GetPermissionIDs(ctx context.Context, roleID uint) ([]uint, error) {
	if m.GetPermissionIDsFunc != nil {
		return m.GetPermissionIDsFunc(ctx, roleID)
	}
	return nil, nil
}

type mockPermRepo struct {
	domainperm.PermissionRepository
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*domainperm.Permission, error)
}

func (m *mockPermRepo) GetByIDs(ctx context.Context, ids []uint) ([]*domainperm.Permission, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestService_CheckPermission_BootstrapHatch(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		resource string
		enforced bool
		want     bool
	}{
		{
			name:     "bootstrap user on permissions resource bypasses enforcer",
			userID:   1,
			resource: "permissions",
			enforced: false,
			want:     true,
		},
		{
			name:     "bootstrap user on other resources goes through enforcer",
			userID:   1,
			resource: "customers",
			enforced: false,
			want:     false,
		},
		{
			name:     "other users never bypass",
			userID:   2,
			resource: "permissions",
			enforced: false,
			want:     false,
		},
		{
			name:     "granted permission passes",
			userID:   2,
			resource: "customers",
			enforced: true,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enforcer := &mockEnforcer{
				EnforceFunc: func(subject, resource, action string) (bool, error) {
					return tt.enforced, nil
				},
			}
			svc := NewService(&mockRoleRepo{}, &mockPermRepo{}, enforcer, noopLogger{})

			allowed, err := svc.CheckPermission(context.Background(), tt.userID, tt.resource, "manage")
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestService_SyncRolePolicies(t *testing.T) {
	var removed string
	var added [][3]string
	enforcer := &mockEnforcer{
		RemovePoliciesForRoleFunc: func(role string) error {
			removed = role
			return nil
		},
		AddPolicyFunc: func(role, resource, action string) error {
			added = append(added, [3]string{role, resource, action})
			return nil
		},
	}
	roleRepo := &mockRoleRepo{
		GetPermissionIDsFunc: func(ctx context.Context, roleID uint) ([]uint, error) {
			return []uint{1, 2}, nil
		},
	}
	permRepo := &mockPermRepo{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*domainperm.Permission, error) {
			p1, err := domainperm.NewPermission("customers.read", "customers", "read", "CRM", "")
			require.NoError(t, err)
			p2, err := domainperm.NewPermission("customers.create", "customers", "create", "CRM", "")
			require.NoError(t, err)
			return []*domainperm.Permission{p1, p2}, nil
		},
	}

	svc := NewService(roleRepo, permRepo, enforcer, noopLogger{})
	err := svc.SyncRolePolicies(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "role:4", removed)
	assert.Equal(t, [][3]string{
		{"role:4", "customers", "read"},
		{"role:4", "customers", "create"},
	}, added)
}

func TestService_SyncUserRoles(t *testing.T) {
	var cleared string
	var grouped [][2]string
	enforcer := &mockEnforcer{
		DeleteRolesForUserFunc: func(userID string) error {
			cleared = userID
			return nil
		},
		AddRoleForUserFunc: func(userID, role string) error {
			grouped = append(grouped, [2]string{userID, role})
			return nil
		},
	}

	svc := NewService(&mockRoleRepo{}, &mockPermRepo{}, enforcer, noopLogger{})
	err := svc.SyncUserRoles(context.Background(), 9, []uint{2, 5})

	require.NoError(t, err)
	assert.Equal(t, "9", cleared)
	assert.Equal(t, [][2]string{{"9", "role:2"}, {"9", "role:5"}}, grouped)
}
