package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"norte/internal/domain/permission"
	apperrors "norte/internal/shared/errors"
)

func reconstructRole(t *testing.T, id uint, name string) *permission.Role {
	t.Helper()
	now := time.Now()
	role, err := permission.ReconstructRole(id, name, "", now, now)
	require.NoError(t, err)
	return role
}

func reconstructPermission(t *testing.T, id uint, resource, action string) *permission.Permission {
	t.Helper()
	now := time.Now()
	p, err := permission.ReconstructPermission(id, resource+"."+action, resource, action, "General", "", now, now)
	require.NoError(t, err)
	return p
}

func TestCreateRoleUseCase_Execute(t *testing.T) {
	var syncedRoleID uint
	var replacedIDs []uint
	roleRepo := &mockRoleRepository{
		SaveFunc: func(ctx context.Context, role *permission.Role) error {
			return role.SetID(5)
		},
		ReplacePermissionsFunc: func(ctx context.Context, roleID uint, permissionIDs []uint) error {
			assert.Equal(t, uint(5), roleID)
			replacedIDs = permissionIDs
			return nil
		},
	}
	permRepo := &mockPermissionRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*permission.Permission, error) {
			return []*permission.Permission{
				reconstructPermission(t, 1, "customers", "read"),
				reconstructPermission(t, 2, "customers", "create"),
			}, nil
		},
	}
	policySync := &mockPolicySyncer{
		SyncRolePoliciesFunc: func(ctx context.Context, roleID uint) error {
			syncedRoleID = roleID
			return nil
		},
	}

	uc := NewCreateRoleUseCase(roleRepo, permRepo, policySync, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateRoleCommand{
		Name:          "Ventas",
		Description:   "Equipo comercial",
		PermissionIDs: []uint{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.ID)
	assert.Equal(t, []uint{1, 2}, replacedIDs)
	assert.Equal(t, uint(5), syncedRoleID)
}

func TestCreateRoleUseCase_Execute_DuplicateName(t *testing.T) {
	roleRepo := &mockRoleRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*permission.Role, error) {
			return reconstructRole(t, 2, name), nil
		},
	}

	uc := NewCreateRoleUseCase(roleRepo, &mockPermissionRepository{}, &mockPolicySyncer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateRoleCommand{Name: "Ventas"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestCreateRoleUseCase_Execute_UnknownPermissionID(t *testing.T) {
	permRepo := &mockPermissionRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*permission.Permission, error) {
			return []*permission.Permission{reconstructPermission(t, 1, "customers", "read")}, nil
		},
	}
	var saved bool
	roleRepo := &mockRoleRepository{
		SaveFunc: func(ctx context.Context, role *permission.Role) error {
			saved = true
			return nil
		},
	}

	uc := NewCreateRoleUseCase(roleRepo, permRepo, &mockPolicySyncer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateRoleCommand{
		Name:          "Ventas",
		PermissionIDs: []uint{1, 99},
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.False(t, saved)
}

func TestDeleteRoleUseCase_Execute_RoleInUse(t *testing.T) {
	var deleted bool
	roleRepo := &mockRoleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*permission.Role, error) {
			return reconstructRole(t, id, "Ventas"), nil
		},
		CountUsersFunc: func(ctx context.Context, roleID uint) (int64, error) {
			return 3, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}

	uc := NewDeleteRoleUseCase(roleRepo, &mockPolicySyncer{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteRoleCommand{RoleID: 4})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	assert.False(t, deleted)
}

func TestDeleteRoleUseCase_Execute_RemovesPolicies(t *testing.T) {
	var removedRoleID uint
	roleRepo := &mockRoleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*permission.Role, error) {
			return reconstructRole(t, id, "Ventas"), nil
		},
	}
	policySync := &mockPolicySyncer{
		RemoveRolePoliciesFunc: func(ctx context.Context, roleID uint) error {
			removedRoleID = roleID
			return nil
		},
	}

	uc := NewDeleteRoleUseCase(roleRepo, policySync, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteRoleCommand{RoleID: 4})

	require.NoError(t, err)
	assert.Equal(t, uint(4), removedRoleID)
}

func TestUpdateRoleUseCase_Execute_ReplacesPermissions(t *testing.T) {
	existing := reconstructRole(t, 4, "Ventas")
	var replacedIDs []uint
	roleRepo := &mockRoleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*permission.Role, error) {
			return existing, nil
		},
		ReplacePermissionsFunc: func(ctx context.Context, roleID uint, permissionIDs []uint) error {
			replacedIDs = permissionIDs
			return nil
		},
		CountUsersFunc: func(ctx context.Context, roleID uint) (int64, error) {
			return 2, nil
		},
	}
	permRepo := &mockPermissionRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*permission.Permission, error) {
			return []*permission.Permission{reconstructPermission(t, 7, "budgets", "read")}, nil
		},
	}

	uc := NewUpdateRoleUseCase(roleRepo, permRepo, &mockPolicySyncer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateRoleCommand{
		RoleID:        4,
		Name:          "Ventas",
		Description:   "Equipo comercial",
		PermissionIDs: []uint{7},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{7}, replacedIDs)
	assert.Equal(t, []uint{7}, result.PermissionIDs)
	assert.Equal(t, int64(2), result.UserCount)
}
