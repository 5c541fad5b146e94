package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"norte/internal/domain/permission"
	"norte/internal/infrastructure/persistence/mappers"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Save(ctx context.Context, role *permission.Role) error {
	model := mappers.RoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save role: %w", err)
	}

	return role.SetID(model.ID)
}

func (r *RoleRepository) Update(ctx context.Context, role *permission.Role) error {
	model := mappers.RoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RoleModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}

	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("role_id = ?", id).Delete(&models.RolePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete role permissions: %w", err)
	}

	result := tx.Delete(&models.RoleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("role not found")
	}
	return nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*permission.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return mappers.RoleToDomain(&model)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*permission.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return mappers.RoleToDomain(&model)
}

func (r *RoleRepository) List(ctx context.Context) ([]*permission.Role, error) {
	var roleModels []models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*permission.Role, len(roleModels))
	for i, model := range roleModels {
		role, err := mappers.RoleToDomain(&model)
		if err != nil {
			return nil, err
		}
		roles[i] = role
	}

	return roles, nil
}

func (r *RoleRepository) ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}

	if len(permissionIDs) == 0 {
		return nil
	}

	rows := make([]models.RolePermissionModel, len(permissionIDs))
	for i, permissionID := range permissionIDs {
		rows[i] = models.RolePermissionModel{RoleID: roleID, PermissionID: permissionID}
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to grant role permissions: %w", err)
	}

	return nil
}

func (r *RoleRepository) GetPermissionIDs(ctx context.Context, roleID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.
		Model(&models.RolePermissionModel{}).
		Where("role_id = ?", roleID).
		Pluck("permission_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load role permissions: %w", err)
	}
	return ids, nil
}

func (r *RoleRepository) CountUsers(ctx context.Context, roleID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.UserRoleModel{}).
		Where("role_id = ?", roleID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count role users: %w", err)
	}
	return count, nil
}

func (r *RoleRepository) GetRoleIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.
		Model(&models.UserRoleModel{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load user role IDs: %w", err)
	}
	return ids, nil
}

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) Save(ctx context.Context, p *permission.Permission) error {
	model := mappers.PermissionToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save permission: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PermissionRepository) GetByID(ctx context.Context, id uint) (*permission.Permission, error) {
	var model models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find permission: %w", err)
	}

	return mappers.PermissionToDomain(&model)
}

func (r *PermissionRepository) GetByIDs(ctx context.Context, ids []uint) ([]*permission.Permission, error) {
	if len(ids) == 0 {
		return []*permission.Permission{}, nil
	}

	var permissionModels []models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&permissionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find permissions: %w", err)
	}

	permissions := make([]*permission.Permission, len(permissionModels))
	for i, model := range permissionModels {
		p, err := mappers.PermissionToDomain(&model)
		if err != nil {
			return nil, err
		}
		permissions[i] = p
	}

	return permissions, nil
}

func (r *PermissionRepository) GetByResourceAction(ctx context.Context, resource, action string) (*permission.Permission, error) {
	var model models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("resource = ? AND action = ?", resource, action).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find permission: %w", err)
	}

	return mappers.PermissionToDomain(&model)
}

func (r *PermissionRepository) List(ctx context.Context) ([]*permission.Permission, error) {
	var permissionModels []models.PermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("category ASC, id ASC").Find(&permissionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	permissions := make([]*permission.Permission, len(permissionModels))
	for i, model := range permissionModels {
		p, err := mappers.PermissionToDomain(&model)
		if err != nil {
			return nil, err
		}
		permissions[i] = p
	}

	return permissions, nil
}
