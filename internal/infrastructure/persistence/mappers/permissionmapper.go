package mappers

import (
	"norte/internal/domain/permission"
	"norte/internal/infrastructure/persistence/models"
)

func RoleToModel(r *permission.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
		UpdatedAt:   r.UpdatedAt().UnixMilli(),
	}
}

func RoleToDomain(model *models.RoleModel) (*permission.Role, error) {
	return permission.ReconstructRole(
		model.ID,
		model.Name,
		model.Description,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func PermissionToModel(p *permission.Permission) *models.PermissionModel {
	return &models.PermissionModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Resource:    p.Resource(),
		Action:      p.Action(),
		Category:    p.Category(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}

func PermissionToDomain(model *models.PermissionModel) (*permission.Permission, error) {
	return permission.ReconstructPermission(
		model.ID,
		model.Name,
		model.Resource,
		model.Action,
		model.Category,
		model.Description,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
