package usecases

import (
	"time"

	"norte/internal/domain/permission"
)

type RoleDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PermissionIDs []uint    `json:"permission_ids"`
	UserCount     int64     `json:"user_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PermissionDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func roleToDTO(r *permission.Role, userCount int64) *RoleDTO {
	return &RoleDTO{
		ID:            r.ID(),
		Name:          r.Name(),
		Description:   r.Description(),
		PermissionIDs: r.PermissionIDs(),
		UserCount:     userCount,
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func permissionToDTO(p *permission.Permission) PermissionDTO {
	return PermissionDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Resource:    p.Resource(),
		Action:      p.Action(),
		Category:    p.Category(),
		Description: p.Description(),
	}
}
