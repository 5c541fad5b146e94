package usecases

import (
	"time"

	"norte/internal/domain/user"
)

type UserDTO struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Active      bool       `json:"active"`
	RoleIDs     []uint     `json:"role_ids"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func userToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		Active:      u.IsActive(),
		RoleIDs:     u.RoleIDs(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}
