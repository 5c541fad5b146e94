package mappers

import (
	"norte/internal/domain/user"
	"norte/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Active:       u.IsActive(),
		LastLoginAt:  timeToMillisPtr(u.LastLoginAt()),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

// UserToDomain converts the user row only. Role assignments are loaded
// separately by the repository.
func UserToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.Active,
		millisToTimePtr(model.LastLoginAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
