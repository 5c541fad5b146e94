package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"norte/internal/domain/user"
	"norte/internal/infrastructure/persistence/mappers"
	"norte/internal/infrastructure/persistence/models"
	"norte/internal/shared/db"
)

var allowedUserOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"email":      true,
	"active":     true,
	"created_at": true,
	"updated_at": true,
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "password_hash", "active", "last_login_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", id).Delete(&models.UserRoleModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user roles: %w", err)
	}

	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	u, err := mappers.UserToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadRoleIDs(ctx, u, model.ID); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	u, err := mappers.UserToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadRoleIDs(ctx, u, model.ID); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = applyOrder(query, filter.SortBy, filter.SortOrder, allowedUserOrderByFields, "name ASC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var userModels []models.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		u, err := mappers.UserToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		if err := r.loadRoleIDs(ctx, u, model.ID); err != nil {
			return nil, 0, err
		}
		users[i] = u
	}

	return users, total, nil
}

func (r *UserRepository) ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Delete(&models.UserRoleModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}

	if len(roleIDs) == 0 {
		return nil
	}

	rows := make([]models.UserRoleModel, len(roleIDs))
	for i, roleID := range roleIDs {
		rows[i] = models.UserRoleModel{UserID: userID, RoleID: roleID}
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to assign user roles: %w", err)
	}

	return nil
}

func (r *UserRepository) GetActiveIDs(ctx context.Context) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.
		Model(&models.UserModel{}).
		Where("active = ?", true).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list active user IDs: %w", err)
	}
	return ids, nil
}

func (r *UserRepository) loadRoleIDs(ctx context.Context, u *user.User, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var roleIDs []uint
	if err := tx.
		Model(&models.UserRoleModel{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error; err != nil {
		return fmt.Errorf("failed to load user roles: %w", err)
	}
	u.SetRoleIDs(roleIDs)

	return nil
}
