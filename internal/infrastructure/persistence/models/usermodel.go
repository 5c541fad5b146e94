package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"not null;default:true;index"`
	LastLoginAt  *int64
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type UserRoleModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;index:idx_user_role,unique"`
	RoleID    uint  `gorm:"not null;index:idx_user_role,unique;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
