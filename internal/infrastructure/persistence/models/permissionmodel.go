package models

type RoleModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}

type PermissionModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Resource    string `gorm:"size:100;not null;index:idx_resource_action,unique"`
	Action      string `gorm:"size:100;not null;index:idx_resource_action,unique"`
	Category    string `gorm:"size:100;index"`
	Description string `gorm:"size:255"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PermissionModel) TableName() string {
	return "permissions"
}

type RolePermissionModel struct {
	ID           uint  `gorm:"primaryKey"`
	RoleID       uint  `gorm:"not null;index:idx_role_permission,unique"`
	PermissionID uint  `gorm:"not null;index:idx_role_permission,unique;index"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
}

func (RolePermissionModel) TableName() string {
	return "role_permissions"
}
