package user

import "context"

type UserFilter struct {
	Active *bool
	Search *string

	Page     int
	PageSize int

	SortBy    string
	SortOrder string
}

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	// ReplaceRoles swaps the user's role assignments for the given set.
	ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error
	GetActiveIDs(ctx context.Context) ([]uint, error)
}
