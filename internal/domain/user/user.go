// Package user holds the staff account aggregate. Authorization lives in
// the permission domain; a user only carries its role assignments.
package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	active       bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
	roleIDs      []uint
}

// NewUser creates an active account. The password hash is set separately so
// the domain never sees plaintext.
func NewUser(name, email string) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("user name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("user name exceeds maximum length of 255 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid user email: %w", err)
	}

	now := time.Now()
	return &User{
		name:      name,
		email:     email,
		active:    true,
		createdAt: now,
		updatedAt: now,
		roleIDs:   []uint{},
	}, nil
}

func ReconstructUser(
	id uint,
	name, email, passwordHash string,
	active bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("user name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("user email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		active:       active,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		roleIDs:      []uint{},
	}, nil
}

func (u *User) ID() uint                { return u.id }
func (u *User) Name() string            { return u.name }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) IsActive() bool          { return u.active }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

func (u *User) RoleIDs() []uint {
	idsCopy := make([]uint, len(u.roleIDs))
	copy(idsCopy, u.roleIDs)
	return idsCopy
}

func (u *User) SetRoleIDs(roleIDs []uint) {
	if roleIDs == nil {
		roleIDs = []uint{}
	}
	u.roleIDs = roleIDs
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) UpdateDetails(name, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("user name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("user name exceeds maximum length of 255 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid user email: %w", err)
	}

	u.name = name
	u.email = email
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLoginAt = &now
	u.updatedAt = now
}
