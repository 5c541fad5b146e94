// Package permission holds the RBAC catalog: named permissions grouped by
// category, and roles that bundle them. Enforcement itself is delegated to
// the policy engine in infrastructure.
package permission

import (
	"fmt"
	"time"
)

// Permission is one grantable capability, addressed by resource and action
// (for example budgets:update). The catalog is seeded at startup and roles
// reference it by ID.
type Permission struct {
	id          uint
	name        string
	resource    string
	action      string
	category    string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPermission(name, resource, action, category, description string) (*Permission, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("permission name is required")
	}
	if len(resource) == 0 {
		return nil, fmt.Errorf("permission resource is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("permission action is required")
	}

	now := time.Now()
	return &Permission{
		name:        name,
		resource:    resource,
		action:      action,
		category:    category,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPermission(
	id uint,
	name, resource, action, category, description string,
	createdAt, updatedAt time.Time,
) (*Permission, error) {
	if id == 0 {
		return nil, fmt.Errorf("permission ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("permission name is required")
	}

	return &Permission{
		id:          id,
		name:        name,
		resource:    resource,
		action:      action,
		category:    category,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Permission) ID() uint             { return p.id }
func (p *Permission) Name() string         { return p.name }
func (p *Permission) Resource() string     { return p.resource }
func (p *Permission) Action() string       { return p.action }
func (p *Permission) Category() string     { return p.category }
func (p *Permission) Description() string  { return p.description }
func (p *Permission) CreatedAt() time.Time { return p.createdAt }
func (p *Permission) UpdatedAt() time.Time { return p.updatedAt }

func (p *Permission) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permission ID cannot be zero")
	}
	p.id = id
	return nil
}
