package permission

import "strconv"

// PermissionEnforcer is the policy engine behind access checks. Subjects are
// user IDs as strings; roles are addressed as "role:<id>" so renames never
// invalidate policies.
type PermissionEnforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	RemovePoliciesForRole(role string) error
	AddRoleForUser(userID string, role string) error
	DeleteRolesForUser(userID string) error
	LoadPolicy() error
}

// RoleSubject derives the casbin subject for a role.
func RoleSubject(roleID uint) string {
	return "role:" + strconv.FormatUint(uint64(roleID), 10)
}

// UserSubject derives the casbin subject for a user.
func UserSubject(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
