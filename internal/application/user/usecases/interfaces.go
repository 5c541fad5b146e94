package usecases

import "context"

// PasswordHasher hides the bcrypt dependency from the use cases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenGenerator issues signed access tokens for authenticated users.
type TokenGenerator interface {
	Generate(userID uint, email string) (string, error)
}

// RoleSyncer pushes role assignment changes to the policy engine. Satisfied
// by the application permission Service.
type RoleSyncer interface {
	SyncUserRoles(ctx context.Context, userID uint, roleIDs []uint) error
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ToggleUserStatusExecutor interface {
	Execute(ctx context.Context, cmd ToggleUserStatusCommand) (*UserDTO, error)
}

type AssignRolesExecutor interface {
	Execute(ctx context.Context, cmd AssignRolesCommand) (*UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
