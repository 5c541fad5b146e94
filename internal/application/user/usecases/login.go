package usecases

import (
	"context"
	"strings"

	"norte/internal/domain/user"
	"norte/internal/shared/biztime"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	User        UserDTO
}

// LoginUseCase authenticates by email and password. Failures are opaque:
// unknown email, bad password and inactive account all return the same
// unauthorized error.
type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenGenerator
	clock    biztime.Clock
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	clock biztime.Clock,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}
	if existing == nil || !existing.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Compare(existing.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(existing.ID(), existing.Email())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	existing.RecordLogin(uc.clock.Now())
	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", existing.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &LoginResult{
		AccessToken: token,
		User:        *userToDTO(existing),
	}, nil
}
