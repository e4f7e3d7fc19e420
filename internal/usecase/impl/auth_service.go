// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users        repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:        users,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete user registration process.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	// 1. Check if an account with this email already exists.
	_, err := srv.users.FindByEmail(ctx, input.Email)
	if err == nil {
		// If no error, an account was found.
		return nil, domainerrors.ErrEmailTaken.WrapMessage("user registration failed")
	}
	// We expect a 'not found' error. If it's a different error, something went wrong.
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// 2. Hash the password; the plaintext never leaves this call.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	// 3. Create the user. The unique constraint backstops the lookup
	// against a concurrent registration with the same email.
	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := srv.users.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to create user", "error", err, "email", input.Email)

		return nil, errors.WithStack(err)
	}

	// 4. Issue the token.
	token, err := srv.tokenService.Issue(newUser.ID, newUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login orchestrates the user login process. Unknown email and wrong password
// both collapse into ErrInvalidCredentials so the responses are indistinguishable.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	// 1. Find the account.
	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Issue the token.
	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Refresh re-resolves the user by id and issues a fresh token with the same
// claims. An account deleted after token issuance surfaces as unauthorized.
func (srv *authService) Refresh(ctx context.Context, userID int64) (string, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUnauthorized.WrapMessage("refresh failed")
		}

		return "", errors.Wrap(err, "failed to find user by id")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}
