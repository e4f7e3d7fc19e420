package impl

import (
	"context"
	"log/slog"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// GetMe re-fetches the authenticated user's record. A valid token whose
// subject no longer resolves yields not found.
func (srv *userService) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("authenticated user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// List returns every user, newest first.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
