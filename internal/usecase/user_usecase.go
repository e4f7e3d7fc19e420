package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// UserUsecase defines the interface for user-related read operations.
type UserUsecase interface {
	// GetMe re-fetches the authenticated user's full record by id.
	GetMe(ctx context.Context, userID int64) (*entity.User, error)

	// List returns every user, newest first. The delivery layer strips
	// the password digest before serializing.
	List(ctx context.Context) ([]*entity.User, error)
}
