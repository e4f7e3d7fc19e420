package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	IsRead      *bool // nil defaults to false
}

// UpdateTaskInput carries a partial field set. A nil pointer means
// "field omitted, keep the prior value"; the owner is never part of it.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	IsRead      *bool
}

// TaskUsecase defines the interface for task-related business operations.
// All operations except Create and List are owner-scoped: the task is fetched
// first (not found when absent), then ownership is enforced (forbidden when
// the caller is not the owner).
type TaskUsecase interface {
	// Create stores a new task owned by ownerID (nil for an unowned task).
	Create(ctx context.Context, ownerID *int64, input CreateTaskInput) (*entity.Task, error)

	// List returns every task owned by the caller, newest first.
	List(ctx context.Context, callerID int64) ([]*entity.Task, error)

	// Get returns a single task after the ownership check.
	Get(ctx context.Context, callerID, taskID int64) (*entity.Task, error)

	// Update applies a partial field set and returns the updated task.
	Update(ctx context.Context, callerID, taskID int64, input UpdateTaskInput) (*entity.Task, error)

	// Delete removes the task.
	Delete(ctx context.Context, callerID, taskID int64) error

	// ToggleRead flips the read-state and returns the updated task.
	ToggleRead(ctx context.Context, callerID, taskID int64) (*entity.Task, error)
}
