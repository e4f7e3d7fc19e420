package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
// Update and Delete also return it when the target row vanished between the
// ownership check and the write.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindByID retrieves a single task by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// FindAllByOwner retrieves every task owned by the given user,
	// ordered by descending ID.
	FindAllByOwner(ctx context.Context, ownerID int64) ([]*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// Update persists the task's mutable fields. Returns ErrTaskNotFound
	// if no row with the task's ID exists anymore.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task with the given ID. Returns ErrTaskNotFound
	// if no such row exists.
	Delete(ctx context.Context, id int64) error
}
