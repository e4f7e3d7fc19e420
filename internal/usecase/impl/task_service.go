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

// taskService implements the TaskUsecase interface.
type taskService struct {
	tasks  repository.TaskRepository
	logger *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(tasks repository.TaskRepository, logger *slog.Logger) usecase.TaskUsecase {
	return &taskService{
		tasks:  tasks,
		logger: logger,
	}
}

// Create stores a new task. is_read defaults to false when omitted.
func (srv *taskService) Create(ctx context.Context, ownerID *int64, input usecase.CreateTaskInput) (*entity.Task, error) {
	isRead := false
	if input.IsRead != nil {
		isRead = *input.IsRead
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		IsRead:      isRead,
		OwnerID:     ownerID,
	}

	if err := srv.tasks.Create(ctx, task); err != nil {
		srv.logger.Error("Failed to create task", "error", err)

		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Task created", "taskID", task.ID)

	return task, nil
}

// List returns the caller's tasks, newest first.
func (srv *taskService) List(ctx context.Context, callerID int64) ([]*entity.Task, error) {
	tasks, err := srv.tasks.FindAllByOwner(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// Get fetches a task and enforces ownership.
func (srv *taskService) Get(ctx context.Context, callerID, taskID int64) (*entity.Task, error) {
	return srv.fetchOwned(ctx, callerID, taskID)
}

// Update applies a partial field set. Omitted fields keep their prior values;
// the owner is preserved and never reassigned here.
func (srv *taskService) Update(ctx context.Context, callerID, taskID int64, input usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := srv.fetchOwned(ctx, callerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.IsRead != nil {
		task.IsRead = *input.IsRead
	}

	if err := srv.tasks.Update(ctx, task); err != nil {
		// The row can vanish between the ownership check and the write.
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

// Delete removes the task after the ownership check.
func (srv *taskService) Delete(ctx context.Context, callerID, taskID int64) error {
	if _, err := srv.fetchOwned(ctx, callerID, taskID); err != nil {
		return err
	}

	if err := srv.tasks.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("task vanished during delete")
		}

		return errors.Wrap(err, "failed to delete task")
	}
	srv.logger.Debug("Task deleted", "taskID", taskID)

	return nil
}

// ToggleRead flips is_read to its logical negation and persists it.
func (srv *taskService) ToggleRead(ctx context.Context, callerID, taskID int64) (*entity.Task, error) {
	task, err := srv.fetchOwned(ctx, callerID, taskID)
	if err != nil {
		return nil, err
	}

	task.IsRead = !task.IsRead

	if err := srv.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task vanished during toggle")
		}

		return nil, errors.Wrap(err, "failed to toggle task read-state")
	}

	return task, nil
}

// fetchOwned loads a task and enforces the owner-scoped contract: absent →
// not found, present but not the caller's → forbidden. Existence is not
// secret; ownership is enforced only after confirming existence.
func (srv *taskService) fetchOwned(ctx context.Context, callerID, taskID int64) (*entity.Task, error) {
	task, err := srv.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	if !task.OwnedBy(callerID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller does not own task")
	}

	return task, nil
}
