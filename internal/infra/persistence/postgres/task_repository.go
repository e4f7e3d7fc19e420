package postgres

import (
	"context"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByID retrieves a single task by its unique ID.
func (repo *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("task_id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// FindAllByOwner retrieves every task owned by the given user, newest first.
func (repo *taskRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("task_id DESC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update persists the task's mutable fields, keyed by its ID. A zero
// RowsAffected means the row vanished (concurrent delete); callers map
// that to a not-found response.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	res := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("task_id = ?", task.ID).
		Updates(map[string]any{
			"task_title":       task.Title,
			"task_description": task.Description,
			"is_read":          task.IsRead,
		})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update task")
	}
	if res.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	// Re-read so the caller sees the store-generated updated_at.
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).Where("task_id = ?", task.ID).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrTaskNotFound
		}

		return errors.Wrap(err, "failed to reload task after update")
	}
	task.UpdatedAt = taskM.UpdatedAt
	task.CreatedAt = taskM.CreatedAt

	return nil
}

// Delete removes a task by ID. A zero RowsAffected means the row was
// already gone, which callers report as not found.
func (repo *taskRepository) Delete(ctx context.Context, id int64) error {
	res := repo.db.WithContext(ctx).
		Where("task_id = ?", id).
		Delete(&model.TaskModel{})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete task")
	}
	if res.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		IsRead:      data.IsRead,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		IsRead:      data.IsRead,
		OwnerID:     data.OwnerID,
	}
}
