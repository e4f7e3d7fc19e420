package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task handlers. Every route it serves
// sits behind the auth middleware.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTaskRequest struct {
	TaskTitle       string  `json:"task_title" validate:"required"`
	TaskDescription *string `json:"task_description"`
	IsRead          *bool   `json:"is_read"`
}

// updateTaskRequest carries a partial field set; absent fields stay nil.
type updateTaskRequest struct {
	TaskTitle       *string `json:"task_title"`
	TaskDescription *string `json:"task_description"`
	IsRead          *bool   `json:"is_read"`
}

// taskPayload is the task row as serialized to clients.
type taskPayload struct {
	TaskID          int64     `json:"task_id"`
	TaskTitle       string    `json:"task_title"`
	TaskDescription *string   `json:"task_description"`
	IsRead          bool      `json:"is_read"`
	UserID          *int64    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toTaskPayload(task *entity.Task) taskPayload {
	return taskPayload{
		TaskID:          task.ID,
		TaskTitle:       task.Title,
		TaskDescription: task.Description,
		IsRead:          task.IsRead,
		UserID:          task.OwnerID,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.uc.Create(c.Request().Context(), &identity.UserID, usecase.CreateTaskInput{
		Title:       req.TaskTitle,
		Description: req.TaskDescription,
		IsRead:      req.IsRead,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toTaskPayload(task))
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	tasks, err := h.uc.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]taskPayload, 0, len(tasks))
	for _, task := range tasks {
		payload = append(payload, toTaskPayload(task))
	}

	return c.JSON(http.StatusOK, payload)
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.uc.Get(c.Request().Context(), identity.UserID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTaskPayload(task))
}

// Update handles PUT /api/tasks/:id.
func (h *TaskHandler) Update(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.Update(c.Request().Context(), identity.UserID, taskID, usecase.UpdateTaskInput{
		Title:       req.TaskTitle,
		Description: req.TaskDescription,
		IsRead:      req.IsRead,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTaskPayload(task))
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), identity.UserID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleRead handles PATCH /api/tasks/:id/toggle-read.
func (h *TaskHandler) ToggleRead(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.uc.ToggleRead(c.Request().Context(), identity.UserID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTaskPayload(task))
}

// taskIDParam parses the :id path parameter.
func taskIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, validator.NewValidationError(validator.FieldError{
			Field:   "id",
			Message: "id must be an integer",
		})
	}

	return id, nil
}
