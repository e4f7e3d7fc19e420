package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskEcho(uc usecase.TaskUsecase) *echo.Echo {
	e := newTestEcho()
	h := NewTaskHandler(uc, discardLogger())

	g := e.Group("/api/tasks")
	g.Use(withIdentity(1, "alice@example.com"))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.PATCH("/:id/toggle-read", h.ToggleRead)

	return e
}

func sampleTask(id int64, ownerID int64) *entity.Task {
	return &entity.Task{
		ID:        id,
		Title:     "sample",
		IsRead:    false,
		OwnerID:   &ownerID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestTaskHandler_Create_Success(t *testing.T) {
	var gotOwner *int64
	var gotInput usecase.CreateTaskInput
	uc := &stubTaskUsecase{
		createFn: func(_ context.Context, ownerID *int64, input usecase.CreateTaskInput) (*entity.Task, error) {
			gotOwner = ownerID
			gotInput = input
			task := sampleTask(10, *ownerID)
			task.Title = input.Title
			task.Description = input.Description

			return task, nil
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodPost, "/api/tasks",
		`{"task_title":"buy milk","task_description":"two liters"}`)

	requireStatus(t, rec, http.StatusCreated)
	require.NotNil(t, gotOwner)
	assert.Equal(t, int64(1), *gotOwner)
	assert.Equal(t, "buy milk", gotInput.Title)
	assert.Nil(t, gotInput.IsRead)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(10), body["task_id"])
	assert.Equal(t, "buy milk", body["task_title"])
	assert.Equal(t, "two liters", body["task_description"])
	assert.Equal(t, false, body["is_read"])
	assert.Equal(t, float64(1), body["user_id"])
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	uc := &stubTaskUsecase{}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodPost, "/api/tasks", `{"task_description":"no title"}`)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, rec.Body.String(), "task_title is required")
}

func TestTaskHandler_List_Success(t *testing.T) {
	uc := &stubTaskUsecase{
		listFn: func(_ context.Context, callerID int64) ([]*entity.Task, error) {
			assert.Equal(t, int64(1), callerID)

			return []*entity.Task{sampleTask(2, callerID), sampleTask(1, callerID)}, nil
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodGet, "/api/tasks", "")

	requireStatus(t, rec, http.StatusOK)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, float64(2), body[0]["task_id"])
	assert.Equal(t, float64(1), body[1]["task_id"])
}

func TestTaskHandler_List_Empty(t *testing.T) {
	uc := &stubTaskUsecase{
		listFn: func(_ context.Context, _ int64) ([]*entity.Task, error) {
			return nil, nil
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodGet, "/api/tasks", "")

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTaskHandler_Get_NotFound(t *testing.T) {
	uc := &stubTaskUsecase{
		getFn: func(_ context.Context, _, _ int64) (*entity.Task, error) {
			return nil, domainerrors.ErrTaskNotFound
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodGet, "/api/tasks/42", "")

	requireStatus(t, rec, http.StatusNotFound)
	assert.JSONEq(t, `{"message":"Task not found"}`, rec.Body.String())
}

func TestTaskHandler_Get_Forbidden(t *testing.T) {
	uc := &stubTaskUsecase{
		getFn: func(_ context.Context, _, _ int64) (*entity.Task, error) {
			return nil, domainerrors.ErrForbidden
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodGet, "/api/tasks/42", "")

	requireStatus(t, rec, http.StatusForbidden)
	assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())
}

func TestTaskHandler_Get_NonNumericID(t *testing.T) {
	uc := &stubTaskUsecase{
		getFn: func(_ context.Context, _, _ int64) (*entity.Task, error) {
			t.Fatal("usecase must not be called for a bad id")

			return nil, nil
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodGet, "/api/tasks/abc", "")

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, rec.Body.String(), "id must be an integer")
}

func TestTaskHandler_Update_PartialBody(t *testing.T) {
	var gotInput usecase.UpdateTaskInput
	uc := &stubTaskUsecase{
		updateFn: func(_ context.Context, callerID, taskID int64, input usecase.UpdateTaskInput) (*entity.Task, error) {
			assert.Equal(t, int64(1), callerID)
			assert.Equal(t, int64(5), taskID)
			gotInput = input
			task := sampleTask(taskID, callerID)
			task.IsRead = true

			return task, nil
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodPut, "/api/tasks/5", `{"is_read":true}`)

	requireStatus(t, rec, http.StatusOK)
	assert.Nil(t, gotInput.Title)
	assert.Nil(t, gotInput.Description)
	require.NotNil(t, gotInput.IsRead)
	assert.True(t, *gotInput.IsRead)
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	uc := &stubTaskUsecase{
		deleteFn: func(_ context.Context, callerID, taskID int64) error {
			assert.Equal(t, int64(1), callerID)
			assert.Equal(t, int64(5), taskID)

			return nil
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodDelete, "/api/tasks/5", "")

	requireStatus(t, rec, http.StatusNoContent)
	assert.Empty(t, rec.Body.String())
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	uc := &stubTaskUsecase{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return domainerrors.ErrTaskNotFound
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodDelete, "/api/tasks/5", "")

	requireStatus(t, rec, http.StatusNotFound)
}

func TestTaskHandler_ToggleRead_Success(t *testing.T) {
	uc := &stubTaskUsecase{
		toggleReadFn: func(_ context.Context, callerID, taskID int64) (*entity.Task, error) {
			task := sampleTask(taskID, callerID)
			task.IsRead = true

			return task, nil
		},
	}
	e := newTaskEcho(uc)

	rec := doJSON(e, http.MethodPatch, "/api/tasks/5/toggle-read", "")

	requireStatus(t, rec, http.StatusOK)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["is_read"])
}
