package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "taskboard/internal/delivery/context"
	httpmiddleware "taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the same validator and error
// handler the real server uses, so handler tests observe final status codes
// and bodies.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

// withIdentity injects a caller identity the way the auth middleware would.
func withIdentity(userID int64, email string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, &entity.Identity{UserID: userID, Email: email})

			return next(c)
		}
	}
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("expected status %d, got %d with body %s", want, rec.Code, rec.Body.String())
	}
}

// --- Stub usecases ---

type stubAuthUsecase struct {
	registerFn func(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error)
	loginFn    func(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error)
	refreshFn  func(ctx context.Context, userID int64) (string, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthUsecase) Refresh(ctx context.Context, userID int64) (string, error) {
	return s.refreshFn(ctx, userID)
}

type stubTaskUsecase struct {
	createFn     func(ctx context.Context, ownerID *int64, input usecase.CreateTaskInput) (*entity.Task, error)
	listFn       func(ctx context.Context, callerID int64) ([]*entity.Task, error)
	getFn        func(ctx context.Context, callerID, taskID int64) (*entity.Task, error)
	updateFn     func(ctx context.Context, callerID, taskID int64, input usecase.UpdateTaskInput) (*entity.Task, error)
	deleteFn     func(ctx context.Context, callerID, taskID int64) error
	toggleReadFn func(ctx context.Context, callerID, taskID int64) (*entity.Task, error)
}

func (s *stubTaskUsecase) Create(ctx context.Context, ownerID *int64, input usecase.CreateTaskInput) (*entity.Task, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubTaskUsecase) List(ctx context.Context, callerID int64) ([]*entity.Task, error) {
	return s.listFn(ctx, callerID)
}

func (s *stubTaskUsecase) Get(ctx context.Context, callerID, taskID int64) (*entity.Task, error) {
	return s.getFn(ctx, callerID, taskID)
}

func (s *stubTaskUsecase) Update(ctx context.Context, callerID, taskID int64, input usecase.UpdateTaskInput) (*entity.Task, error) {
	return s.updateFn(ctx, callerID, taskID, input)
}

func (s *stubTaskUsecase) Delete(ctx context.Context, callerID, taskID int64) error {
	return s.deleteFn(ctx, callerID, taskID)
}

func (s *stubTaskUsecase) ToggleRead(ctx context.Context, callerID, taskID int64) (*entity.Task, error) {
	return s.toggleReadFn(ctx, callerID, taskID)
}

type stubUserUsecase struct {
	getMeFn func(ctx context.Context, userID int64) (*entity.User, error)
	listFn  func(ctx context.Context) ([]*entity.User, error)
}

func (s *stubUserUsecase) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	return s.getMeFn(ctx, userID)
}

func (s *stubUserUsecase) List(ctx context.Context) ([]*entity.User, error) {
	return s.listFn(ctx)
}
