package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"taskboard/internal/delivery/http/response"
	"taskboard/internal/delivery/http/validator"
	domainerrors "taskboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Validation
// failures produce an errors array; everything else a single message body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Request validation failures list every failed field
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		m.writeJSON(c, http.StatusBadRequest, response.ValidationBody{Errors: validationErr.Fields})

		return
	}

	// Domain errors carry their own status code and client-safe message
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeJSON(c, appErr.HTTPCode(), response.ErrorBody{Message: appErr.Message()})

		return
	}

	// Echo's own errors (404 route not found, 405, body too large, ...)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeJSON(c, httpErr.Code, response.ErrorBody{Message: fmt.Sprintf("%v", httpErr.Message)})

		return
	}

	// Anything else is unexpected: log it, never leak it
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	m.writeJSON(c, http.StatusInternalServerError, response.ErrorBody{Message: "Internal server error"})
}

func (m *ErrorMiddleware) writeJSON(c echo.Context, code int, body any) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}

	if err != nil {
		m.logger.Error("Failed to write error response", "error", err.Error())
	}
}
