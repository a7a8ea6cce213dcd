package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"servicedesk/internal/delivery/api/response"
	deliverycontext "servicedesk/internal/delivery/context"
	domainerrors "servicedesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware is echo's HTTPErrorHandler. It maps domain errors to
// their status and code. Errors it does not recognize become a generic 500.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type failure struct {
	status  int
	code    string
	message string
	details any
}

func classify(err error) failure {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		f := failure{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message()}
		if d := appErr.Details(); d != "" {
			f.details = d
		}

		return f
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		return failure{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	return failure{status: http.StatusInternalServerError, code: "INTERNAL_ERROR", message: internalErrorMessage}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f := classify(err)
	if f.status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("code", f.code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
		)
	}

	_ = response.Error(c, f.status, f.code, f.message, f.details)
}
