// Package response writes the JSON envelope every endpoint answers with:
// {"success": bool, "data" | "error": ..., "meta": {"request_id": ...}}.
package response

import (
	"net/http"

	deliverycontext "servicedesk/internal/delivery/context"
	domainerrors "servicedesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    MetaInfo   `json:"meta"`
}

// ErrorInfo is the error half of the envelope. Code is machine readable,
// e.g. "COMPLAINT_NOT_PENDING".
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Message is the data of endpoints that only confirm an action.
type Message struct {
	Message string `json:"message"`
}

func write(c echo.Context, status int, body envelope) error {
	body.Meta.RequestID = deliverycontext.GetRequestID(c)

	return c.JSON(status, body)
}

func Success(c echo.Context, status int, data any) error {
	return write(c, status, envelope{Success: true, Data: data})
}

// Confirm answers 200 with a confirmation message.
func Confirm(c echo.Context, message string) error {
	return Success(c, http.StatusOK, Message{Message: message})
}

// Error writes a failure. Details are dropped for 401, 403 and 5xx answers.
func Error(c echo.Context, status int, code, message string, details any) error {
	switch {
	case status >= http.StatusInternalServerError,
		status == http.StatusUnauthorized,
		status == http.StatusForbidden:
		details = nil
	}

	return write(c, status, envelope{Error: &ErrorInfo{Code: code, Message: message, Details: details}})
}

func BadRequest(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message, nil)
}

// BindingError reports a body or query that could not be decoded.
func BindingError(c echo.Context, code, message string) error {
	return BadRequest(c, code, message)
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, nil)
}

func Forbidden(c echo.Context, code, message string) error {
	return Error(c, http.StatusForbidden, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// HandleAppError answers client-side domain errors directly and hands
// everything else to the central error handler, which logs it.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
