package http

import (
	"errors"
	"log/slog"
	"net/http"

	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// fail maps use case errors to responses. Validation failures answer 400, unknown
// entities 404 and uniqueness or reference conflicts 409. Anything else is logged
// and answered with a generic 500.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return writeError(ctx, http.StatusConflict, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return writeError(ctx, http.StatusInternalServerError, internalErrorMessage)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return writeError(ctx, http.StatusBadRequest, message)
}

func writeError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

// ErrorHandler renders errors escaping the handlers, such as unknown routes or
// binding failures in the generated wrapper, in the API error format.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := internalErrorMessage

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "error", err)
			message = internalErrorMessage
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = writeError(ctx, status, message)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "write error response", "error", writeErr)
		}
	}
}
