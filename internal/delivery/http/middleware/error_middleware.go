package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "cryofood/internal/delivery/context"
	"cryofood/internal/delivery/http/response"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
//
// Business failures (any AppError below 500) answer 200 with the failure
// envelope. Echo routing errors keep their status. Everything else is a
// storage or programming fault and answers 500 with the same envelope.
// Oversized bodies count as business failures.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("error", errors.StackTrace(err)),
		)
	} else {
		logger.Info("Request rejected",
			slog.String("path", c.Request().URL.Path),
			slog.String("code", errorCode(err)),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}
	if err := response.Failure(c, status); err != nil {
		logger.Error("Failed to write failure response", slog.String("error", err.Error()))
	}
}

func statusFor(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			return http.StatusOK
		}

		return http.StatusInternalServerError
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// An oversized body is a malformed request like any other.
		if httpErr.Code == http.StatusRequestEntityTooLarge {
			return http.StatusOK
		}

		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return http.StatusText(httpErr.Code)
	}

	return "UNKNOWN"
}
