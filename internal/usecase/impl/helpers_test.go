package impl

import (
	"io"
	"log/slog"

	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/errors"
	"cryofood/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var adminCred = usecase.Credential{Identifier: "admin", Secret: "admin"}

// errorCode returns the AppError code carried by err, or "" when there is none.
func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}
