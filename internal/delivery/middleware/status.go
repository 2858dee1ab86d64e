package middleware

import (
	"net/http"

	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusOf is the status the error handler will answer err with.
func statusOf(err error) int {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	if httpErr, ok := errors.Find[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
