package response

import (
	"net/http"

	deliverycontext "sitesnap/internal/delivery/context"
	domainerrors "sitesnap/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	domainerrors.Response
	Meta *MetaInfo `json:"meta,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func metaOf(c echo.Context) *MetaInfo {
	id := deliverycontext.RequestID(c.Request().Context())
	if id == "" {
		return nil
	}

	return &MetaInfo{RequestID: id}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    metaOf(c),
	})
}

// Error answers with appErr. Details are dropped for 5xx and auth errors.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	body := domainerrors.ToResponse(appErr)

	status := appErr.HTTPCode()
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		body.Error.Details = ""
	}

	return c.JSON(status, ErrorResponse{Response: body, Meta: metaOf(c)})
}

// PNG writes an image body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}
