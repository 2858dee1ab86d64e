package errors

import (
	"net/http"
	"testing"

	"sitesnap/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails("name is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "name is required", err.Details())
	assert.Contains(t, err.Error(), "name is required")
}

func TestBaseError_WrapMessageKeepsSentinel(t *testing.T) {
	err := ErrSellerRequired.WrapMessage("add category")

	assert.True(t, errors.Is(err, ErrSellerRequired))
	assert.Equal(t, "Please complete seller details first", UserMessage(err))
}

func TestAPIError_MessageFallsBackToGeneric(t *testing.T) {
	withMessage := NewAPIError(http.StatusBadRequest, "Price must be positive", http.MethodPost, "/api/products")
	withoutMessage := NewAPIError(http.StatusBadGateway, "", http.MethodGet, "/api/products")

	assert.Equal(t, "Price must be positive", withMessage.Message())
	assert.Equal(t, genericServerMessage, withoutMessage.Message())
	assert.Equal(t, "SERVER_ERROR", withoutMessage.ErrorCode())
}

func TestAPIError_MatchesSessionAndNotFoundSentinels(t *testing.T) {
	unauthorized := errors.Wrap(NewAPIError(http.StatusUnauthorized, "", http.MethodGet, "/api/auth/me"), "load user")
	missing := NewAPIError(http.StatusNotFound, "", http.MethodGet, "/api/sellers/s1")

	assert.True(t, errors.Is(unauthorized, ErrUnauthenticated))
	assert.True(t, errors.Is(missing, ErrNotFound))
	assert.False(t, errors.Is(missing, ErrUnauthenticated))
}

func TestUserMessage_UnknownError(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, genericServerMessage, UserMessage(errors.New("boom")))
}

func TestToResponse(t *testing.T) {
	resp := ToResponse(ErrUnsupported.WithDetails("import"))

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotImplemented, resp.Code)
	assert.Equal(t, "UNSUPPORTED_OPERATION", resp.Error.Code)
	assert.Equal(t, "import", resp.Error.Details)
}
