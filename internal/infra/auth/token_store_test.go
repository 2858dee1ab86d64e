package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sitesnap/internal/domain/repository"
	"sitesnap/internal/domain/service"
	"sitesnap/internal/errors"
	mockRepo "sitesnap/internal/mocks/repository"
	mockSvc "sitesnap/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokenStore_MemoizesFirstRead(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(ctx, TokenKey).Return([]byte("opaque"), nil).Once()

	store := NewTokenStore(repo, nil, newDiscardLogger())

	for range 3 {
		token, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "opaque", token)
	}
}

func TestTokenStore_MissingToken(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(ctx, TokenKey).Return(nil, repository.ErrKeyNotFound).Once()

	token, err := NewTokenStore(repo, nil, newDiscardLogger()).Token(ctx)

	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestTokenStore_ReadError(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(ctx, TokenKey).Return(nil, errors.New("disk full"))

	_, err := NewTokenStore(repo, nil, newDiscardLogger()).Token(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read token")
}

func TestTokenStore_ExpiredTokenIsCleared(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockKeyValueRepository(t)
	inspector := mockSvc.NewMockTokenInspector(t)

	repo.EXPECT().Get(ctx, TokenKey).Return([]byte("expired.jwt.token"), nil).Once()
	inspector.EXPECT().Inspect("expired.jwt.token").
		Return(&service.TokenClaims{ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
	repo.EXPECT().Delete(ctx, TokenKey).Return(nil).Once()

	store := NewTokenStore(repo, inspector, newDiscardLogger())

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	// The memo now holds no token, so storage is not read again.
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestTokenStore_UnparseableTokenPassesThrough(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockKeyValueRepository(t)
	inspector := mockSvc.NewMockTokenInspector(t)

	repo.EXPECT().Get(ctx, TokenKey).Return([]byte("opaque"), nil).Once()
	inspector.EXPECT().Inspect("opaque").Return(nil, errors.New("not a jwt")).Once()

	token, err := NewTokenStore(repo, inspector, newDiscardLogger()).Token(ctx)

	require.NoError(t, err)
	assert.Equal(t, "opaque", token)
}

func TestTokenStore_SetAndClear(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockKeyValueRepository(t)
	repo.EXPECT().Set(ctx, TokenKey, []byte("fresh")).Return(nil).Once()
	repo.EXPECT().Delete(mock.Anything, TokenKey).Return(nil).Once()

	store := NewTokenStore(repo, nil, newDiscardLogger())

	require.NoError(t, store.Set(ctx, "fresh"))
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)

	require.NoError(t, store.Clear(ctx))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}
