package impl

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/domain/service"
	"sitesnap/internal/infra/api"
	"sitesnap/internal/infra/auth"
	"sitesnap/internal/infra/resilience"
	"sitesnap/internal/infra/storage"
	"sitesnap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	api     *fakeAPI
	tokens  service.TokenStore
	session *Session
	service usecase.SessionUsecase
}

func createTestSessionService(t *testing.T, fake *fakeAPI) sessionFixtures {
	t.Helper()

	bucket, err := storage.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	tokens := auth.NewTokenStore(storage.NewBlobStore(bucket, newDiscardLogger()), nil, newDiscardLogger())

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	client := api.NewClient(api.Config{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Breaker: resilience.DefaultConfig("session-test"),
	}, tokens, newDiscardLogger())

	session := NewSession(client, newDiscardLogger())

	return sessionFixtures{
		api:     fake,
		tokens:  tokens,
		session: session,
		service: NewSessionService(client, tokens, session, newDiscardLogger()),
	}
}

func TestSessionService_Login_StoresToken(t *testing.T) {
	fx := createTestSessionService(t, newFakeAPI().withSeller("s1", "Ama"))
	ctx := context.Background()

	user, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ama@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "s1", user.SellerID)

	token, err := fx.tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-login", token)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t, newFakeAPI())

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "ama@example.com", Password: "nope"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_ValidationFails(t *testing.T) {
	fx := createTestSessionService(t, newFakeAPI())

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "not-an-email", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, fx.api.callCount("POST /api/auth/login"))
}

func TestSessionService_Login_MissingToken(t *testing.T) {
	fake := newFakeAPI()
	fake.loginToken = ""
	fx := createTestSessionService(t, fake)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "ama@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Register(t *testing.T) {
	t.Run("without token leaves the user logged out", func(t *testing.T) {
		fx := createTestSessionService(t, newFakeAPI())
		ctx := context.Background()

		user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "kofi@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Nil(t, user)

		token, err := fx.tokens.Token(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("with token starts a session", func(t *testing.T) {
		fake := newFakeAPI()
		fake.registerToken = "tok-register"
		fx := createTestSessionService(t, fake)
		ctx := context.Background()

		user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "kofi@example.com", Password: "secret1", Phone: "+233"})

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "kofi@example.com", user.Email)
		assert.Equal(t, "+233", fake.body("POST /api/auth/register")["phone"])

		token, err := fx.tokens.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-register", token)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		fx := createTestSessionService(t, newFakeAPI())

		_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Email: "kofi@example.com", Password: "123"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestSessionService_CurrentUser_NoToken(t *testing.T) {
	fx := createTestSessionService(t, newFakeAPI())

	user, err := fx.service.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, fx.api.callCount("GET /api/auth/me"))
}

func TestSessionService_CurrentUser_RejectedTokenIsCleared(t *testing.T) {
	fake := newFakeAPI()
	fx := createTestSessionService(t, fake)
	ctx := context.Background()

	require.NoError(t, fx.tokens.Set(ctx, "tok-stale"))
	fake.rejectMe = true

	user, err := fx.service.CurrentUser(ctx)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	token, err := fx.tokens.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSessionService_Logout_ResetsCaches(t *testing.T) {
	fx := createTestSessionService(t, newFakeAPI().withSeller("s1", "Ama"))
	ctx := context.Background()

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ama@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = fx.session.FetchSellerRecord(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx))

	token, err := fx.tokens.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	user, err := fx.service.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
