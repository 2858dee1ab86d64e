package impl

import (
	"context"
	"log/slog"

	deliverycontext "sitesnap/internal/delivery/context"
	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/domain/service"
	"sitesnap/internal/errors"
	"sitesnap/internal/infra/api"
	"sitesnap/internal/infra/api/translator"
	"sitesnap/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	backend Backend
	tokens  service.TokenStore
	session *Session
	logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	backend Backend,
	tokens service.TokenStore,
	session *Session,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		backend: backend,
		tokens:  tokens,
		session: session,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges credentials for a token and starts a fresh identity cache.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.AuthUser, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	resp, err := srv.backend.Login(ctx, api.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to log in")
	}
	if resp.Token == "" {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails("login response carried no token")
	}

	return srv.startSession(ctx, resp.Token, translator.MapUser(&resp.User))
}

// Register creates the account and, when the backend hands back a token,
// logs the new user in.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.AuthUser, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	resp, err := srv.backend.Register(ctx, api.Credentials{
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register")
	}

	srv.log(ctx).Info("Registered account", slog.String("email", input.Email))

	if resp == nil || resp.Token == "" {
		return nil, nil
	}

	return srv.startSession(ctx, resp.Token, translator.MapUser(&resp.User))
}

func (srv *sessionService) startSession(ctx context.Context, token string, user *entity.AuthUser) (*entity.AuthUser, error) {
	if err := srv.tokens.Set(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store token")
	}
	srv.session.Reset()

	if user != nil && user.ID != "" {
		return user, nil
	}

	rec, err := srv.session.LoadUser(ctx, true)
	if err != nil {
		return nil, err
	}

	return translator.MapUser(rec), nil
}

// Logout forgets the token and everything cached for it.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.session.Reset()

	return errors.Wrap(srv.tokens.Clear(ctx), "failed to clear token")
}

// CurrentUser returns nil when there is no usable token. A token the
// backend rejects is cleared before the error is returned.
func (srv *sessionService) CurrentUser(ctx context.Context) (*entity.AuthUser, error) {
	token, err := srv.tokens.Token(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token")
	}
	if token == "" {
		return nil, nil
	}

	rec, err := srv.session.LoadUser(ctx, true)
	if err != nil {
		srv.log(ctx).Warn("Dropping session after failed user lookup", slog.Any("error", err))
		srv.session.Reset()
		if clearErr := srv.tokens.Clear(ctx); clearErr != nil {
			srv.log(ctx).Error("Failed to clear token", slog.Any("error", clearErr))
		}

		return nil, err
	}

	return translator.MapUser(rec), nil
}
