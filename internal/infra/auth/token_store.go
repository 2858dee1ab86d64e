package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sitesnap/internal/domain/repository"
	"sitesnap/internal/domain/service"
	"sitesnap/internal/errors"
)

// TokenKey is the storage key of the bearer token.
const TokenKey = "siteSnap.authToken"

// tokenStore keeps the bearer token in the key-value store with an in-memory
// memo so that every request does not hit storage.
type tokenStore struct {
	repo      repository.KeyValueRepository
	inspector service.TokenInspector
	logger    *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	memo   string
	loaded bool
}

// NewTokenStore creates the token store. A nil inspector skips expiry checks.
func NewTokenStore(repo repository.KeyValueRepository, inspector service.TokenInspector, logger *slog.Logger) service.TokenStore {
	return &tokenStore{
		repo:      repo,
		inspector: inspector,
		logger:    logger,
		now:       time.Now,
	}
}

// Token returns the stored token. A token whose exp has passed is cleared and
// reported as absent. Tokens that are not JWTs are passed through.
func (s *tokenStore) Token(ctx context.Context) (string, error) {
	token, err := s.load(ctx)
	if err != nil || token == "" {
		return "", err
	}

	if s.inspector == nil {
		return token, nil
	}

	claims, err := s.inspector.Inspect(token)
	if err != nil {
		return token, nil
	}

	if claims.Expired(s.now()) {
		s.logger.Info("[TokenStore] Stored token expired, clearing",
			slog.Time("expires_at", claims.ExpiresAt),
		)
		if err := s.Clear(ctx); err != nil {
			return "", err
		}

		return "", nil
	}

	return token, nil
}

func (s *tokenStore) load(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.loaded {
		token := s.memo
		s.mu.Unlock()

		return token, nil
	}
	s.mu.Unlock()

	data, err := s.repo.Get(ctx, TokenKey)
	switch {
	case errors.Is(err, repository.ErrKeyNotFound):
		data = nil
	case err != nil:
		return "", errors.Wrap(err, "failed to read token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.memo = string(data)
		s.loaded = true
	}

	return s.memo, nil
}

// Set stores a new token.
func (s *tokenStore) Set(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return errors.Wrap(err, "failed to store token")
	}

	s.mu.Lock()
	s.memo = token
	s.loaded = true
	s.mu.Unlock()

	return nil
}

// Clear forgets the token.
func (s *tokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.memo = ""
	s.loaded = true
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		return errors.Wrap(err, "failed to clear token")
	}

	return nil
}
