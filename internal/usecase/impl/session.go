package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "sitesnap/internal/delivery/context"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/errors"
	"sitesnap/internal/infra/api/model"
	"sitesnap/internal/infra/api/translator"
)

// placeholderEmail is used for a new business when the account has no email.
const placeholderEmail = "no-reply@sitesnap.app"

// Session resolves "who is the current seller" once and memoizes the user,
// seller and business records until invalidated. The lock only guards the
// cached fields; it is never held while a request is in flight.
type Session struct {
	backend Backend
	logger  *slog.Logger

	mu       sync.Mutex
	user     *model.UserRecord
	seller   *model.SellerRecord
	business *model.BusinessRecord
}

// NewSession creates an empty identity cache over backend.
func NewSession(backend Backend, logger *slog.Logger) *Session {
	return &Session{
		backend: backend,
		logger:  logger,
	}
}

func (s *Session) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// LoadUser returns the authenticated user, fetching it when not cached or
// when refresh is set.
func (s *Session) LoadUser(ctx context.Context, refresh bool) (*model.UserRecord, error) {
	if !refresh {
		s.mu.Lock()
		cached := s.user
		s.mu.Unlock()

		if cached != nil {
			return cached, nil
		}
	}

	user, err := s.backend.Me(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	if user == nil || user.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no user for session")
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return user, nil
}

// FetchSellerRecord returns the seller linked to the user, or nil when the
// user has no seller profile yet.
func (s *Session) FetchSellerRecord(ctx context.Context) (*model.SellerRecord, error) {
	user, err := s.LoadUser(ctx, false)
	if err != nil {
		return nil, err
	}

	sellerID := translator.ExtractID(user.SellerID)
	if sellerID == "" {
		s.mu.Lock()
		s.seller = nil
		s.business = nil
		s.mu.Unlock()

		return nil, nil
	}

	s.mu.Lock()
	cached := s.seller
	s.mu.Unlock()

	if cached != nil && cached.ID == sellerID {
		return cached, nil
	}

	seller, err := s.backend.GetSeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			s.log(ctx).Warn("[Session] Seller reference points at a missing record", slog.String("seller_id", sellerID))
			s.Invalidate()

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to fetch seller")
	}

	s.mu.Lock()
	s.seller = seller
	s.mu.Unlock()

	return seller, nil
}

// FetchBusinessRecord returns the business of the current seller, or nil
// when there is no seller or no business yet.
func (s *Session) FetchBusinessRecord(ctx context.Context) (*model.BusinessRecord, error) {
	seller, err := s.FetchSellerRecord(ctx)
	if err != nil || seller == nil {
		return nil, err
	}

	s.mu.Lock()
	cached := s.business
	s.mu.Unlock()

	if cached != nil && translator.ExtractID(cached.SellerID) == seller.ID {
		return cached, nil
	}

	businesses, err := s.backend.BusinessesBySeller(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch business")
	}

	var business *model.BusinessRecord
	if len(businesses) > 0 {
		business = &businesses[0]
	}

	s.mu.Lock()
	s.business = business
	s.mu.Unlock()

	return business, nil
}

// EnsureBusinessForSeller returns the seller's business, creating one with
// defaults when none exists.
func (s *Session) EnsureBusinessForSeller(ctx context.Context) (*model.BusinessRecord, error) {
	business, err := s.FetchBusinessRecord(ctx)
	if err != nil {
		return nil, err
	}
	if business != nil {
		return business, nil
	}

	seller, err := s.FetchSellerRecord(ctx)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.Wrap(domainerrors.ErrSellerRequired, "ensure business")
	}

	email := placeholderEmail
	if user, err := s.LoadUser(ctx, false); err == nil && user.Email != "" {
		email = user.Email
	}

	created, err := s.backend.CreateBusiness(ctx, translator.NewBusinessPayload(seller.ID, seller.Name, email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	s.log(ctx).Info("[Session] Created business for seller", slog.String("seller_id", seller.ID))

	s.mu.Lock()
	s.business = created
	s.mu.Unlock()

	return created, nil
}

// SellerID returns the current seller id, failing with ErrSellerRequired
// when the user has no seller profile.
func (s *Session) SellerID(ctx context.Context) (string, error) {
	seller, err := s.FetchSellerRecord(ctx)
	if err != nil {
		return "", err
	}
	if seller == nil {
		return "", domainerrors.ErrSellerRequired
	}

	return seller.ID, nil
}

// Invalidate drops the cached seller and business so the next read goes to
// the backend. The user stays cached.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seller = nil
	s.business = nil
}

// Reset drops everything, including the user.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.seller = nil
	s.business = nil
}
