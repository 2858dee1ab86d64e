package usecase

import (
	"context"

	"sitesnap/internal/domain/entity"
)

// LoginInput defines the data required for a seller to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
}

// SessionUsecase manages the authenticated session of the seller app.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.AuthUser, error)
	// Register creates the account. When the backend logs the new user in
	// straight away, the returned user is non-nil and the session is active.
	Register(ctx context.Context, input RegisterInput) (*entity.AuthUser, error)
	Logout(ctx context.Context) error
	// CurrentUser returns nil without error when nobody is logged in.
	CurrentUser(ctx context.Context) (*entity.AuthUser, error)
}
