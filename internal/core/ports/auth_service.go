package ports

import (
	"context"

	"github.com/ratemart/store-rating-system/internal/core/domain"
)

// SignupInput carries the fields accepted by public signup.
type SignupInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     domain.Role
}

// AuthResult is returned by signup and login: a bearer token plus the public
// projection of the authenticated user.
type AuthResult struct {
	Token string             `json:"token"`
	User  *domain.PublicUser `json:"user"`
}

// AuthService defines credential issuance and verification use cases.
type AuthService interface {
	// Signup creates an account. Public signup restricts Role to
	// {user, store_owner}.
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	UpdatePassword(ctx context.Context, userID int64, newPassword string) error
}

// LoginLimiter throttles repeated failed login attempts per email.
type LoginLimiter interface {
	// TooManyFailures reports whether the email has exceeded the failure
	// budget inside the current window.
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
