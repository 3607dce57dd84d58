package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/ports"
	"github.com/ratemart/store-rating-system/internal/core/token"
)

// bcryptCost matches the cost factor used since the first deployment;
// existing hashes verify regardless of the cost they were created with.
const bcryptCost = 10

// AuthService implements signup, login and password updates.
type AuthService struct {
	users   ports.UserRepository
	tokens  *token.Service
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Service, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, logger: logger}
}

// signupRoles is the role set assignable through public signup. Admin
// accounts can only be created by another admin.
var signupRoles = map[domain.Role]struct{}{
	domain.RoleUser:       {},
	domain.RoleStoreOwner: {},
}

// Signup validates the input, hashes the password and creates the account.
// All validation happens before any storage access; the plaintext password is
// never persisted or logged.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if _, ok := signupRoles[input.Role]; !ok {
		return nil, domain.NewValidationError("invalid role")
	}
	if err := domain.ValidateNewUser(input.Name, input.Email, input.Address, input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Address:      input.Address,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
	if err != nil {
		return nil, err
	}

	signed, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", created.ID).Msg("failed to issue token after signup")
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user signed up")
	return &ports.AuthResult{Token: signed, User: created.Public()}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyFailures(ctx, email)
		if err != nil {
			// Limiter outages must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login failures")
		}
	}

	signed, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{Token: signed, User: user.Public()}, nil
}

// UpdatePassword re-validates the password shape, re-hashes and overwrites in
// place. The caller's identity has already been verified by the access gate.
func (s *AuthService) UpdatePassword(ctx context.Context, userID int64, newPassword string) error {
	if ok, msg := domain.ValidatePassword(newPassword); !ok {
		return domain.NewValidationError(msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", userID).Msg("password updated")
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}
