package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/listing"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// UserService implements the admin-facing user management use cases.
type UserService struct {
	users   ports.UserRepository
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, stores ports.StoreRepository, ratings ports.RatingRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, stores: stores, ratings: ratings, logger: logger}
}

// Create registers a user on behalf of an admin. Unlike public signup, any of
// the three roles may be assigned.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (int64, error) {
	if !input.Role.Valid() {
		return 0, domain.NewValidationError("invalid role")
	}
	if err := domain.ValidateNewUser(input.Name, input.Email, input.Address, input.Password); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return 0, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Address:      input.Address,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user created by admin")
	return created.ID, nil
}

// List returns users matching the admin listing filters. The sort
// specification is validated against the Users surface allowlist before the
// repository is touched.
func (s *UserService) List(ctx context.Context, input ports.ListInput) ([]domain.User, error) {
	q, err := listing.Users.Build(input.Filters, input.SortBy, input.Order)
	if err != nil {
		return nil, err
	}
	return s.users.List(ctx, q)
}

// Dashboard returns the platform totals shown on the admin dashboard,
// computed fresh per request.
func (s *UserService) Dashboard(ctx context.Context) (*ports.DashboardCounts, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardCounts{TotalUsers: users, TotalStores: stores, TotalRatings: ratings}, nil
}
