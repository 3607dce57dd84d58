package ports

import (
	"context"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/listing"
)

// UserRepository defines the persistence interface for user accounts.
// It is the only component that ever touches password hashes.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	List(ctx context.Context, q listing.Query) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
