package ports

import (
	"context"

	"github.com/ratemart/store-rating-system/internal/core/domain"
)

// CreateUserInput carries the fields for admin-initiated user creation, which
// unlike public signup may assign any of the three roles.
type CreateUserInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     domain.Role
}

// ListInput is the raw filter/sort specification as received from the query
// string. Validation against the surface allowlists happens in the service
// layer, before any storage access.
type ListInput struct {
	Filters map[string]string
	SortBy  string
	Order   string
}

// UserSummary is the admin listing projection of a user.
type UserSummary struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address,omitempty"`
	Role      domain.Role `json:"role"`
	CreatedAt string      `json:"created_at"`
}

// DashboardCounts are the admin dashboard totals.
type DashboardCounts struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

// UserService defines the admin-facing user management use cases.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (int64, error)
	List(ctx context.Context, input ListInput) ([]domain.User, error)
	Dashboard(ctx context.Context) (*DashboardCounts, error)
}
