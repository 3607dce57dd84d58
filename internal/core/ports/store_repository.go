package ports

import (
	"context"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/listing"
)

// StoreWithRating is a store row projected with its mean rating. The average
// is nil when the store has no ratings yet, which serializes as JSON null —
// deliberately distinguishable from a real 0-star score.
type StoreWithRating struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address,omitempty"`
	OwnerID       int64    `json:"owner_id"`
	AverageRating *float64 `json:"average_rating"`
}

// ShopperStore is the end-user view of a store: the overall mean plus the
// requesting user's own rating (nil when they have not rated it).
type ShopperStore struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address,omitempty"`
	OverallRating *float64 `json:"overall_rating"`
	UserRating    *int     `json:"user_rating"`
}

// StoreRepository defines the persistence interface for stores and their
// rating projections.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	// ListWithRating returns stores with their mean rating. When ownerID is
	// non-nil the result is scoped to that owner's stores.
	ListWithRating(ctx context.Context, q listing.Query, ownerID *int64) ([]StoreWithRating, error)
	// ListForShopper returns stores with the overall mean and the given
	// user's own rating per store.
	ListForShopper(ctx context.Context, q listing.Query, userID int64) ([]ShopperStore, error)
	Count(ctx context.Context) (int64, error)
}
