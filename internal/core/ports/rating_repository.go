package ports

import (
	"context"
	"time"
)

// OwnerRating is a rating joined with the rated store's name, as shown on the
// store-owner dashboard.
type OwnerRating struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	UserID    int64     `json:"user_id"`
	Value     int       `json:"rating"`
	StoreName string    `json:"store_name"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingRepository defines the persistence interface for ratings.
type RatingRepository interface {
	// Upsert atomically creates the rating for (userID, storeID) or
	// overwrites its value — a single conditional write at the storage
	// boundary, never a read-then-write pair.
	Upsert(ctx context.Context, userID, storeID int64, value int) error
	// AverageForStore computes the mean rating fresh from the rows; nil when
	// the store has no ratings.
	AverageForStore(ctx context.Context, storeID int64) (*float64, error)
	// ListForOwner returns all ratings on the owner's stores, newest first.
	ListForOwner(ctx context.Context, ownerID int64) ([]OwnerRating, error)
	Count(ctx context.Context) (int64, error)
}
