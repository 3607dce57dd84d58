package ports

import "context"

// RatingService defines rating submission and aggregation use cases.
type RatingService interface {
	// Submit creates or overwrites the caller's rating for a store and
	// returns the store's fresh mean rating (nil is impossible here since
	// the submitted rating itself counts).
	Submit(ctx context.Context, userID, storeID int64, value int) (*float64, error)
	// ListForOwner returns all ratings received by the owner's stores,
	// newest first.
	ListForOwner(ctx context.Context, ownerID int64) ([]OwnerRating, error)
}
