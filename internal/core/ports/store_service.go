package ports

import "context"

// CreateStoreInput carries the fields for store creation. OwnerID is taken
// from the request body on the admin path and from the authenticated caller
// on the store-owner path.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID int64
}

// StoreService defines store creation and the three listing surfaces.
type StoreService interface {
	// Create registers a store for an explicit owner; the owner must exist
	// and hold the store_owner role.
	Create(ctx context.Context, input CreateStoreInput) error
	// List returns all stores with their mean rating (admin surface).
	List(ctx context.Context, input ListInput) ([]StoreWithRating, error)
	// ListForOwner returns the caller's own stores with their mean rating.
	ListForOwner(ctx context.Context, ownerID int64, input ListInput) ([]StoreWithRating, error)
	// ListForShopper returns stores with the overall mean plus the caller's
	// own rating per store.
	ListForShopper(ctx context.Context, userID int64, input ListInput) ([]ShopperStore, error)
}
