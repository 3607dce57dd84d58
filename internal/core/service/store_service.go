package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/listing"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// StoreService implements store creation and the three listing surfaces.
type StoreService struct {
	stores ports.StoreRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, users ports.UserRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, users: users, logger: logger}
}

// Create validates the input and registers a store. The referenced owner must
// exist and hold the store_owner role; both checks run before the insert.
func (s *StoreService) Create(ctx context.Context, input ports.CreateStoreInput) error {
	if err := domain.ValidateNewStore(input.Name, input.Email, input.Address); err != nil {
		return err
	}

	owner, err := s.users.FindByID(ctx, input.OwnerID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrInvalidOwner
		}
		return err
	}
	if owner.Role != domain.RoleStoreOwner {
		return domain.ErrInvalidOwner
	}

	created, err := s.stores.Create(ctx, &domain.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("store_id", created.ID).Int64("owner_id", created.OwnerID).Msg("store created")
	return nil
}

// List returns all stores with their mean rating (admin surface).
func (s *StoreService) List(ctx context.Context, input ports.ListInput) ([]ports.StoreWithRating, error) {
	q, err := listing.Stores.Build(input.Filters, input.SortBy, input.Order)
	if err != nil {
		return nil, err
	}
	return s.stores.ListWithRating(ctx, q, nil)
}

// ListForOwner returns the caller's stores with their mean rating.
func (s *StoreService) ListForOwner(ctx context.Context, ownerID int64, input ports.ListInput) ([]ports.StoreWithRating, error) {
	q, err := listing.Stores.Build(input.Filters, input.SortBy, input.Order)
	if err != nil {
		return nil, err
	}
	return s.stores.ListWithRating(ctx, q, &ownerID)
}

// ListForShopper returns stores with the overall mean plus the caller's own
// rating for each store.
func (s *StoreService) ListForShopper(ctx context.Context, userID int64, input ports.ListInput) ([]ports.ShopperStore, error) {
	q, err := listing.ShopperStores.Build(input.Filters, input.SortBy, input.Order)
	if err != nil {
		return nil, err
	}
	return s.stores.ListForShopper(ctx, q, userID)
}
