package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// RatingService implements rating submission and on-read aggregation.
type RatingService struct {
	ratings ports.RatingRepository
	logger  zerolog.Logger
}

func NewRatingService(ratings ports.RatingRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, logger: logger}
}

// Submit creates or overwrites the caller's rating for the store and returns
// the fresh mean. Resubmission is an idempotent overwrite: the upsert is a
// single conditional write keyed on the (user_id, store_id) uniqueness
// constraint, so concurrent submissions can never produce duplicate rows.
func (s *RatingService) Submit(ctx context.Context, userID, storeID int64, value int) (*float64, error) {
	if err := domain.ValidateRating(value); err != nil {
		return nil, err
	}

	if err := s.ratings.Upsert(ctx, userID, storeID, value); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Int64("store_id", storeID).Int("rating", value).Msg("rating submitted")
	return s.ratings.AverageForStore(ctx, storeID)
}

// ListForOwner returns all ratings on the owner's stores, newest first.
func (s *RatingService) ListForOwner(ctx context.Context, ownerID int64) ([]ports.OwnerRating, error) {
	return s.ratings.ListForOwner(ctx, ownerID)
}
