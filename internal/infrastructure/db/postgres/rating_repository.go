package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// RatingRepository persists ratings. The (user_id, store_id) uniqueness
// constraint in the schema is what makes Upsert race-free.
type RatingRepository struct {
	pool *pgxpool.Pool
}

func NewRatingRepository(pool *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{pool: pool}
}

// Upsert creates or overwrites the rating in a single conditional write.
// Two concurrent submissions by the same user for the same store serialize on
// the uniqueness constraint; the later one wins, no duplicate row can appear.
func (r *RatingRepository) Upsert(ctx context.Context, userID, storeID int64, value int) error {
	query := `
		INSERT INTO ratings (user_id, store_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()
	`

	if _, err := r.pool.Exec(ctx, query, userID, storeID, value); err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			if strings.Contains(pgConstraint(err), "store") {
				return domain.ErrStoreNotFound
			}
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// AverageForStore computes the mean rating fresh from the rows. The result is
// nil when the store has no ratings — never a zero that could be mistaken for
// a real 0-star score.
func (r *RatingRepository) AverageForStore(ctx context.Context, storeID int64) (*float64, error) {
	var avg *float64
	err := r.pool.QueryRow(ctx,
		`SELECT ROUND(AVG(rating)::numeric, 2)::float8 FROM ratings WHERE store_id = $1`,
		storeID,
	).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}

// ListForOwner returns every rating received by the owner's stores, joined
// with the store name, newest first.
func (r *RatingRepository) ListForOwner(ctx context.Context, ownerID int64) ([]ports.OwnerRating, error) {
	query := `
		SELECT r.id, r.store_id, r.user_id, r.rating, s.name, r.created_at
		FROM ratings r
		JOIN stores s ON s.id = r.store_id
		WHERE s.owner_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner ratings: %w", err)
	}
	defer rows.Close()

	var ratings []ports.OwnerRating
	for rows.Next() {
		var rt ports.OwnerRating
		if err := rows.Scan(&rt.ID, &rt.StoreID, &rt.UserID, &rt.Value, &rt.StoreName, &rt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
