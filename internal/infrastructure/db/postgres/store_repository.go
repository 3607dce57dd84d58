package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/listing"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// StoreRepository persists stores and serves the rating-projected listings.
type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	query := `
		INSERT INTO stores (name, email, address, owner_id)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, created_at
	`

	created := *store
	err := r.pool.QueryRow(ctx, query,
		store.Name, store.Email, store.Address, store.OwnerID,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return nil, domain.ErrStoreEmailTaken
		case codeForeignKeyViolation:
			return nil, domain.ErrInvalidOwner
		}
		return nil, fmt.Errorf("insert store: %w", err)
	}

	return &created, nil
}

// ListWithRating returns stores with their mean rating, freshly aggregated
// per request. The average is NULL (nil) for stores with no ratings.
func (r *StoreRepository) ListWithRating(ctx context.Context, q listing.Query, ownerID *int64) ([]ports.StoreWithRating, error) {
	base := `
		SELECT s.id, s.name, s.email, COALESCE(s.address, ''), s.owner_id,
		       ROUND(AVG(r.rating)::numeric, 2)::float8 AS average_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE 1=1`

	var args []any
	next := 1
	if ownerID != nil {
		base += fmt.Sprintf(" AND s.owner_id = $%d", next)
		args = append(args, *ownerID)
		next++
	}

	where, filterArgs := q.Where(next)
	args = append(args, filterArgs...)

	query := base + where +
		` GROUP BY s.id, s.name, s.email, s.address, s.owner_id, s.created_at` +
		q.OrderBy()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []ports.StoreWithRating
	for rows.Next() {
		var s ports.StoreWithRating
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.AverageRating); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// ListForShopper returns stores with the overall mean plus the requesting
// user's own rating, looked up per store by the (user_id, store_id) key.
func (r *StoreRepository) ListForShopper(ctx context.Context, q listing.Query, userID int64) ([]ports.ShopperStore, error) {
	where, filterArgs := q.Where(2)
	args := append([]any{userID}, filterArgs...)

	query := `
		SELECT s.id, s.name, COALESCE(s.address, ''),
		       ROUND(AVG(r.rating)::numeric, 2)::float8 AS overall_rating,
		       (SELECT rating FROM ratings WHERE user_id = $1 AND store_id = s.id) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE 1=1` + where +
		` GROUP BY s.id, s.name, s.address, s.created_at` +
		q.OrderBy()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores for user: %w", err)
	}
	defer rows.Close()

	var stores []ports.ShopperStore
	for rows.Next() {
		var s ports.ShopperStore
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.OverallRating, &s.UserRating); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}
