package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/listing"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// In-memory fakes shared by the service tests. They honor the same uniqueness
// rules as the SQL schema so service behavior can be exercised end to end
// without a database.

type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
	// listCalls counts List invocations so tests can assert that invalid
	// sort specifications never reach the storage layer.
	listCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) List(_ context.Context, _ listing.Query) ([]domain.User, error) {
	r.listCalls++
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubStoreRepo struct {
	nextID    int64
	stores    map[int64]*domain.Store
	ratings   *stubRatingRepo
	listCalls int
}

func newStubStoreRepo(ratings *stubRatingRepo) *stubStoreRepo {
	return &stubStoreRepo{stores: make(map[int64]*domain.Store), ratings: ratings}
}

func (r *stubStoreRepo) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	for _, s := range r.stores {
		if s.Email == store.Email {
			return nil, domain.ErrStoreEmailTaken
		}
	}
	r.nextID++
	clone := *store
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	r.stores[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStoreRepo) ListWithRating(ctx context.Context, _ listing.Query, ownerID *int64) ([]ports.StoreWithRating, error) {
	r.listCalls++
	var out []ports.StoreWithRating
	for _, s := range r.stores {
		if ownerID != nil && s.OwnerID != *ownerID {
			continue
		}
		avg, _ := r.ratings.AverageForStore(ctx, s.ID)
		out = append(out, ports.StoreWithRating{
			ID: s.ID, Name: s.Name, Email: s.Email, Address: s.Address,
			OwnerID: s.OwnerID, AverageRating: avg,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubStoreRepo) ListForShopper(ctx context.Context, _ listing.Query, userID int64) ([]ports.ShopperStore, error) {
	r.listCalls++
	var out []ports.ShopperStore
	for _, s := range r.stores {
		avg, _ := r.ratings.AverageForStore(ctx, s.ID)
		var own *int
		if rt, ok := r.ratings.values[ratingKey{userID, s.ID}]; ok {
			v := rt.Value
			own = &v
		}
		out = append(out, ports.ShopperStore{
			ID: s.ID, Name: s.Name, Address: s.Address,
			OverallRating: avg, UserRating: own,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubStoreRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.stores)), nil
}

type ratingKey struct {
	userID  int64
	storeID int64
}

type stubRatingRepo struct {
	nextID int64
	values map[ratingKey]*domain.Rating
	stores *stubStoreRepo
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{values: make(map[ratingKey]*domain.Rating)}
}

func (r *stubRatingRepo) Upsert(_ context.Context, userID, storeID int64, value int) error {
	if r.stores != nil {
		if _, ok := r.stores.stores[storeID]; !ok {
			return domain.ErrStoreNotFound
		}
	}
	key := ratingKey{userID, storeID}
	if existing, ok := r.values[key]; ok {
		existing.Value = value
		existing.UpdatedAt = time.Now().UTC()
		return nil
	}
	r.nextID++
	now := time.Now().UTC()
	r.values[key] = &domain.Rating{
		ID: r.nextID, UserID: userID, StoreID: storeID, Value: value,
		CreatedAt: now, UpdatedAt: now,
	}
	return nil
}

func (r *stubRatingRepo) AverageForStore(_ context.Context, storeID int64) (*float64, error) {
	var sum, n int
	for _, rt := range r.values {
		if rt.StoreID == storeID {
			sum += rt.Value
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(n)
	return &avg, nil
}

func (r *stubRatingRepo) ListForOwner(_ context.Context, ownerID int64) ([]ports.OwnerRating, error) {
	var out []ports.OwnerRating
	for _, rt := range r.values {
		store, ok := r.stores.stores[rt.StoreID]
		if !ok || store.OwnerID != ownerID {
			continue
		}
		out = append(out, ports.OwnerRating{
			ID: rt.ID, StoreID: rt.StoreID, UserID: rt.UserID,
			Value: rt.Value, StoreName: store.Name, CreatedAt: rt.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.values)), nil
}

type stubLimiter struct {
	failures map[string]int
	limit    int
}

func newStubLimiter(limit int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), limit: limit}
}

func (l *stubLimiter) TooManyFailures(_ context.Context, email string) (bool, error) {
	return l.failures[strings.ToLower(email)] >= l.limit, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[strings.ToLower(email)]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	delete(l.failures, strings.ToLower(email))
	return nil
}
