package service

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ratemart/store-rating-system/internal/core/domain"
)

func newRatingFixture() (*RatingService, *stubUserRepo, *stubStoreRepo, *stubRatingRepo) {
	users := newStubUserRepo()
	ratings := newStubRatingRepo()
	stores := newStubStoreRepo(ratings)
	ratings.stores = stores
	svc := NewRatingService(ratings, zerolog.Nop())
	return svc, users, stores, ratings
}

func seedStore(t *testing.T, users *stubUserRepo, stores *stubStoreRepo) *domain.Store {
	t.Helper()
	owner, err := users.Create(context.Background(), &domain.User{
		Name: "Storefront Proprietor Example", Email: "owner@example.com", Role: domain.RoleStoreOwner,
	})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	store, err := stores.Create(context.Background(), &domain.Store{
		Name: "Springfield Mart & Groceries", Email: "mart@example.com", OwnerID: owner.ID,
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func TestRatingService_Submit_OutOfRange(t *testing.T) {
	svc, users, stores, ratings := newRatingFixture()
	store := seedStore(t, users, stores)

	for _, v := range []int{0, 6, -3} {
		if _, err := svc.Submit(context.Background(), 1, store.ID, v); !domain.IsValidation(err) {
			t.Errorf("Submit(%d): expected validation error, got %v", v, err)
		}
	}
	if len(ratings.values) != 0 {
		t.Fatalf("no rating may be persisted on validation failure")
	}
}

func TestRatingService_Submit_OverwritesNotDuplicates(t *testing.T) {
	svc, users, stores, ratings := newRatingFixture()
	store := seedStore(t, users, stores)

	if _, err := svc.Submit(context.Background(), 1, store.ID, 3); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	avg, err := svc.Submit(context.Background(), 1, store.ID, 5)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if len(ratings.values) != 1 {
		t.Fatalf("expected exactly one rating row, got %d", len(ratings.values))
	}
	if got := ratings.values[ratingKey{1, store.ID}].Value; got != 5 {
		t.Fatalf("expected value 5 after overwrite, got %d", got)
	}
	if avg == nil || *avg != 5 {
		t.Fatalf("expected fresh average 5, got %v", avg)
	}
}

func TestRatingService_Submit_UnknownStore(t *testing.T) {
	svc, _, _, _ := newRatingFixture()

	if _, err := svc.Submit(context.Background(), 1, 9999, 4); err != domain.ErrStoreNotFound {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestRatingService_AverageOfMixedValues(t *testing.T) {
	svc, users, stores, _ := newRatingFixture()
	store := seedStore(t, users, stores)

	var avg *float64
	var err error
	for user, v := range map[int64]int{1: 2, 2: 4, 3: 5} {
		if avg, err = svc.Submit(context.Background(), user, store.ID, v); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if avg == nil || math.Abs(*avg-11.0/3.0) > 1e-9 {
		t.Fatalf("expected mean 11/3, got %v", avg)
	}
}

func TestRatingService_ListForOwner(t *testing.T) {
	svc, users, stores, _ := newRatingFixture()
	store := seedStore(t, users, stores)

	if _, err := svc.Submit(context.Background(), 5, store.ID, 4); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rows, err := svc.ListForOwner(context.Background(), store.OwnerID)
	if err != nil {
		t.Fatalf("ListForOwner: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 rating, got %d", len(rows))
	}
	if rows[0].StoreName != "Springfield Mart & Groceries" || rows[0].Value != 4 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}

	if rows, err = svc.ListForOwner(context.Background(), 9999); err != nil || len(rows) != 0 {
		t.Fatalf("foreign owner must see no ratings, got %v %v", rows, err)
	}
}
