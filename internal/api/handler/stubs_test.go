package handler

import (
	"context"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

type stubAuthService struct {
	signupFn         func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error)
	loginFn          func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	updatePasswordFn func(ctx context.Context, userID int64, newPassword string) error
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) UpdatePassword(ctx context.Context, userID int64, newPassword string) error {
	return s.updatePasswordFn(ctx, userID, newPassword)
}

type stubUserService struct {
	createFn    func(ctx context.Context, input ports.CreateUserInput) (int64, error)
	listFn      func(ctx context.Context, input ports.ListInput) ([]domain.User, error)
	dashboardFn func(ctx context.Context) (*ports.DashboardCounts, error)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (int64, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) List(ctx context.Context, input ports.ListInput) ([]domain.User, error) {
	return s.listFn(ctx, input)
}

func (s *stubUserService) Dashboard(ctx context.Context) (*ports.DashboardCounts, error) {
	return s.dashboardFn(ctx)
}

type stubStoreService struct {
	createFn         func(ctx context.Context, input ports.CreateStoreInput) error
	listFn           func(ctx context.Context, input ports.ListInput) ([]ports.StoreWithRating, error)
	listForOwnerFn   func(ctx context.Context, ownerID int64, input ports.ListInput) ([]ports.StoreWithRating, error)
	listForShopperFn func(ctx context.Context, userID int64, input ports.ListInput) ([]ports.ShopperStore, error)
}

func (s *stubStoreService) Create(ctx context.Context, input ports.CreateStoreInput) error {
	return s.createFn(ctx, input)
}

func (s *stubStoreService) List(ctx context.Context, input ports.ListInput) ([]ports.StoreWithRating, error) {
	return s.listFn(ctx, input)
}

func (s *stubStoreService) ListForOwner(ctx context.Context, ownerID int64, input ports.ListInput) ([]ports.StoreWithRating, error) {
	return s.listForOwnerFn(ctx, ownerID, input)
}

func (s *stubStoreService) ListForShopper(ctx context.Context, userID int64, input ports.ListInput) ([]ports.ShopperStore, error) {
	return s.listForShopperFn(ctx, userID, input)
}

type stubRatingService struct {
	submitFn       func(ctx context.Context, userID, storeID int64, value int) (*float64, error)
	listForOwnerFn func(ctx context.Context, ownerID int64) ([]ports.OwnerRating, error)
}

func (s *stubRatingService) Submit(ctx context.Context, userID, storeID int64, value int) (*float64, error) {
	return s.submitFn(ctx, userID, storeID, value)
}

func (s *stubRatingService) ListForOwner(ctx context.Context, ownerID int64) ([]ports.OwnerRating, error) {
	return s.listForOwnerFn(ctx, ownerID)
}
