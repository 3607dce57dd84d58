package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// messageResponse is the standard success envelope for write operations that
// have no richer payload to return.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---
//
// Tags cover request shape only (presence, rough type). Business rules such
// as length bounds and password composition live in the domain validators and
// run in the service layer.

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=user store_owner"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin user store_owner"`
}

type createStoreRequest struct {
	Name    string `json:"name"     validate:"required"`
	Email   string `json:"email"    validate:"required,email"`
	Address string `json:"address"`
	OwnerID int64  `json:"owner_id" validate:"required"`
}

// ownerCreateStoreRequest omits owner_id; the owner is always the caller.
type ownerCreateStoreRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Address string `json:"address"`
}

type submitRatingRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// --- Response types ---

type createUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type submitRatingResponse struct {
	Message       string   `json:"message"`
	AverageRating *float64 `json:"average_rating"`
}

// listInput assembles the filter/sort specification from the query string.
// Only the given keys are read; unknown query parameters are ignored at the
// transport layer and the allowlist check happens in the service.
func listInput(c echo.Context, filterKeys ...string) ports.ListInput {
	filters := make(map[string]string, len(filterKeys))
	for _, k := range filterKeys {
		if v := c.QueryParam(k); v != "" {
			filters[k] = v
		}
	}
	return ports.ListInput{
		Filters: filters,
		SortBy:  c.QueryParam("sort_by"),
		Order:   c.QueryParam("order"),
	}
}
