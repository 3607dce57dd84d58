package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// OwnerHandler handles the store-owner surface: the owner's stores and the
// ratings they have received.
type OwnerHandler struct {
	stores  ports.StoreService
	ratings ports.RatingService
}

func NewOwnerHandler(stores ports.StoreService, ratings ports.RatingService) *OwnerHandler {
	return &OwnerHandler{stores: stores, ratings: ratings}
}

// ListStores handles GET /api/owner/stores, scoped to the caller's stores.
func (h *OwnerHandler) ListStores(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stores, err := h.stores.ListForOwner(c.Request().Context(), userID, listInput(c, "name", "email", "address"))
	if err != nil {
		return err
	}
	if stores == nil {
		stores = []ports.StoreWithRating{}
	}
	return c.JSON(http.StatusOK, stores)
}

// CreateStore handles POST /api/owner/stores. The owner is always the caller;
// the body cannot assign the store to someone else.
func (h *OwnerHandler) CreateStore(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ownerCreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.stores.Create(c.Request().Context(), ports.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "store created"})
}

// ListRatings handles GET /api/owner/ratings: every rating received by the
// caller's stores, joined with the store name, newest first.
func (h *OwnerHandler) ListRatings(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ratings, err := h.ratings.ListForOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if ratings == nil {
		ratings = []ports.OwnerRating{}
	}
	return c.JSON(http.StatusOK, ratings)
}
