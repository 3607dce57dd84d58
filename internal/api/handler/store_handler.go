package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ratemart/store-rating-system/internal/api/metrics"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// StoreHandler handles the shopper surface: browsing stores and submitting
// ratings.
type StoreHandler struct {
	stores  ports.StoreService
	ratings ports.RatingService
}

func NewStoreHandler(stores ports.StoreService, ratings ports.RatingService) *StoreHandler {
	return &StoreHandler{stores: stores, ratings: ratings}
}

// List handles GET /api/stores. Each store carries the overall mean rating
// and the caller's own rating, both null when absent.
func (h *StoreHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stores, err := h.stores.ListForShopper(c.Request().Context(), userID, listInput(c, "name", "address"))
	if err != nil {
		return err
	}
	if stores == nil {
		stores = []ports.ShopperStore{}
	}
	return c.JSON(http.StatusOK, stores)
}

// Rate handles POST /api/stores/:id/ratings. Submitting twice for the same
// store overwrites the previous value; the response carries the store's fresh
// mean so clients need no second round trip.
func (h *StoreHandler) Rate(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || storeID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid store id")
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	avg, err := h.ratings.Submit(c.Request().Context(), userID, storeID, req.Rating)
	if err != nil {
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(req.Rating)).Inc()
	return c.JSON(http.StatusOK, submitRatingResponse{Message: "rating saved", AverageRating: avg})
}
