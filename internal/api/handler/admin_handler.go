package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/ports"
)

// AdminHandler handles the admin surface: the dashboard, user and store
// creation, and the filtered listings.
type AdminHandler struct {
	users  ports.UserService
	stores ports.StoreService
}

func NewAdminHandler(users ports.UserService, stores ports.StoreService) *AdminHandler {
	return &AdminHandler{users: users, stores: stores}
}

// Dashboard handles GET /api/admin/dashboard. Totals are computed fresh per
// request, never cached.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	counts, err := h.users.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// CreateUser handles POST /api/admin/users. Unlike public signup, any of the
// three roles may be assigned, including admin.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{Message: "user created", UserID: id})
}

// CreateStore handles POST /api/admin/stores. The referenced owner must exist
// and hold the store_owner role.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.stores.Create(c.Request().Context(), ports.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "store created"})
}

// ListUsers handles GET /api/admin/users with name/email/address/role
// substring filters and sortable columns.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), listInput(c, "name", "email", "address", "role"))
	if err != nil {
		return err
	}

	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.UserSummary{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Address:   u.Address,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// ListStores handles GET /api/admin/stores. Every store carries its mean
// rating, null when unrated.
func (h *AdminHandler) ListStores(c echo.Context) error {
	stores, err := h.stores.List(c.Request().Context(), listInput(c, "name", "email", "address"))
	if err != nil {
		return err
	}
	if stores == nil {
		stores = []ports.StoreWithRating{}
	}
	return c.JSON(http.StatusOK, stores)
}
