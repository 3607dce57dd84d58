package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratemart/store-rating-system/internal/core/domain"
)

// RequireRole enforces that the authenticated caller's role is in the allowed
// set. It must run after Auth. A valid credential with the wrong role yields
// 403, never 401. Each endpoint declares its role set once at route
// registration; no handler re-checks roles.
func RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := set[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
