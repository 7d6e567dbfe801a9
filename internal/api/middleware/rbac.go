package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

// AdminOnly rejects any request whose verified claims do not carry the admin
// role. It must be chained after Auth; a missing claim is treated the same
// as a non-admin one. Exact match only, there is no role hierarchy.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil || claims.Role != domain.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"msg": "Access denied: admin only"})
			}
			return next(c)
		}
	}
}
