package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

// ClaimsKey is the echo context key under which Auth stores verified claims.
const ClaimsKey = "auth_claims"

// legacyTokenHeader carries a raw token without the Bearer prefix. Older
// clients still send it, so it is accepted as a fallback.
const legacyTokenHeader = "x-auth-token"

// Auth verifies the request token and injects the claims into the context.
// The token is read from "Authorization: Bearer <token>" first, then from
// the legacy x-auth-token header. Auth-gate responses use the "msg" envelope
// the original API exposed; resource errors use "message" (see DESIGN.md).
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c.Request().Header)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				// Expired and malformed tokens get the same answer; the
				// client's only recourse is to authenticate again.
				return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "Token is not valid"})
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by Auth, or nil when the middleware
// did not run for this route.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(ClaimsKey).(*domain.Claims)
	return claims
}

func extractToken(h http.Header) string {
	if auth := h.Get(echo.HeaderAuthorization); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return h.Get(legacyTokenHeader)
}
