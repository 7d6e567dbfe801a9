package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/petitmarche/shop-api/internal/core/domain"
)

func runAdminOnly(t *testing.T, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ClaimsKey, claims)
	}

	handler := AdminOnly()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	rec := runAdminOnly(t, &domain.Claims{UserID: "u1", Role: domain.RoleAdmin})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestAdminOnly_UserRejected(t *testing.T) {
	rec := runAdminOnly(t, &domain.Claims{UserID: "u1", Role: domain.RoleUser})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"msg":"Access denied: admin only"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminOnly_MissingClaims(t *testing.T) {
	rec := runAdminOnly(t, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
}
