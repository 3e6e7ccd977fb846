package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

func TestRBAC(t *testing.T) {
	cases := []struct {
		name    string
		role    any
		allowed []string
		want    int
	}{
		{"admin on admin route", domain.RoleAdmin, []string{domain.RoleAdmin}, http.StatusOK},
		{"staff on staff route", domain.RoleStaff, []string{domain.RoleAdmin, domain.RoleStaff}, http.StatusOK},
		{"customer on admin route", domain.RoleCustomer, []string{domain.RoleAdmin}, http.StatusForbidden},
		{"empty role", "", []string{domain.RoleAdmin}, http.StatusForbidden},
		{"no role set", nil, []string{domain.RoleAdmin}, http.StatusForbidden},
		{"non-string role", 42, []string{domain.RoleAdmin}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/users/1", nil), rec)
			if tc.role != nil {
				c.Set(ContextRole, tc.role)
			}

			reached := false
			err := RBAC(tc.allowed...)(func(c echo.Context) error {
				reached = true
				return c.NoContent(http.StatusOK)
			})(c)
			if err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
			if reached != (tc.want == http.StatusOK) {
				t.Fatalf("next handler reached=%v for status %d", reached, tc.want)
			}
		})
	}
}
