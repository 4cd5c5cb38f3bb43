package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crm/backend/foundation/web"
	"crm/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedApp(t *testing.T, a *auth.Auth, roles ...string) *web.App {
	t.Helper()

	app := web.NewApp()
	app.Get("/protected", func(c *web.Context) error {
		claims, err := auth.GetClaims(c.Ctx)
		if err != nil {
			return c.RespondError(err)
		}
		return c.RespondOK("ok", claims.Email)
	}, Authenticate(a, roles...))

	return app
}

func TestAuthenticate(t *testing.T) {
	a := auth.New("test-secret")

	employeeToken, err := a.GenerateToken(1, "emp@example.com", auth.RoleEmployee)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	adminToken, err := a.GenerateToken(2, "adm@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	foreignToken, err := auth.New("other-secret").GenerateToken(3, "x@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		roles      []string
		header     string
		wantStatus int
	}{
		{"no header", []string{auth.RoleAdmin}, "", http.StatusUnauthorized},
		{"malformed header", []string{auth.RoleAdmin}, "Token abc", http.StatusUnauthorized},
		{"foreign signature", []string{auth.RoleAdmin}, "Bearer " + foreignToken, http.StatusUnauthorized},
		{"wrong role", []string{auth.RoleAdmin}, "Bearer " + employeeToken, http.StatusForbidden},
		{"allowed role", []string{auth.RoleAdmin}, "Bearer " + adminToken, http.StatusOK},
		{"any role in set", []string{auth.RoleEmployee, auth.RoleAdmin}, "Bearer " + employeeToken, http.StatusOK},
		{"no role restriction", nil, "Bearer " + employeeToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := protectedApp(t, a, tt.roles...)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			app.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestAuthenticateStoresClaims(t *testing.T) {
	a := auth.New("test-secret")
	token, err := a.GenerateToken(9, "clerk@example.com", auth.RoleEmployee)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	app := protectedApp(t, a)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "clerk@example.com") {
		t.Errorf("body = %s, want the token email in data", body)
	}
}
