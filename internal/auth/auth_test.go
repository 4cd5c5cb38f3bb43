package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"crm/backend/foundation/web"

	"github.com/pkg/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	a := New("test-secret")

	token, err := a.GenerateToken(7, "jane@example.com", RoleEmployee)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserId != 7 {
		t.Errorf("UserId = %d, want 7", claims.UserId)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Email = %q, want jane@example.com", claims.Email)
	}
	if claims.Role != RoleEmployee {
		t.Errorf("Role = %q, want %q", claims.Role, RoleEmployee)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("token expires before it was issued")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := New("key-one").GenerateToken(1, "a@b.c", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := New("key-two").ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different key")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := New("k").ValidateToken("not-a-token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}

func TestClaimsValidExpiry(t *testing.T) {
	expired := Claims{ExpiresAt: time.Now().Add(-time.Minute).Unix()}
	if err := expired.Valid(); err == nil {
		t.Error("expected an expired claims error")
	}

	live := Claims{ExpiresAt: time.Now().Add(time.Minute).Unix()}
	if err := live.Valid(); err != nil {
		t.Errorf("Valid() error = %v, want nil", err)
	}
}

func TestClaimsAuthorized(t *testing.T) {
	tests := []struct {
		name  string
		role  string
		allow []string
		want  bool
	}{
		{"employee in employee set", RoleEmployee, []string{RoleEmployee}, true},
		{"admin in mixed set", RoleAdmin, []string{RoleEmployee, RoleAdmin}, true},
		{"employee not in admin set", RoleEmployee, []string{RoleAdmin}, false},
		{"empty allow set", RoleAdmin, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Claims{Role: tt.role}
			if got := c.Authorized(tt.allow...); got != tt.want {
				t.Errorf("Authorized(%v) = %v, want %v", tt.allow, got, tt.want)
			}
		})
	}
}

func TestGetClaims(t *testing.T) {
	base := context.Background()
	withClaims := context.WithValue(base, Key, Claims{UserId: 3, Role: RoleEmployee})

	t.Run("missing claims is unauthorized", func(t *testing.T) {
		_, err := GetClaims(base)
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("role outside allow-set is forbidden", func(t *testing.T) {
		_, err := GetClaims(withClaims, RoleAdmin)
		assertStatus(t, err, http.StatusForbidden)
	})

	t.Run("role inside allow-set passes", func(t *testing.T) {
		claims, err := GetClaims(withClaims, RoleEmployee, RoleAdmin)
		if err != nil {
			t.Fatalf("GetClaims() error = %v", err)
		}
		if claims.UserId != 3 {
			t.Errorf("UserId = %d, want 3", claims.UserId)
		}
	})

	t.Run("no roles means any authenticated caller", func(t *testing.T) {
		if _, err := GetClaims(withClaims); err != nil {
			t.Errorf("GetClaims() error = %v, want nil", err)
		}
	})
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error")
	}
	var webErr *web.Error
	if !errors.As(err, &webErr) {
		t.Fatalf("expected a request error, got %v", err)
	}
	if webErr.Status != status {
		t.Errorf("status = %d, want %d", webErr.Status, status)
	}
}
