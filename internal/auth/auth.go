package auth

import (
	"context"
	"net/http"
	"time"

	"crm/backend/foundation/web"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Account roles. Every protected route declares the set of roles that may
// call it.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// tokenTTL is how long an issued access token stays valid.
const tokenTTL = 24 * time.Hour

type ctxKey int

// Key is used to store/retrieve a Claims value from a context.Context.
const Key ctxKey = 1

// Claims is the payload carried by an access token. The decoded claims
// travel with the request context so downstream code never re-parses the
// token.
type Claims struct {
	UserId    int    `json:"sub"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Valid implements jwt.Claims.
func (c Claims) Valid() error {
	if c.ExpiresAt < time.Now().Unix() {
		return errors.New("token is expired")
	}
	return nil
}

// Authorized returns true if the claims role is in the given allow-set.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth is used to authenticate clients. It signs and validates access
// tokens with a shared HS256 key.
type Auth struct {
	key []byte
}

func New(key string) *Auth {
	return &Auth{key: []byte(key)}
}

// GenerateToken signs a token embedding the account identity.
func (a *Auth) GenerateToken(userID int, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserId:    userID,
		Email:     email,
		Role:      role,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.key)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a signed token string.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

// GetClaims retrieves the authenticated claims from the context. The
// request is rejected as unauthorized when no claims are present, and as
// forbidden when a non-empty allow-set does not contain the claims role.
func GetClaims(ctx context.Context, roles ...string) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	return claims, nil
}
