package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/models"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
	emailKey  contextKey = "email"
)

var authenticator auth.Authenticator
var cache store.Cache

// SetupGoGuardian wires the go-guardian authenticator with a stateless JWT
// bearer strategy. The cache only memoizes decoded tokens, revocation happens
// by expiry.
func SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), time.Hour)
	tokenStrategy := bearer.New(validateJWT, cache)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// validateJWT checks the bearer token signature and claims and maps them to
// an auth.Info whose group carries the role claim
func validateJWT(ctx context.Context, r *http.Request, tokenString string) (auth.Info, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return nil, fmt.Errorf("jwt secret is not set")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, fmt.Errorf("token missing subject or role")
	}
	return auth.NewDefaultUser(email, sub, []string{role}, nil), nil
}

// NewToken signs a JWT for the given user
func NewToken(user *models.User, ttl time.Duration) (string, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return "", fmt.Errorf("jwt secret is not set")
	}
	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"email": user.Email,
		"role":  user.Role,
		"typ":   "access",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Middleware adds bearer token authentication around accessing the routes
func Middleware(next http.Handler) http.Handler {
	return RequireRole(models.RoleCustomer, next)
}

// RequireRole authenticates the request and enforces the role hierarchy,
// admin covers manager, manager covers staff and doctor, everyone covers
// customer
func RequireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "message": "unauthorized"}`))
			return
		}
		groups := user.Groups()
		if len(groups) == 0 || !models.RoleSatisfies(groups[0], role) {
			zap.S().Warnw("forbidden",
				"url", r.URL,
				"required", role)
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"success": false, "message": "forbidden"}`))
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, user.ID())
		ctx = context.WithValue(ctx, roleKey, groups[0])
		ctx = context.WithValue(ctx, emailKey, user.UserName())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated caller's user id
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RoleFromContext returns the authenticated caller's role
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// EmailFromContext returns the authenticated caller's email
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// WithCaller stamps caller identity onto a context, used by handler tests
func WithCaller(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}
