package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/league-admin/services"
)

const (
	jwtClaimRole = "role"

	// ConfirmSecretHeader carries the admin secret on destructive requests.
	ConfirmSecretHeader = "X-Confirm-Secret"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Authorizer accepts or rejects a confirmation secret.
type Authorizer interface {
	Authorize(secret string) bool
}

// Authenticate admits requests that carry a valid HS256 bearer token whose
// role is one of roles.
func Authenticate(jwtSecret string, roles ...string) func(http.Handler) http.Handler {
	key := []byte(jwtSecret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return key, nil
			})
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			role, _ := claims[jwtClaimRole].(string)
			if !hasRole(role, roles) {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireConfirmation guards destructive endpoints behind the admin secret
// sent in the X-Confirm-Secret header.
func RequireConfirmation(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authorizer.Authorize(r.Header.Get(ConfirmSecretHeader)) {
				writeError(w, http.StatusForbidden, services.ErrConfirmationFailed.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func hasRole(role string, roles []string) bool {
	if len(roles) == 0 {
		return role != ""
	}
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}
