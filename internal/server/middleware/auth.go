// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const principalKey ContextKey = "principal"

// Roles issued by the marketplace backend.
const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
	RoleClient    = "client"
)

// Principal is the authenticated caller. ClientID is set for client users only.
type Principal struct {
	UserID   uuid.UUID
	Role     string
	ClientID uuid.UUID
}

// CanAccessClient reports whether the principal may read data owned by clientID.
// Staff roles see every client; client users only their own.
func (p Principal) CanAccessClient(clientID uuid.UUID) bool {
	switch p.Role {
	case RoleAdmin, RoleRecruiter:
		return true
	case RoleClient:
		return p.ClientID != uuid.Nil && p.ClientID == clientID
	default:
		return false
	}
}

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (PrincipalGetter, error)
}

// PrincipalGetter extracts the caller from validated token claims.
type PrincipalGetter interface {
	GetPrincipal() (Principal, error)
}

// AuthMiddleware creates middleware that validates bearer tokens and stores the
// principal in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}

			principal, err := claims.GetPrincipal()
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := withPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects principals whose role is not listed with 403. It must run after
// AuthMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := GetPrincipal(r)
			if err != nil {
				unauthorized(w)
				return
			}
			if !slices.Contains(roles, principal.Role) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetPrincipal extracts the authenticated caller from the request context.
func GetPrincipal(r *http.Request) (Principal, error) {
	principal, ok := r.Context().Value(principalKey).(Principal)
	if !ok {
		return Principal{}, fmt.Errorf("principal not found in request context")
	}
	return principal, nil
}

// withPrincipal returns a copy of ctx carrying principal.
func withPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// bearerToken parses a case-insensitive "Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], parts[1] != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="talentbridge"`)
	writeError(w, http.StatusUnauthorized, "unauthorized")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, "{\"error\":%q}\n", message)
}
