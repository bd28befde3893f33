package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClaims struct {
	principal Principal
	err       error
}

func (c *testClaims) GetPrincipal() (Principal, error) {
	return c.principal, c.err
}

type testTokenValidator struct {
	tokens map[string]*testClaims
}

func (v *testTokenValidator) ValidateToken(token string) (PrincipalGetter, error) {
	claims, ok := v.tokens[token]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func newValidator() (*testTokenValidator, Principal) {
	p := Principal{UserID: uuid.New(), Role: RoleClient, ClientID: uuid.New()}
	return &testTokenValidator{tokens: map[string]*testClaims{
		"good":      {principal: p},
		"bad-claim": {err: fmt.Errorf("subject is not a uuid")},
	}}, p
}

func echoPrincipal() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := GetPrincipal(r)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(p.UserID.String()))
	})
}

func TestAuthMiddleware(t *testing.T) {
	validator, principal := newValidator()
	handler := AuthMiddleware(validator)(echoPrincipal())

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"extra parts", "Bearer good extra", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"claims without principal", "Bearer bad-claim", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/jobs/x/health", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, principal.UserID.String(), w.Body.String())
			} else {
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
				assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(RoleAdmin, RoleRecruiter)(echoPrincipal())

	tests := []struct {
		name   string
		role   string
		status int
	}{
		{"admin", RoleAdmin, http.StatusOK},
		{"recruiter", RoleRecruiter, http.StatusOK},
		{"client", RoleClient, http.StatusForbidden},
		{"unknown", "candidate", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(withPrincipal(req.Context(), Principal{UserID: uuid.New(), Role: tt.role}))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("no principal", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPrincipal_CanAccessClient(t *testing.T) {
	own := uuid.New()
	other := uuid.New()

	assert.True(t, Principal{Role: RoleAdmin}.CanAccessClient(other))
	assert.True(t, Principal{Role: RoleRecruiter}.CanAccessClient(other))
	assert.True(t, Principal{Role: RoleClient, ClientID: own}.CanAccessClient(own))
	assert.False(t, Principal{Role: RoleClient, ClientID: own}.CanAccessClient(other))
	assert.False(t, Principal{Role: RoleClient}.CanAccessClient(uuid.Nil))
	assert.False(t, Principal{Role: "candidate"}.CanAccessClient(own))
}

func TestGetPrincipal_Missing(t *testing.T) {
	_, err := GetPrincipal(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}
