package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"recyclehub-server/internal/models"
	"recyclehub-server/internal/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	svc, err := services.NewAuthService("test-secret", zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticationMissingHeader(t *testing.T) {
	authService := newTestAuthService(t)
	handler := Authentication(authService, zerolog.Nop())(okHandler())

	req := httptest.NewRequest("PATCH", "/userRole/a@x.com", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing_authorization")
}

func TestAuthenticationMalformedHeader(t *testing.T) {
	authService := newTestAuthService(t)
	handler := Authentication(authService, zerolog.Nop())(okHandler())

	req := httptest.NewRequest("PATCH", "/userRole/a@x.com", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_authorization")
}

func TestAuthenticationInvalidToken(t *testing.T) {
	authService := newTestAuthService(t)
	handler := Authentication(authService, zerolog.Nop())(okHandler())

	req := httptest.NewRequest("PATCH", "/userRole/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_token")
}

func TestAuthenticationPopulatesClaims(t *testing.T) {
	authService := newTestAuthService(t)

	token, err := authService.IssueToken(models.User{Email: "a@x.com", Role: "admin"})
	require.NoError(t, err)

	var gotEmail, gotRole string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = GetUserEmail(r)
		gotRole, _ = GetUserRole(r)
		w.WriteHeader(http.StatusOK)
	})

	handler := Authentication(authService, zerolog.Nop())(inner)

	req := httptest.NewRequest("PATCH", "/userRole/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "a@x.com", gotEmail)
	assert.Equal(t, "admin", gotRole)
}

func TestRequireRole(t *testing.T) {
	authService := newTestAuthService(t)

	cases := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"admin passes admin gate", "admin", []string{"admin"}, http.StatusOK},
		{"buyer fails admin gate", "buyer", []string{"admin"}, http.StatusForbidden},
		{"seller passes seller-or-admin gate", "seller", []string{"seller", "admin"}, http.StatusOK},
		{"unset role fails every gate", "", []string{"seller", "admin"}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := authService.IssueToken(models.User{Email: "a@x.com", Role: tc.role})
			require.NoError(t, err)

			handler := Authentication(authService, zerolog.Nop())(RequireRole(tc.allowed...)(okHandler()))

			req := httptest.NewRequest("DELETE", "/deleteUser/b@x.com", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
	handler := RequireRole("admin")(okHandler())

	req := httptest.NewRequest("DELETE", "/deleteUser/b@x.com", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRateLimiterExhaustion(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 2)
	handler := rl.Middleware()(okHandler())

	statuses := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/categories", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		statuses = append(statuses, rr.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders()(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}

func TestRequestValidationRejectsWrongContentType(t *testing.T) {
	handler := RequestValidation()(okHandler())

	req := httptest.NewRequest("POST", "/addProduct", nil)
	req.ContentLength = 10
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPerformanceMonitoringPassesThrough(t *testing.T) {
	handler := PerformanceMonitoring(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/categories", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestErrorHandlingRecoversPanic(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := ErrorHandling(zerolog.Nop())(panicking)

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
