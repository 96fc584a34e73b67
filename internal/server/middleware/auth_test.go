package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/handlers"
	"github.com/iudanet/marketsync/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:          []byte("test-secret-key"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func testUser(role string) *models.User {
	return &models.User{ID: "user123", Email: "user@example.com", Role: role}
}

// okHandler отвечает 200 и проверяет, что до него дошел контекст с пользователем
func okHandler(t *testing.T, expectedUserID, expectedRole string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)
		assert.Equal(t, expectedRole, handlers.GetRole(r.Context()))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func decodeEnvelope(t *testing.T, body io.Reader) api.RawEnvelope {
	t.Helper()
	var env api.RawEnvelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestAuthMiddleware_Success(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := handlers.GenerateAccessToken(cfg, testUser(models.RoleAdmin), time.Now())
	require.NoError(t, err)

	handler := AuthMiddleware(setupTestLogger(), cfg)(okHandler(t, "user123", models.RoleAdmin))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testJWTConfig()

	expired, _, err := handlers.GenerateAccessToken(cfg, testUser(models.RoleCustomer), time.Now().Add(-time.Hour))
	require.NoError(t, err)

	otherCfg := cfg
	otherCfg.Secret = []byte("another-secret")
	foreign, _, err := handlers.GenerateAccessToken(otherCfg, testUser(models.RoleCustomer), time.Now())
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{name: "missing header", header: "", wantMessage: "unauthorized: missing token"},
		{name: "no bearer prefix", header: "token", wantMessage: "unauthorized: invalid token format"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantMessage: "unauthorized: invalid token format"},
		{name: "empty token", header: "Bearer ", wantMessage: "unauthorized: invalid token format"},
		{name: "garbage token", header: "Bearer not.a.jwt", wantMessage: "unauthorized: invalid token"},
		{name: "expired token", header: "Bearer " + expired, wantMessage: "unauthorized: invalid token"},
		{name: "wrong secret", header: "Bearer " + foreign, wantMessage: "unauthorized: invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(setupTestLogger(), cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			env := decodeEnvelope(t, w.Body)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMessage, env.Error)
		})
	}
}

func TestAPIKeyMiddleware(t *testing.T) {
	handler := APIKeyMiddleware(setupTestLogger(), "anon")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{name: "valid", key: "anon", status: http.StatusNoContent},
		{name: "missing", key: "", status: http.StatusUnauthorized},
		{name: "wrong", key: "anon2", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/functions/v1/products", nil)
			if tt.key != "" {
				req.Header.Set(api.APIKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := testJWTConfig()
	chain := func(next http.Handler) http.Handler {
		return AuthMiddleware(setupTestLogger(), cfg)(RequireAdmin(setupTestLogger())(next))
	}

	t.Run("customer is forbidden", func(t *testing.T) {
		token, _, err := handlers.GenerateAccessToken(cfg, testUser(models.RoleCustomer), time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/maintenance", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		chain(okHandler(t, "user123", models.RoleCustomer)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "admin role required", decodeEnvelope(t, w.Body).Error)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, _, err := handlers.GenerateAccessToken(cfg, testUser(models.RoleAdmin), time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/maintenance", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		chain(okHandler(t, "user123", models.RoleAdmin)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
