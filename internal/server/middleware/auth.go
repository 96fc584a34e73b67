package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/marketsync/internal/server/handlers"
	"github.com/iudanet/marketsync/pkg/api"
)

// APIKeyMiddleware пропускает только запросы с правильным anon key в заголовке apikey
func APIKeyMiddleware(logger *slog.Logger, anonKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(api.APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(anonKey)) != 1 {
				logger.Warn("Invalid API key", "path", r.URL.Path, "present", key != "")
				handlers.WriteEnvelope(w, logger, api.Fail("invalid API key"), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				handlers.WriteEnvelope(w, logger, api.Fail("unauthorized: missing token"), http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("Invalid Authorization header format")
				handlers.WriteEnvelope(w, logger, api.Fail("unauthorized: invalid token format"), http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				handlers.WriteEnvelope(w, logger, api.Fail("unauthorized: invalid token"), http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithIdentity(r.Context(), claims.UserID, claims.Role)
			logger.Debug("User authenticated", "user_id", claims.UserID, "role", claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin отклоняет запросы пользователей без роли admin.
// Ставится после AuthMiddleware.
func RequireAdmin(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !handlers.IsAdmin(r.Context()) {
				userID, _ := handlers.GetUserID(r.Context())
				logger.Warn("Admin access denied", "user_id", userID, "path", r.URL.Path)
				handlers.WriteEnvelope(w, logger, api.Fail("admin role required"), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
