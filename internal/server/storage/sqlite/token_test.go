package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/crypto"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

func newTestToken(userID, raw string, ttl time.Duration) *models.RefreshToken {
	return &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: crypto.HashToken(raw),
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}
}

func TestTokenStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	token := newTestToken(userID, "findme", 24*time.Hour)
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	tests := []struct {
		wantError error
		name      string
		hash      string
	}{
		{name: "existing token", hash: crypto.HashToken("findme")},
		{name: "unknown token", hash: crypto.HashToken("other"), wantError: storage.ErrTokenNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetRefreshToken(ctx, tt.hash)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, token.ID, got.ID)
			assert.Equal(t, userID, got.UserID)
			assert.WithinDuration(t, token.ExpiresAt, got.ExpiresAt, time.Second)
		})
	}
}

func TestTokenStorage_DeleteRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	token := newTestToken(userID, "deleteme", time.Hour)
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	require.NoError(t, s.DeleteRefreshToken(ctx, token.TokenHash))

	_, err := s.GetRefreshToken(ctx, token.TokenHash)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	err = s.DeleteRefreshToken(ctx, token.TokenHash)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(userID, "expired1", -time.Hour)))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(userID, "expired2", -2*time.Hour)))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(userID, "valid", time.Hour)))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = s.GetRefreshToken(ctx, crypto.HashToken("valid"))
	assert.NoError(t, err)
}

func TestTokenStorage_CascadeOnUserDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	token := newTestToken(userID, "cascade", time.Hour)
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	_, err := s.DB().ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	require.NoError(t, err)

	_, err = s.GetRefreshToken(ctx, token.TokenHash)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}
