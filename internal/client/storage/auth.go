package storage

import (
	"context"
)

// SessionStorage defines interface for storing the client session.
// This is the lowest storage layer: tokens arrive already encrypted and are
// stored as-is.
type SessionStorage interface {
	// SaveSession stores session data as-is (tokens should already be encrypted)
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

// Session represents the logged in user.
// IMPORTANT: in storage the tokens are AES-GCM ciphertext (base64),
// in memory of auth.Service they are plaintext.
type Session struct {
	Email        string `json:"email"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds, срок access token
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "admin"
}
