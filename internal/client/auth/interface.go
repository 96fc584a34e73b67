package auth

import (
	"context"

	"github.com/iudanet/marketsync/internal/client/storage"
	"github.com/iudanet/marketsync/pkg/api"
)

//go:generate moq -out remote_mock.go . Remote

// Remote is the auth part of the store client.
type Remote interface {
	SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
}

// SessionStore defines interface for storing the session with encryption.
// This layer encrypts tokens before they reach storage and decrypts them on the way back.
type SessionStore interface {
	// Save encrypts and saves the session
	Save(ctx context.Context, session *storage.Session) error

	// Load retrieves and decrypts the session.
	// Returns storage.ErrSessionNotFound when logged out
	Load(ctx context.Context) (*storage.Session, error)

	// Delete removes the stored session
	Delete(ctx context.Context) error
}
