package auth

import (
	"context"
	"fmt"

	"github.com/iudanet/marketsync/internal/client/storage"
	"github.com/iudanet/marketsync/internal/crypto"
)

// EncryptedStore implements SessionStore and provides encryption layer
// between business logic and storage. It encrypts tokens before saving
// and decrypts them when retrieving.
type EncryptedStore struct {
	storage storage.SessionStorage
	key     []byte
}

// Compile-time check that EncryptedStore implements SessionStore
var _ SessionStore = (*EncryptedStore)(nil)

// NewEncryptedStore creates a new EncryptedStore.
// key must be exactly crypto.KeyLen bytes (see SessionKey)
func NewEncryptedStore(storage storage.SessionStorage, key []byte) *EncryptedStore {
	return &EncryptedStore{
		storage: storage,
		key:     key,
	}
}

// SessionKey derives the token encryption key from the session secret and
// the per-install salt.
func SessionKey(ctx context.Context, meta storage.MetadataStorage, secret string) ([]byte, error) {
	salt, err := meta.InstallSalt(ctx)
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveSessionKey(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive session key: %w", err)
	}
	return key, nil
}

// Save шифрует токены и передает сессию в хранилище
func (s *EncryptedStore) Save(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	access, err := crypto.SealString(session.AccessToken, s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	refresh := ""
	if session.RefreshToken != "" {
		refresh, err = crypto.SealString(session.RefreshToken, s.key)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	sealed := *session // копируем, чтобы не менять входящую структуру
	sealed.AccessToken = access
	sealed.RefreshToken = refresh

	return s.storage.SaveSession(ctx, &sealed)
}

// Load загружает сессию и расшифровывает токены
func (s *EncryptedStore) Load(ctx context.Context) (*storage.Session, error) {
	stored, err := s.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	session := *stored
	session.AccessToken, err = crypto.OpenString(stored.AccessToken, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	if stored.RefreshToken != "" {
		session.RefreshToken, err = crypto.OpenString(stored.RefreshToken, s.key)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
		}
	}

	return &session, nil
}

// Delete удаляет сессию
func (s *EncryptedStore) Delete(ctx context.Context) error {
	return s.storage.DeleteSession(ctx)
}
