package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/client/storage"
	"github.com/iudanet/marketsync/internal/crypto"
)

// mockSessionStorage implements storage.SessionStorage for testing
type mockSessionStorage struct {
	data      *storage.Session
	saveErr   error
	getErr    error
	deleteErr error
}

func (m *mockSessionStorage) SaveSession(ctx context.Context, session *storage.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	// Сохраняем копию данных
	copied := *session
	m.data = &copied
	return nil
}

func (m *mockSessionStorage) GetSession(ctx context.Context) (*storage.Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.data == nil {
		return nil, storage.ErrSessionNotFound
	}
	copied := *m.data
	return &copied, nil
}

func (m *mockSessionStorage) DeleteSession(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.data == nil {
		return storage.ErrSessionNotFound
	}
	m.data = nil
	return nil
}

// mockMetadata implements storage.MetadataStorage for testing
type mockMetadata struct {
	salt []byte
	err  error
}

func (m *mockMetadata) InstallSalt(ctx context.Context) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.salt == nil {
		salt, err := crypto.NewSalt()
		if err != nil {
			return nil, err
		}
		m.salt = salt
	}
	return m.salt, nil
}

func (m *mockMetadata) SaveLastSync(ctx context.Context, domain string, at time.Time) error {
	return nil
}

func (m *mockMetadata) GetLastSync(ctx context.Context, domain string) (time.Time, error) {
	return time.Time{}, nil
}

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := SessionKey(context.Background(), &mockMetadata{}, "session-secret")
	require.NoError(t, err)
	return key
}

func TestSessionKey(t *testing.T) {
	ctx := context.Background()
	meta := &mockMetadata{}

	first, err := SessionKey(ctx, meta, "secret")
	require.NoError(t, err)
	assert.Len(t, first, crypto.KeyLen)

	// Та же соль и секрет дают тот же ключ
	second, err := SessionKey(ctx, meta, "secret")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := SessionKey(ctx, meta, "another")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	_, err = SessionKey(ctx, &mockMetadata{err: errors.New("disk full")}, "secret")
	assert.Error(t, err)
}

func TestEncryptedStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := &mockSessionStorage{}
	store := NewEncryptedStore(backend, testKey(t))

	session := &storage.Session{
		Email:        "shopper@example.com",
		UserID:       "u-1",
		Role:         "customer",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    1700000000,
	}
	require.NoError(t, store.Save(ctx, session))

	// В хранилище токены лежат зашифрованными
	require.NotNil(t, backend.data)
	assert.NotEqual(t, "access-token", backend.data.AccessToken)
	assert.NotEqual(t, "refresh-token", backend.data.RefreshToken)
	assert.Equal(t, "shopper@example.com", backend.data.Email)
	// входящая структура не изменилась
	assert.Equal(t, "access-token", session.AccessToken)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, store.Delete(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestEncryptedStore_WrongKey(t *testing.T) {
	ctx := context.Background()
	backend := &mockSessionStorage{}

	require.NoError(t, NewEncryptedStore(backend, testKey(t)).Save(ctx, &storage.Session{AccessToken: "a", RefreshToken: "r"}))

	_, err := NewEncryptedStore(backend, testKey(t)).Load(ctx)
	assert.ErrorContains(t, err, "failed to decrypt access token")
}

func TestEncryptedStore_Errors(t *testing.T) {
	ctx := context.Background()
	key := testKey(t)

	assert.Error(t, NewEncryptedStore(&mockSessionStorage{}, key).Save(ctx, nil))

	saveErr := errors.New("save failed")
	err := NewEncryptedStore(&mockSessionStorage{saveErr: saveErr}, key).Save(ctx, &storage.Session{AccessToken: "a"})
	assert.ErrorIs(t, err, saveErr)

	getErr := errors.New("get failed")
	_, err = NewEncryptedStore(&mockSessionStorage{getErr: getErr}, key).Load(ctx)
	assert.ErrorIs(t, err, getErr)

	// Пустой refresh token не шифруется
	backend := &mockSessionStorage{}
	store := NewEncryptedStore(backend, key)
	require.NoError(t, store.Save(ctx, &storage.Session{AccessToken: "a"}))
	assert.Empty(t, backend.data.RefreshToken)
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.RefreshToken)
}
