package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	salt, err := NewSalt()
	require.NoError(t, err)
	key, err := DeriveSessionKey("local-secret", salt)
	require.NoError(t, err)
	return key
}

func TestSeal(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name      string
		errMsg    string
		plaintext []byte
		key       []byte
		wantErr   bool
	}{
		{
			name:      "successful encryption",
			plaintext: []byte("eyJhbGciOiJIUzI1NiJ9.payload.sig"),
			key:       key,
		},
		{
			name:      "empty plaintext",
			plaintext: []byte{},
			key:       key,
			wantErr:   true,
			errMsg:    "plaintext cannot be empty",
		},
		{
			name:      "invalid key length",
			plaintext: []byte("test"),
			key:       make([]byte, 16),
			wantErr:   true,
			errMsg:    "encryption key must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := Seal(tt.plaintext, tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, len(sealed), NonceSize)

			opened, err := Open(sealed, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, opened)
		})
	}
}

func TestSeal_Randomness(t *testing.T) {
	key := testKey(t)

	a, err := Seal([]byte("same"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("same"), key)
	require.NoError(t, err)

	// Разные nonce дают разный шифротекст
	assert.False(t, bytes.Equal(a, b))
}

func TestOpen_WrongKey(t *testing.T) {
	sealed, err := Seal([]byte("token"), testKey(t))
	require.NoError(t, err)

	_, err = Open(sealed, testKey(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")

	_, err = Open([]byte("short"), testKey(t))
	require.Error(t, err)
}

func TestSealString_RoundTrip(t *testing.T) {
	key := testKey(t)

	encoded, err := SealString("refresh-token", key)
	require.NoError(t, err)

	decoded, err := OpenString(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", decoded)

	_, err = OpenString("not base64!!", key)
	require.Error(t, err)
}

func TestDeriveSessionKey(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)

	k1, err := DeriveSessionKey("secret", salt)
	require.NoError(t, err)
	k2, err := DeriveSessionKey("secret", salt)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, KeyLen)

	other, err := NewSalt()
	require.NoError(t, err)
	k3, err := DeriveSessionKey("secret", other)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	_, err = DeriveSessionKey("", salt)
	require.Error(t, err)
	_, err = DeriveSessionKey("secret", salt[:10])
	require.Error(t, err)
}

func TestHashToken(t *testing.T) {
	hash := HashToken("abc")
	assert.Len(t, hash, 64)
	assert.True(t, TokenMatches("abc", hash))
	assert.False(t, TokenMatches("abd", hash))
}
