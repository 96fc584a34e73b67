package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/marketsync/internal/crypto"
)

func TestInstallSalt_Stable(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first, err := store.InstallSalt(ctx)
	require.NoError(t, err)
	assert.Len(t, first, crypto.SaltSize)

	second, err := store.InstallSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSaveAndGetLastSync(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Домен ещё не синхронизировался
	at, err := store.GetLastSync(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	want := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, store.SaveLastSync(ctx, "cart", want))

	got, err := store.GetLastSync(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	other, err := store.GetLastSync(ctx, "orders")
	require.NoError(t, err)
	assert.True(t, other.IsZero())
}

func TestLastSync_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	}))

	_, err := store.GetLastSync(ctx, "cart")
	assert.ErrorContains(t, err, "metadata bucket not found")

	err = store.SaveLastSync(ctx, "cart", time.Now())
	assert.ErrorContains(t, err, "metadata bucket not found")

	_, err = store.InstallSalt(ctx)
	assert.ErrorContains(t, err, "metadata bucket not found")
}
