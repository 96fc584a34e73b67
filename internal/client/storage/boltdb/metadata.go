package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/marketsync/internal/crypto"
)

const (
	keyInstallSalt    = "install_salt"
	keyLastSyncPrefix = "last_sync:"
)

// InstallSalt returns the per-install salt, generating it on first call
func (s *Storage) InstallSalt(ctx context.Context) ([]byte, error) {
	var salt []byte

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if stored := bucket.Get([]byte(keyInstallSalt)); stored != nil {
			// значение действительно только внутри транзакции
			salt = append([]byte(nil), stored...)
			return nil
		}

		fresh, err := crypto.NewSalt()
		if err != nil {
			return err
		}
		if err := bucket.Put([]byte(keyInstallSalt), fresh); err != nil {
			return fmt.Errorf("failed to save install salt: %w", err)
		}
		salt = fresh
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get install salt: %w", err)
	}

	return salt, nil
}

// SaveLastSync saves the time of the last successful pass of a domain
func (s *Storage) SaveLastSync(ctx context.Context, domain string, at time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем время в bytes
		ts := make([]byte, 8)
		binary.BigEndian.PutUint64(ts, uint64(at.UnixNano()))

		if err := bucket.Put([]byte(keyLastSyncPrefix+domain), ts); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the time of the last successful pass of a domain
// Returns zero time if the domain was never synchronized
func (s *Storage) GetLastSync(ctx context.Context, domain string) (time.Time, error) {
	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		ts := bucket.Get([]byte(keyLastSyncPrefix + domain))
		if ts == nil {
			return nil
		}

		at = time.Unix(0, int64(binary.BigEndian.Uint64(ts)))
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return at, nil
}
