package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/marketsync/internal/models"
)

var cartKey = []byte("snapshot")

// SaveCart replaces the stored cart snapshot
func (s *Storage) SaveCart(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}
		if err := bucket.Put(cartKey, data); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		return nil
	})
}

// LoadCart returns the stored snapshot, empty if nothing was saved yet
func (s *Storage) LoadCart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		data := bucket.Get(cartKey)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("failed to unmarshal cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
