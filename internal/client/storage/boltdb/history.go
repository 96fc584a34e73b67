package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/marketsync/internal/models"
)

var (
	ordersKey        = []byte("orders")
	notificationsKey = []byte("notifications")
)

// SaveOrders replaces the stored order list
func (s *Storage) SaveOrders(ctx context.Context, orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	return s.putHistory(ordersKey, orders)
}

// LoadOrders returns the stored order list, empty if nothing was saved yet
func (s *Storage) LoadOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.getHistory(ordersKey, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveNotifications replaces the stored notification list
func (s *Storage) SaveNotifications(ctx context.Context, list []models.Notification) error {
	if list == nil {
		list = []models.Notification{}
	}
	return s.putHistory(notificationsKey, list)
}

// LoadNotifications returns the stored notification list
func (s *Storage) LoadNotifications(ctx context.Context) ([]models.Notification, error) {
	var list []models.Notification
	if err := s.getHistory(notificationsKey, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Storage) putHistory(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

// getHistory оставляет v нетронутым, если ключ еще не записан
func (s *Storage) getHistory(key []byte, v any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}
		data := bucket.Get(key)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
		return nil
	})
}
