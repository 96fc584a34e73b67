package storage

import (
	"context"

	"github.com/iudanet/marketsync/internal/models"
)

// CartStorage keeps the last committed cart so a restarted client can show it
// before the first reconciliation pass.
type CartStorage interface {
	SaveCart(ctx context.Context, items []models.CartItem) error
	LoadCart(ctx context.Context) ([]models.CartItem, error)
}

// HistoryStorage keeps the last synchronized orders and notifications. A
// restarted client compares against them instead of announcing everything again.
type HistoryStorage interface {
	SaveOrders(ctx context.Context, orders []models.Order) error
	LoadOrders(ctx context.Context) ([]models.Order, error)
	SaveNotifications(ctx context.Context, list []models.Notification) error
	LoadNotifications(ctx context.Context) ([]models.Notification, error)
}
