package sync

import (
	"context"

	"github.com/iudanet/marketsync/internal/models"
)

//go:generate moq -out product_getter_mock.go . ProductGetter
//go:generate moq -out cart_remote_mock.go . CartRemote

// ProductGetter fetches products by id.
type ProductGetter interface {
	GetProducts(ctx context.Context, ids []string) ([]models.Product, error)
}

// ProductLister fetches the whole catalog.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// OrderLister fetches the user's orders.
type OrderLister interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// NotificationLister fetches the user's notifications.
type NotificationLister interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
}

// CartRemote is the part of the remote store cart write-back needs.
type CartRemote interface {
	UpdateCartItem(ctx context.Context, productID string, quantity int) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, productID string) error
}

// CartProducts returns the source of a cart synchronizer: the products the
// cart lines refer to.
func CartProducts(client ProductGetter) Source[models.Product] {
	return SourceFunc[models.Product](func(ctx context.Context, keys []string) (map[string]models.Product, error) {
		out := make(map[string]models.Product, len(keys))
		if len(keys) == 0 {
			return out, nil
		}
		products, err := client.GetProducts(ctx, keys)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			out[p.ID] = p
		}
		return out, nil
	})
}

// AllProducts returns a source that lists the whole catalog.
func AllProducts(client ProductLister) Source[models.Product] {
	return SourceFunc[models.Product](func(ctx context.Context, _ []string) (map[string]models.Product, error) {
		products, err := client.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		out := make(map[string]models.Product, len(products))
		for _, p := range products {
			out[p.ID] = p
		}
		return out, nil
	})
}

// Orders returns a source listing the user's orders.
func Orders(client OrderLister) Source[models.Order] {
	return SourceFunc[models.Order](func(ctx context.Context, _ []string) (map[string]models.Order, error) {
		orders, err := client.ListOrders(ctx)
		if err != nil {
			return nil, err
		}
		out := make(map[string]models.Order, len(orders))
		for _, o := range orders {
			out[o.ID] = o
		}
		return out, nil
	})
}

// Notifications returns a source listing the user's notifications.
func Notifications(client NotificationLister) Source[models.Notification] {
	return SourceFunc[models.Notification](func(ctx context.Context, _ []string) (map[string]models.Notification, error) {
		list, err := client.ListNotifications(ctx)
		if err != nil {
			return nil, err
		}
		out := make(map[string]models.Notification, len(list))
		for _, n := range list {
			out[n.ID] = n
		}
		return out, nil
	})
}

// CartWriteBack mirrors clamps and removals into the remote cart.
type CartWriteBack struct {
	Remote CartRemote
}

// Persist implements WriteBack.
func (w CartWriteBack) Persist(ctx context.Context, d Decision[models.CartItem]) error {
	switch d.Kind {
	case Remove:
		return w.Remote.RemoveCartItem(ctx, d.Key)
	case Clamp:
		_, err := w.Remote.UpdateCartItem(ctx, d.Key, d.Quantity)
		return err
	}
	return nil
}
