package sync

import (
	"fmt"
	"strconv"

	"github.com/iudanet/marketsync/internal/client/cache"
	"github.com/iudanet/marketsync/internal/models"
)

// StockPolicy tunes how cart lines follow product stock.
type StockPolicy struct {
	// RemoveAtOrBelow: строка удаляется при остатке не выше порога
	RemoveAtOrBelow int
	// ClampToStock: при нехватке остатка уменьшать количество; иначе строка удаляется
	ClampToStock bool
}

// DefaultStockPolicy removes lines at zero stock and clamps otherwise.
func DefaultStockPolicy() StockPolicy {
	return StockPolicy{RemoveAtOrBelow: 0, ClampToStock: true}
}

// CartPolicy reconciles cart lines against products.
type CartPolicy struct {
	Stock StockPolicy
}

// Decide implements Policy.
func (p CartPolicy) Decide(item cache.Item[models.CartItem], product models.Product, found bool) Decision[models.CartItem] {
	line := item.Payload
	subject := line.Product.Name
	if subject == "" {
		subject = line.ProductID
	}

	if !found {
		return Decision[models.CartItem]{Kind: Remove, Reason: ReasonUnavailable, Subject: subject}
	}
	if product.Stock <= p.Stock.RemoveAtOrBelow {
		return Decision[models.CartItem]{Kind: Remove, Reason: ReasonOutOfStock, Subject: subject}
	}

	refreshed := line
	refreshed.Product = product

	if line.Quantity > product.Stock {
		if !p.Stock.ClampToStock {
			return Decision[models.CartItem]{Kind: Remove, Reason: ReasonOutOfStock, Subject: subject}
		}
		// цена и название обновляются вместе с количеством без отдельного уведомления
		refreshed.Quantity = product.Stock
		return Decision[models.CartItem]{Kind: Clamp, Reason: ReasonClamped, Subject: subject, Payload: refreshed, Quantity: product.Stock}
	}

	if !line.Product.SameDisplay(product) {
		return Decision[models.CartItem]{Kind: Update, Reason: ReasonInfoUpdated, Subject: product.Name, Payload: refreshed}
	}
	if !sameProduct(line.Product, product) {
		return Decision[models.CartItem]{Kind: Update, Payload: refreshed, Silent: true}
	}
	return KeepItem[models.CartItem]()
}

// LocalFingerprint implements Policy.
func (CartPolicy) LocalFingerprint(item cache.Item[models.CartItem]) string {
	override := "-"
	if item.Payload.UnitPrice != nil {
		override = strconv.FormatInt(*item.Payload.UnitPrice, 10)
	}
	return fmt.Sprintf("%d|%s|%s", item.Payload.Quantity, override, productToken(item.Payload.Product))
}

// RemoteFingerprint implements Policy.
func (CartPolicy) RemoteFingerprint(_ string, product models.Product) string {
	return productToken(product)
}

// ProductsPolicy keeps the catalog in line with the remote product list.
type ProductsPolicy struct{}

// Decide implements Policy.
func (ProductsPolicy) Decide(item cache.Item[models.Product], product models.Product, found bool) Decision[models.Product] {
	if !found {
		return Decision[models.Product]{Kind: Remove, Reason: ReasonUnavailable, Subject: item.Payload.Name}
	}
	if !item.Payload.SameDisplay(product) {
		return Decision[models.Product]{Kind: Update, Reason: ReasonInfoUpdated, Subject: product.Name, Payload: product}
	}
	if !sameProduct(item.Payload, product) {
		return Decision[models.Product]{Kind: Update, Payload: product, Silent: true}
	}
	return KeepItem[models.Product]()
}

// Adopt implements Adopter. New products appear without a notice.
func (ProductsPolicy) Adopt(_ string, product models.Product) (Decision[models.Product], bool) {
	return Decision[models.Product]{Payload: product, Silent: true}, true
}

// LocalFingerprint implements Policy.
func (ProductsPolicy) LocalFingerprint(item cache.Item[models.Product]) string {
	return productToken(item.Payload)
}

// RemoteFingerprint implements Policy.
func (ProductsPolicy) RemoteFingerprint(_ string, product models.Product) string {
	return productToken(product)
}

// OrdersPolicy follows order status changes.
type OrdersPolicy struct{}

// Decide implements Policy.
func (OrdersPolicy) Decide(item cache.Item[models.Order], order models.Order, found bool) Decision[models.Order] {
	subject := "Order " + item.Key
	if !found {
		return Decision[models.Order]{Kind: Remove, Reason: ReasonUnavailable, Subject: subject}
	}
	if item.Payload.Status != order.Status {
		return Decision[models.Order]{Kind: Update, Reason: ReasonOrderStatus + " to " + string(order.Status), Subject: subject, Payload: order}
	}
	if orderToken(item.Payload) != orderToken(order) {
		return Decision[models.Order]{Kind: Update, Payload: order, Silent: true}
	}
	return KeepItem[models.Order]()
}

// Adopt implements Adopter.
func (OrdersPolicy) Adopt(_ string, order models.Order) (Decision[models.Order], bool) {
	return Decision[models.Order]{Payload: order, Silent: true}, true
}

// LocalFingerprint implements Policy.
func (OrdersPolicy) LocalFingerprint(item cache.Item[models.Order]) string {
	return orderToken(item.Payload)
}

// RemoteFingerprint implements Policy.
func (OrdersPolicy) RemoteFingerprint(_ string, order models.Order) string {
	return orderToken(order)
}

// NotificationsPolicy mirrors the inbox. Only new notifications are announced.
type NotificationsPolicy struct{}

// Decide implements Policy.
func (NotificationsPolicy) Decide(item cache.Item[models.Notification], n models.Notification, found bool) Decision[models.Notification] {
	if !found {
		return Decision[models.Notification]{Kind: Remove, Silent: true}
	}
	if notificationToken(item.Payload) != notificationToken(n) {
		return Decision[models.Notification]{Kind: Update, Payload: n, Silent: true}
	}
	return KeepItem[models.Notification]()
}

// Adopt implements Adopter. Already read notifications are adopted silently.
func (NotificationsPolicy) Adopt(_ string, n models.Notification) (Decision[models.Notification], bool) {
	return Decision[models.Notification]{Payload: n, Reason: ReasonNewNotification, Subject: n.Title, Silent: n.Read}, true
}

// LocalFingerprint implements Policy.
func (NotificationsPolicy) LocalFingerprint(item cache.Item[models.Notification]) string {
	return notificationToken(item.Payload)
}

// RemoteFingerprint implements Policy.
func (NotificationsPolicy) RemoteFingerprint(_ string, n models.Notification) string {
	return notificationToken(n)
}

func sameProduct(a, b models.Product) bool {
	return productToken(a) == productToken(b)
}

func productToken(p models.Product) string {
	return fmt.Sprintf("%d|%d|%s|%s|%s|%d", p.Price, p.Stock, p.Name, p.Category, p.ImageURL, p.UpdatedAt.UnixNano())
}

func orderToken(o models.Order) string {
	return fmt.Sprintf("%s|%d|%d", o.Status, o.Total, o.UpdatedAt.UnixNano())
}

func notificationToken(n models.Notification) string {
	return fmt.Sprintf("%t|%s|%s", n.Read, n.Title, n.Body)
}
