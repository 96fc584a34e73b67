// Package checkout turns the cart into an order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/marketsync/internal/client/cart"
	"github.com/iudanet/marketsync/internal/client/maintenance"
	"github.com/iudanet/marketsync/internal/client/notify"
	clientsync "github.com/iudanet/marketsync/internal/client/sync"
	"github.com/iudanet/marketsync/internal/client/voucher"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

// ErrCartChanged is returned when the pre-checkout reconciliation changed the
// cart; the user has to review it before ordering.
var ErrCartChanged = errors.New("cart changed, please review it before checkout")

//go:generate moq -out deps_mock.go . Gate Cart Reconciler Vouchers Orders

// Gate refuses actions during maintenance.
type Gate interface {
	Check(action string) error
}

// Cart is the shopper's cart.
type Cart interface {
	Items() []models.CartItem
	TotalValue() int64
	Clear(ctx context.Context) error
}

// Reconciler runs one cart reconciliation pass.
type Reconciler interface {
	Pass(ctx context.Context) error
}

// Vouchers validates promo codes.
type Vouchers interface {
	Validate(ctx context.Context, code string, subtotal int64) (*voucher.Applied, error)
}

// Orders creates orders remotely.
type Orders interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*models.Order, error)
}

// Request данные оформления заказа
type Request struct {
	Voucher         string
	ShippingAddress string
	PaymentMethod   string
}

// Receipt результат оформления
type Receipt struct {
	Order   *models.Order
	Voucher *voucher.Applied // nil без промокода
}

// Service оформляет заказы
type Service struct {
	gate       Gate
	cart       Cart
	reconciler Reconciler
	vouchers   Vouchers
	orders     Orders
	publisher  notify.Publisher
	logger     *slog.Logger
}

// NewService создает сервис оформления
func NewService(gate Gate, c Cart, reconciler Reconciler, vouchers Vouchers, orders Orders, publisher notify.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gate: gate, cart: c, reconciler: reconciler, vouchers: vouchers, orders: orders, publisher: publisher, logger: logger}
}

// PlaceOrder checks the maintenance gate before anything else, refreshes
// the cart, applies the voucher, creates the order and empties the cart.
func (s *Service) PlaceOrder(ctx context.Context, req Request) (*Receipt, error) {
	if err := s.gate.Check(maintenance.ActionCheckout); err != nil {
		return nil, err
	}
	if err := validation.ValidateText("shipping address", req.ShippingAddress, validation.MaxReasonLen); err != nil {
		return nil, err
	}
	if err := validation.ValidateText("payment method", req.PaymentMethod, 64); err != nil {
		return nil, err
	}

	before := s.cart.Items()
	if len(before) == 0 {
		return nil, cart.ErrEmpty
	}
	totalBefore := s.cart.TotalValue()

	if err := s.reconciler.Pass(ctx); err != nil && !errors.Is(err, clientsync.ErrInFlight) {
		return nil, fmt.Errorf("failed to refresh cart: %w", err)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, cart.ErrEmpty
	}
	if s.cart.TotalValue() != totalBefore || !sameLines(before, items) {
		return nil, ErrCartChanged
	}

	subtotal := s.cart.TotalValue()
	var applied *voucher.Applied
	if req.Voucher != "" {
		var err error
		applied, err = s.vouchers.Validate(ctx, req.Voucher, subtotal)
		if err != nil {
			return nil, err
		}
	}

	// режим обслуживания мог включиться, пока обновлялась корзина
	if err := s.gate.Check(maintenance.ActionOrder); err != nil {
		return nil, err
	}

	orderReq := api.CreateOrderRequest{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           make([]api.OrderItemRequest, 0, len(items)),
	}
	if applied != nil {
		orderReq.VoucherCode = applied.Voucher.Code
	}
	for _, it := range items {
		orderReq.Items = append(orderReq.Items, api.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := s.orders.CreateOrder(ctx, orderReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.logger.Info("Order placed", "order_id", order.ID, "total", order.Total)

	if err := s.cart.Clear(ctx); err != nil {
		// заказ уже создан; корзину догонит синхронизация
		s.logger.Warn("Failed to clear cart after checkout", "order_id", order.ID, "error", err)
	}

	s.publisher.Publish(notify.Notice{
		Level:   notify.LevelSuccess,
		Domain:  "orders",
		Key:     order.ID,
		Message: fmt.Sprintf("Order %s placed", order.ID),
	})
	return &Receipt{Order: order, Voucher: applied}, nil
}

func sameLines(a, b []models.CartItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ProductID != b[i].ProductID || a[i].Quantity != b[i].Quantity {
			return false
		}
	}
	return true
}
