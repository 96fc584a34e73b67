package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

const maxIdempotencyKeyLen = 128

// OrderHandler создает заказы и меняет их статус
type OrderHandler struct {
	responder
	orders      storage.OrderStorage
	products    storage.ProductStorage
	shop        *ShopHandler
	maintenance *MaintenanceHandler
	clock       clockwork.Clock
	notifier    notifier
}

// NewOrderHandler создает handler заказов. Промокоды проверяются так же,
// как в ShopHandler, режим обслуживания через MaintenanceHandler.
func NewOrderHandler(logger *slog.Logger, orders storage.OrderStorage, products storage.ProductStorage, notifications storage.NotificationStorage, shop *ShopHandler, maintenance *MaintenanceHandler, clock clockwork.Clock) *OrderHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &OrderHandler{
		responder:   responder{logger: logger},
		orders:      orders,
		products:    products,
		shop:        shop,
		maintenance: maintenance,
		clock:       clock,
		notifier:    notifier{store: notifications, clock: clock, logger: logger},
	}
}

// Create обрабатывает POST /orders.
// Повтор с тем же Idempotency-Key возвращает уже созданный заказ.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	key := strings.TrimSpace(r.Header.Get(api.IdempotencyHeader))
	if key == "" || len(key) > maxIdempotencyKeyLen {
		h.sendError(w, api.IdempotencyHeader+" header is required", http.StatusBadRequest)
		return
	}

	if existing, err := h.orders.GetOrderByIdempotencyKey(ctx, userID, key); err == nil {
		h.logger.InfoContext(ctx, "order replayed", slog.String("order_id", existing.ID))
		h.sendJSON(w, existing, http.StatusOK)
		return
	} else if !errors.Is(err, storage.ErrOrderNotFound) {
		h.internalError(w, r, "failed to look up order", err)
		return
	}

	if m, blocked := h.maintenance.Blocked(r); blocked {
		h.sendError(w, m.DisplayMessage(), http.StatusServiceUnavailable)
		return
	}

	var req api.CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validateOrderRequest(req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, msg, err := h.priceItems(r, req.Items)
	if err != nil {
		h.internalError(w, r, "failed to price order", err)
		return
	}
	if msg != "" {
		h.sendError(w, msg, http.StatusConflict)
		return
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPrice * int64(it.Quantity)
	}

	now := h.clock.Now()
	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
		Subtotal:        subtotal,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if req.VoucherCode != "" {
		code := validation.NormalizeVoucherCode(req.VoucherCode)
		_, discount, ok := h.shop.applyVoucher(w, r, code, subtotal)
		if !ok {
			return
		}
		order.VoucherCode = code
		order.Discount = discount
	}
	order.Total = order.Subtotal - order.Discount

	if err := h.orders.PlaceOrder(ctx, order, key); err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientStock):
			h.sendError(w, err.Error(), http.StatusConflict)
		case errors.Is(err, storage.ErrVoucherUsed):
			h.sendError(w, models.ErrVoucherUsed.Error(), http.StatusUnprocessableEntity)
		default:
			h.internalError(w, r, "failed to place order", err)
		}
		return
	}

	h.notifier.send(r, userID, "Order placed", fmt.Sprintf("Order %s was placed.", shortID(order.ID)))
	h.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Total))
	h.sendJSON(w, order, http.StatusCreated)
}

// List обрабатывает GET /orders. Администратор видит все заказы.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	if IsAdmin(r.Context()) {
		userID = ""
	}

	orders, err := h.orders.ListOrders(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list orders", err)
		return
	}
	h.sendJSON(w, orders, http.StatusOK)
}

// UpdateStatus обрабатывает PATCH /orders/{id}/status (admin)
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req api.UpdateOrderStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !req.Status.Valid() {
		h.sendError(w, fmt.Sprintf("unknown order status %q", req.Status), http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			h.sendError(w, notFound("order", id), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to update order status", err)
		return
	}

	h.notifier.send(r, order.UserID, "Order "+string(order.Status), fmt.Sprintf("Order %s is now %s.", shortID(order.ID), order.Status))
	h.sendJSON(w, order, http.StatusOK)
}

// priceItems берет цены и названия из каталога. Непустое сообщение
// означает отказ, который нужно показать клиенту.
func (h *OrderHandler) priceItems(r *http.Request, reqItems []api.OrderItemRequest) ([]models.OrderItem, string, error) {
	ids := make([]string, 0, len(reqItems))
	for _, it := range reqItems {
		ids = append(ids, it.ProductID)
	}

	products, err := h.products.GetProducts(r.Context(), ids)
	if err != nil {
		return nil, "", err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]models.OrderItem, 0, len(reqItems))
	for _, it := range reqItems {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, notFound("product", it.ProductID), nil
		}
		if it.Quantity > p.Stock {
			return nil, insufficientStock(&p), nil
		}
		items = append(items, models.OrderItem{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price, Quantity: it.Quantity})
	}
	return items, "", nil
}

func validateOrderRequest(req api.CreateOrderRequest) error {
	if len(req.Items) == 0 {
		return errors.New("order has no items")
	}
	seen := make(map[string]struct{}, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID == "" {
			return errors.New("product id cannot be empty")
		}
		if _, dup := seen[it.ProductID]; dup {
			return fmt.Errorf("product %s is listed twice", it.ProductID)
		}
		seen[it.ProductID] = struct{}{}
		if err := validation.ValidateQuantity(it.Quantity); err != nil {
			return err
		}
	}
	if err := validation.ValidateText("shipping address", req.ShippingAddress, validation.MaxReasonLen); err != nil {
		return err
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return errors.New("payment method cannot be empty")
	}
	return nil
}

// shortID первые 8 символов UUID для текста уведомлений
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
