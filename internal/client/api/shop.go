package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/pkg/api"
)

// IdempotencyHeader несёт ключ идемпотентности создания заказа
const IdempotencyHeader = api.IdempotencyHeader

// ListProducts возвращает каталог
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, call{op: "list products", method: http.MethodGet, path: "/products", result: &products}); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProducts fetches the authoritative records for ids. Unknown ids are
// simply absent from the result.
func (c *Client) GetProducts(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))

	var products []models.Product
	if err := c.do(ctx, call{op: "get products", method: http.MethodGet, path: "/products?" + q.Encode(), result: &products}); err != nil {
		return nil, err
	}
	return products, nil
}

// UpsertProduct создает товар (пустой id) или изменяет существующий. Только для администратора.
func (c *Client) UpsertProduct(ctx context.Context, id string, req api.UpsertProductRequest) (*models.Product, error) {
	cl := call{op: "upsert product", method: http.MethodPost, path: "/products", body: req}
	if id != "" {
		cl.method = http.MethodPut
		cl.path = "/products/" + url.PathEscape(id)
	}
	var product models.Product
	cl.result = &product
	if err := c.do(ctx, cl); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCart возвращает серверную корзину пользователя
func (c *Client) ListCart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, call{op: "list cart", method: http.MethodGet, path: "/cart", result: &items}); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem добавляет позицию в серверную корзину
func (c *Client) AddCartItem(ctx context.Context, req api.AddCartItemRequest) (*models.CartItem, error) {
	var item models.CartItem
	if err := c.do(ctx, call{op: "add cart item", method: http.MethodPost, path: "/cart", body: req, result: &item}); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem изменяет количество позиции
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := c.do(ctx, call{
		op: "update cart item", method: http.MethodPatch, path: "/cart/" + url.PathEscape(productID),
		body: api.UpdateCartItemRequest{Quantity: quantity}, result: &item,
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem удаляет позицию из серверной корзины
func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	return c.do(ctx, call{op: "remove cart item", method: http.MethodDelete, path: "/cart/" + url.PathEscape(productID)})
}

// ClearCart очищает серверную корзину
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, call{op: "clear cart", method: http.MethodDelete, path: "/cart"})
}

// ValidateVoucher проверяет промокод для подытога
func (c *Client) ValidateVoucher(ctx context.Context, req api.ValidateVoucherRequest) (*api.ValidateVoucherResponse, error) {
	var resp api.ValidateVoucherResponse
	if err := c.do(ctx, call{op: "validate voucher", method: http.MethodPost, path: "/vouchers/validate", body: req, result: &resp}); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMaintenance возвращает текущие настройки режима обслуживания
func (c *Client) GetMaintenance(ctx context.Context) (*models.Maintenance, error) {
	var m models.Maintenance
	if err := c.do(ctx, call{op: "get maintenance", method: http.MethodGet, path: "/maintenance", result: &m}); err != nil {
		return nil, err
	}
	return &m, nil
}

// SetMaintenance заменяет настройки режима обслуживания. Только для администратора.
func (c *Client) SetMaintenance(ctx context.Context, req api.MaintenanceRequest) (*models.Maintenance, error) {
	var m models.Maintenance
	if err := c.do(ctx, call{op: "set maintenance", method: http.MethodPut, path: "/maintenance", body: req, result: &m}); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateOrder создает заказ. Каждый вызов получает свой ключ идемпотентности,
// повтор одного вызова сервер не исполнит дважды.
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	err := c.do(ctx, call{
		op: "create order", method: http.MethodPost, path: "/orders", body: req, result: &order,
		headers: map[string]string{IdempotencyHeader: uuid.NewString()},
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders возвращает заказы пользователя (все заказы для администратора)
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, call{op: "list orders", method: http.MethodGet, path: "/orders", result: &orders}); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus меняет статус заказа. Только для администратора.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := c.do(ctx, call{
		op: "update order status", method: http.MethodPatch, path: "/orders/" + url.PathEscape(orderID) + "/status",
		body: api.UpdateOrderStatusRequest{Status: status}, result: &order,
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
