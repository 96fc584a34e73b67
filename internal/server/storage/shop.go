package storage

import (
	"context"

	"github.com/iudanet/marketsync/internal/models"
)

// ProductStorage defines catalog persistence
type ProductStorage interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	// GetProducts returns the products with the given ids; unknown ids are skipped
	GetProducts(ctx context.Context, ids []string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	// UpsertProduct creates the product or replaces every field of an existing one
	UpsertProduct(ctx context.Context, product *models.Product) error
}

// CartStorage defines server-side cart persistence. Returned lines carry the
// current product record.
type CartStorage interface {
	ListCart(ctx context.Context, userID string) ([]models.CartItem, error)
	GetCartItem(ctx context.Context, userID, productID string) (*models.CartItem, error)
	// SaveCartItem inserts the line or replaces quantity and unit price of an existing one
	SaveCartItem(ctx context.Context, userID string, item *models.CartItem) error
	// DeleteCartItem returns ErrCartItemNotFound for a missing line
	DeleteCartItem(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

// VoucherStorage defines voucher persistence
type VoucherStorage interface {
	// GetVoucher returns ErrVoucherNotFound for an unknown code
	GetVoucher(ctx context.Context, code string) (*models.Voucher, error)
	SaveVoucher(ctx context.Context, voucher *models.Voucher) error
}

// MaintenanceStorage keeps the single maintenance settings row
type MaintenanceStorage interface {
	// GetMaintenance returns settings with mode off when nothing was saved yet
	GetMaintenance(ctx context.Context) (*models.Maintenance, error)
	SaveMaintenance(ctx context.Context, m *models.Maintenance) error
}

// OrderStorage defines order persistence
type OrderStorage interface {
	// PlaceOrder atomically decrements stock, consumes the voucher (if any),
	// stores the order under the idempotency key and clears the user's cart.
	// Returns ErrInsufficientStock or ErrVoucherUsed and changes nothing on conflict.
	PlaceOrder(ctx context.Context, order *models.Order, idempotencyKey string) error

	// GetOrderByIdempotencyKey returns ErrOrderNotFound when the key was never used
	GetOrderByIdempotencyKey(ctx context.Context, userID, key string) (*models.Order, error)

	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// ListOrders returns orders of userID newest first; empty userID lists every order
	ListOrders(ctx context.Context, userID string) ([]models.Order, error)

	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error)
}
