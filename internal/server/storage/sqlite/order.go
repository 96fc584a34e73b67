package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

const orderColumns = `id, user_id, status, voucher_code, shipping_address, payment_method,
	subtotal, discount, total, created_at, updated_at`

// PlaceOrder stores the order and applies its side effects in one transaction
func (s *Storage) PlaceOrder(ctx context.Context, order *models.Order, idempotencyKey string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, it := range order.Items {
		result, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - ?, updated_at = ? WHERE id = ? AND stock >= ?`,
			it.Quantity, order.CreatedAt, it.ProductID, it.Quantity)
		if err != nil {
			return fmt.Errorf("failed to reserve stock: %w", err)
		}
		if err := rowsAffected(result, storage.ErrInsufficientStock); err != nil {
			return fmt.Errorf("%s: %w", it.Name, err)
		}
	}

	if order.VoucherCode != "" {
		result, err := tx.ExecContext(ctx, `UPDATE vouchers SET used = 1 WHERE code = ? AND used = 0`, order.VoucherCode)
		if err != nil {
			return fmt.Errorf("failed to consume voucher: %w", err)
		}
		if err := rowsAffected(result, storage.ErrVoucherUsed); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, status, voucher_code, shipping_address, payment_method,
			subtotal, discount, total, idempotency_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.UserID, order.Status, order.VoucherCode, order.ShippingAddress, order.PaymentMethod,
		order.Subtotal, order.Discount, order.Total, idempotencyKey, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, it := range order.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, name, unit_price, quantity) VALUES (?, ?, ?, ?, ?)`,
			order.ID, it.ProductID, it.Name, it.UnitPrice, it.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, order.UserID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

// GetOrderByIdempotencyKey finds an order created earlier with the same key
func (s *Storage) GetOrderByIdempotencyKey(ctx context.Context, userID, key string) (*models.Order, error) {
	return s.getOrder(ctx, `WHERE user_id = ? AND idempotency_key = ?`, userID, key)
}

// GetOrder retrieves an order with its items
func (s *Storage) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.getOrder(ctx, `WHERE id = ?`, orderID)
}

// ListOrders returns orders newest first
func (s *Storage) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any
	if userID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	for i := range orders {
		if orders[i].Items, err = s.orderItems(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// UpdateOrderStatus sets a new status and returns the updated order
func (s *Storage) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	result, err := s.db.ExecContext(ctx, `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now(), orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if err := rowsAffected(result, storage.ErrOrderNotFound); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, orderID)
}

func (s *Storage) getOrder(ctx context.Context, where string, args ...any) (*models.Order, error) {
	o := &models.Order{}
	row := s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders `+where, args...)
	if err := scanOrder(row, o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := s.orderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (s *Storage) orderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, name, unit_price, quantity FROM order_items WHERE order_id = ? ORDER BY rowid`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return items, nil
}

func scanOrder(row scanner, o *models.Order) error {
	return row.Scan(&o.ID, &o.UserID, &o.Status, &o.VoucherCode, &o.ShippingAddress, &o.PaymentMethod,
		&o.Subtotal, &o.Discount, &o.Total, &o.CreatedAt, &o.UpdatedAt)
}
