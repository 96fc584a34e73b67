package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

const cartSelect = `
	SELECT c.product_id, c.quantity, c.unit_price, c.added_at,
		p.id, p.name, p.category, p.image_url, p.price, p.stock, p.updated_at
	FROM cart_items c
	JOIN products p ON p.id = c.product_id
`

func scanCartItem(row scanner, it *models.CartItem) error {
	var unitPrice sql.NullInt64
	p := &it.Product
	if err := row.Scan(&it.ProductID, &it.Quantity, &unitPrice, &it.AddedAt,
		&p.ID, &p.Name, &p.Category, &p.ImageURL, &p.Price, &p.Stock, &p.UpdatedAt); err != nil {
		return err
	}
	if unitPrice.Valid {
		v := unitPrice.Int64
		it.UnitPrice = &v
	}
	return nil
}

// ListCart returns the cart lines of a user in insertion order
func (s *Storage) ListCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	rows, err := s.db.QueryContext(ctx, cartSelect+` WHERE c.user_id = ? ORDER BY c.added_at, c.product_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	items := []models.CartItem{}
	for rows.Next() {
		var it models.CartItem
		if err := scanCartItem(rows, &it); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// GetCartItem returns one cart line
func (s *Storage) GetCartItem(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	it := &models.CartItem{}
	row := s.db.QueryRowContext(ctx, cartSelect+` WHERE c.user_id = ? AND c.product_id = ?`, userID, productID)
	if err := scanCartItem(row, it); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return it, nil
}

// SaveCartItem inserts a line or updates quantity and unit price of an existing one
func (s *Storage) SaveCartItem(ctx context.Context, userID string, it *models.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, unit_price, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, product_id) DO UPDATE SET
			quantity = excluded.quantity,
			unit_price = excluded.unit_price
	`
	var unitPrice sql.NullInt64
	if it.UnitPrice != nil {
		unitPrice = sql.NullInt64{Int64: *it.UnitPrice, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query, userID, it.ProductID, it.Quantity, unitPrice, it.AddedAt)
	if err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	return nil
}

// DeleteCartItem removes one line
func (s *Storage) DeleteCartItem(ctx context.Context, userID, productID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ? AND product_id = ?`, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return rowsAffected(result, storage.ErrCartItemNotFound)
}

// ClearCart removes every line of the user
func (s *Storage) ClearCart(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
