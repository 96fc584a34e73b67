package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

// GetVoucher retrieves a voucher by code
func (s *Storage) GetVoucher(ctx context.Context, code string) (*models.Voucher, error) {
	query := `
		SELECT code, discount_type, discount_value, min_purchase, max_discount, expires_at, used
		FROM vouchers
		WHERE code = ?
	`

	v := &models.Voucher{}
	var expiresAt sql.NullTime

	err := s.db.QueryRowContext(ctx, query, code).Scan(
		&v.Code,
		&v.DiscountType,
		&v.DiscountValue,
		&v.MinPurchase,
		&v.MaxDiscount,
		&expiresAt,
		&v.Used,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("failed to get voucher: %w", err)
	}

	if expiresAt.Valid {
		v.ExpiresAt = &expiresAt.Time
	}
	return v, nil
}

// SaveVoucher creates or replaces a voucher
func (s *Storage) SaveVoucher(ctx context.Context, v *models.Voucher) error {
	query := `
		INSERT OR REPLACE INTO vouchers (code, discount_type, discount_value, min_purchase, max_discount, expires_at, used)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		v.Code, v.DiscountType, v.DiscountValue, v.MinPurchase, v.MaxDiscount, nullTime(v.ExpiresAt), v.Used)
	if err != nil {
		return fmt.Errorf("failed to save voucher: %w", err)
	}
	return nil
}
