package models

import (
	"errors"
	"time"
)

// DiscountType тип скидки ваучера
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var (
	// ErrVoucherUsed indicates that the voucher was already consumed
	ErrVoucherUsed = errors.New("voucher has already been used")

	// ErrVoucherExpired indicates that the voucher is past its expiry
	ErrVoucherExpired = errors.New("voucher has expired")

	// ErrVoucherMinPurchase indicates that the subtotal is below the voucher minimum
	ErrVoucherMinPurchase = errors.New("subtotal is below the voucher minimum purchase")

	// ErrVoucherType indicates an unknown discount type
	ErrVoucherType = errors.New("unknown voucher discount type")
)

// Voucher представляет промокод
type Voucher struct {
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue int64        `json:"discount_value"` // процент или фиксированная сумма
	MinPurchase   int64        `json:"min_purchase"`
	MaxDiscount   int64        `json:"max_discount"` // 0 без ограничения
	Used          bool         `json:"used"`
}

// DiscountFor computes the discount the voucher grants on subtotal at the given time.
// A percentage discount is capped by MaxDiscount when it is set; a fixed discount
// never exceeds the subtotal.
func (v Voucher) DiscountFor(subtotal int64, now time.Time) (int64, error) {
	if v.Used {
		return 0, ErrVoucherUsed
	}
	if v.ExpiresAt != nil && !now.Before(*v.ExpiresAt) {
		return 0, ErrVoucherExpired
	}
	if subtotal < v.MinPurchase {
		return 0, ErrVoucherMinPurchase
	}

	var discount int64
	switch v.DiscountType {
	case DiscountPercentage:
		discount = percentOf(subtotal, v.DiscountValue)
		if v.MaxDiscount > 0 && discount > v.MaxDiscount {
			discount = v.MaxDiscount
		}
	case DiscountFixed:
		discount = v.DiscountValue
	default:
		return 0, ErrVoucherType
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount, nil
}

// percentOf returns amount*pct/100 rounded down. The product is never formed,
// so any int64 amount is safe.
func percentOf(amount, pct int64) int64 {
	switch {
	case amount <= 0 || pct <= 0:
		return 0
	case pct >= 100:
		return amount
	}
	return amount/100*pct + amount%100*pct/100
}
