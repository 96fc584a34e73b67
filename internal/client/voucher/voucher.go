// Package voucher validates promo codes against the remote store.
package voucher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

//go:generate moq -out validator_mock.go . Validator

// Validator is the remote voucher check.
type Validator interface {
	ValidateVoucher(ctx context.Context, req api.ValidateVoucherRequest) (*api.ValidateVoucherResponse, error)
}

// Applied is a voucher accepted for a subtotal.
type Applied struct {
	Voucher  models.Voucher
	Subtotal int64
	Discount int64
}

// Total returns the amount to pay after the discount.
func (a Applied) Total() int64 {
	return a.Subtotal - a.Discount
}

// Service проверяет промокоды
type Service struct {
	remote    Validator
	publisher notify.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает сервис промокодов
func NewService(remote Validator, publisher notify.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{remote: remote, publisher: publisher, logger: logger, now: time.Now}
}

// Validate checks code for subtotal. The discount is recomputed from the
// returned voucher; a rejection by the server is published verbatim and no
// discount is applied.
func (s *Service) Validate(ctx context.Context, code string, subtotal int64) (*Applied, error) {
	code = validation.NormalizeVoucherCode(code)
	if err := validation.ValidateVoucherCode(code); err != nil {
		s.publisher.Publish(notify.Notice{Level: notify.LevelError, Domain: "voucher", Message: err.Error()})
		return nil, err
	}

	resp, err := s.remote.ValidateVoucher(ctx, api.ValidateVoucherRequest{Code: code, Subtotal: subtotal})
	if err != nil {
		notify.Error(s.publisher, "voucher", err)
		return nil, fmt.Errorf("failed to validate voucher: %w", err)
	}

	discount, err := resp.Voucher.DiscountFor(subtotal, s.now())
	if err != nil {
		s.publisher.Publish(notify.Notice{Level: notify.LevelError, Domain: "voucher", Message: describeLocal(err)})
		return nil, err
	}
	if discount != resp.DiscountAmount {
		s.logger.Warn("Voucher discount differs from server value",
			"code", code, "server", resp.DiscountAmount, "client", discount)
	}

	s.publisher.Publish(notify.Notice{
		Level:   notify.LevelSuccess,
		Domain:  "voucher",
		Key:     code,
		Message: fmt.Sprintf("Voucher %s applied: -%s", code, FormatAmount(discount)),
	})
	return &Applied{Voucher: resp.Voucher, Subtotal: subtotal, Discount: discount}, nil
}

func describeLocal(err error) string {
	switch {
	case errors.Is(err, models.ErrVoucherUsed):
		return "Voucher has already been used"
	case errors.Is(err, models.ErrVoucherExpired):
		return "Voucher has expired"
	case errors.Is(err, models.ErrVoucherMinPurchase):
		return "Order total is below the voucher minimum"
	}
	return err.Error()
}

// FormatAmount renders minor currency units as a decimal amount.
func FormatAmount(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
