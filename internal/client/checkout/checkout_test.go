package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/client/api"
	"github.com/iudanet/marketsync/internal/client/cart"
	"github.com/iudanet/marketsync/internal/client/maintenance"
	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/client/voucher"
	"github.com/iudanet/marketsync/internal/models"
	pkgapi "github.com/iudanet/marketsync/pkg/api"
)

type recorder struct{ notices []notify.Notice }

func (r *recorder) Publish(n notify.Notice) { r.notices = append(r.notices, n) }

type fixture struct {
	gate       *GateMock
	cart       *CartMock
	reconciler *ReconcilerMock
	vouchers   *VouchersMock
	orders     *OrdersMock
	pub        *recorder
	lines      []models.CartItem
	cleared    bool
}

func newFixture() *fixture {
	f := &fixture{
		pub: &recorder{},
		lines: []models.CartItem{
			{ProductID: "p1", Quantity: 2, Product: models.Product{ID: "p1", Price: 25000, Stock: 5}},
			{ProductID: "p2", Quantity: 1, Product: models.Product{ID: "p2", Price: 50000, Stock: 5}},
		},
	}
	f.gate = &GateMock{CheckFunc: func(string) error { return nil }}
	f.cart = &CartMock{
		ItemsFunc: func() []models.CartItem { return f.lines },
		TotalValueFunc: func() int64 {
			var total int64
			for _, it := range f.lines {
				total += it.LineTotal()
			}
			return total
		},
		ClearFunc: func(ctx context.Context) error {
			f.cleared = true
			f.lines = nil
			return nil
		},
	}
	f.reconciler = &ReconcilerMock{PassFunc: func(ctx context.Context) error { return nil }}
	f.vouchers = &VouchersMock{}
	f.orders = &OrdersMock{
		CreateOrderFunc: func(ctx context.Context, req pkgapi.CreateOrderRequest) (*models.Order, error) {
			return &models.Order{ID: "o-1", Status: models.OrderStatusPending, Total: 100000, VoucherCode: req.VoucherCode}, nil
		},
	}
	return f
}

func (f *fixture) service() *Service {
	return NewService(f.gate, f.cart, f.reconciler, f.vouchers, f.orders, f.pub, nil)
}

func validRequest() Request {
	return Request{ShippingAddress: "1 Main St", PaymentMethod: "card"}
}

func TestPlaceOrder_Success(t *testing.T) {
	f := newFixture()

	receipt, err := f.service().PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "o-1", receipt.Order.ID)
	assert.Nil(t, receipt.Voucher)
	assert.True(t, f.cleared)
	assert.Len(t, f.reconciler.PassCalls(), 1)

	calls := f.orders.CreateOrderCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []pkgapi.OrderItemRequest{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}, calls[0].Req.Items)
	assert.Equal(t, "1 Main St", calls[0].Req.ShippingAddress)

	require.Len(t, f.pub.notices, 1)
	assert.Equal(t, "Order o-1 placed", f.pub.notices[0].Message)
	assert.Equal(t, notify.LevelSuccess, f.pub.notices[0].Level)
}

func TestPlaceOrder_GateRefusesBeforeAnyRemoteCall(t *testing.T) {
	f := newFixture()
	blocked := &maintenance.BlockedError{Action: maintenance.ActionCheckout, Message: "Down for upgrades"}
	f.gate.CheckFunc = func(string) error { return blocked }

	_, err := f.service().PlaceOrder(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, maintenance.IsBlocked(err))
	assert.Equal(t, "Down for upgrades", notify.Describe(err))

	assert.Empty(t, f.cart.ItemsCalls())
	assert.Empty(t, f.reconciler.PassCalls())
	assert.Empty(t, f.vouchers.ValidateCalls())
	assert.Empty(t, f.orders.CreateOrderCalls())
	assert.False(t, f.cleared)
}

func TestPlaceOrder_GateClosesDuringRefresh(t *testing.T) {
	f := newFixture()
	f.gate.CheckFunc = func(action string) error {
		if action == maintenance.ActionOrder {
			return &maintenance.BlockedError{Action: action, Message: "maintenance"}
		}
		return nil
	}

	_, err := f.service().PlaceOrder(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, maintenance.IsBlocked(err))
	assert.Empty(t, f.orders.CreateOrderCalls())
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	f := newFixture()
	f.lines = nil

	_, err := f.service().PlaceOrder(context.Background(), validRequest())
	assert.ErrorIs(t, err, cart.ErrEmpty)
	assert.Empty(t, f.reconciler.PassCalls())
}

func TestPlaceOrder_MissingAddress(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ShippingAddress = " "

	_, err := f.service().PlaceOrder(context.Background(), req)
	assert.Error(t, err)
	assert.Empty(t, f.orders.CreateOrderCalls())
}

func TestPlaceOrder_CartChangedByReconciliation(t *testing.T) {
	f := newFixture()
	f.reconciler.PassFunc = func(ctx context.Context) error {
		// товар p1 подешевел
		f.lines = []models.CartItem{
			{ProductID: "p1", Quantity: 2, Product: models.Product{ID: "p1", Price: 20000, Stock: 5}},
			f.lines[1],
		}
		return nil
	}

	_, err := f.service().PlaceOrder(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCartChanged)
	assert.Empty(t, f.orders.CreateOrderCalls())
}

func TestPlaceOrder_ReconciliationFails(t *testing.T) {
	f := newFixture()
	f.reconciler.PassFunc = func(ctx context.Context) error {
		return &api.NetworkError{Op: "get products", Err: errors.New("connection refused")}
	}

	_, err := f.service().PlaceOrder(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, api.IsNetwork(err))
	assert.Empty(t, f.orders.CreateOrderCalls())
}

func TestPlaceOrder_WithVoucher(t *testing.T) {
	f := newFixture()
	f.vouchers.ValidateFunc = func(ctx context.Context, code string, subtotal int64) (*voucher.Applied, error) {
		assert.Equal(t, int64(100000), subtotal)
		return &voucher.Applied{Voucher: models.Voucher{Code: "PROMO10ABC"}, Subtotal: subtotal, Discount: 10000}, nil
	}
	req := validRequest()
	req.Voucher = "promo10abc"

	receipt, err := f.service().PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, receipt.Voucher)
	assert.Equal(t, int64(90000), receipt.Voucher.Total())
	assert.Equal(t, "PROMO10ABC", f.orders.CreateOrderCalls()[0].Req.VoucherCode)
}

func TestPlaceOrder_VoucherRejected(t *testing.T) {
	f := newFixture()
	f.vouchers.ValidateFunc = func(ctx context.Context, code string, subtotal int64) (*voucher.Applied, error) {
		return nil, &api.BusinessError{Op: "validate voucher", Status: 409, Message: "Voucher has already been used"}
	}
	req := validRequest()
	req.Voucher = "PROMO10ABC"

	_, err := f.service().PlaceOrder(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "Voucher has already been used", notify.Describe(err))
	assert.Empty(t, f.orders.CreateOrderCalls())
	assert.False(t, f.cleared)
}

func TestPlaceOrder_ClearFailureKeepsOrder(t *testing.T) {
	f := newFixture()
	f.cart.ClearFunc = func(ctx context.Context) error { return errors.New("offline") }

	receipt, err := f.service().PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "o-1", receipt.Order.ID)
}
