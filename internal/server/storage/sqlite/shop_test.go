package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

func createTestProduct(t *testing.T, ctx context.Context, s *Storage, name string, price int64, stock int) models.Product {
	p := models.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  "test",
		Price:     price,
		Stock:     stock,
		UpdatedAt: time.Now(),
	}
	require.NoError(t, s.UpsertProduct(ctx, &p))
	return p
}

func TestProductStorage_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	p := createTestProduct(t, ctx, s, "Mug", 1250, 5)

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.Name)
	assert.Equal(t, int64(1250), got.Price)
	assert.Equal(t, 5, got.Stock)

	p.Price = 999
	p.Stock = 0
	require.NoError(t, s.UpsertProduct(ctx, &p))

	got, err = s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(999), got.Price)
	assert.Equal(t, 0, got.Stock)

	_, err = s.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrProductNotFound)
}

func TestProductStorage_GetProducts_SkipsUnknown(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := createTestProduct(t, ctx, s, "A", 100, 1)
	b := createTestProduct(t, ctx, s, "B", 200, 1)
	createTestProduct(t, ctx, s, "C", 300, 1)

	got, err := s.GetProducts(ctx, []string{a.ID, b.ID, "gone"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	all, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.GetProducts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCartStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	mug := createTestProduct(t, ctx, s, "Mug", 1250, 5)
	shirt := createTestProduct(t, ctx, s, "Shirt", 1999, 2)

	now := time.Now()
	require.NoError(t, s.SaveCartItem(ctx, userID, &models.CartItem{ProductID: mug.ID, Quantity: 2, AddedAt: now}))
	override := int64(1500)
	require.NoError(t, s.SaveCartItem(ctx, userID, &models.CartItem{ProductID: shirt.ID, Quantity: 1, UnitPrice: &override, AddedAt: now.Add(time.Second)}))

	items, err := s.ListCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, mug.ID, items[0].ProductID)
	assert.Equal(t, "Mug", items[0].Product.Name)
	assert.Nil(t, items[0].UnitPrice)
	require.NotNil(t, items[1].UnitPrice)
	assert.Equal(t, int64(1500), *items[1].UnitPrice)

	// повторное сохранение меняет количество, но не позицию в списке
	require.NoError(t, s.SaveCartItem(ctx, userID, &models.CartItem{ProductID: mug.ID, Quantity: 4, AddedAt: now.Add(time.Hour)}))
	it, err := s.GetCartItem(ctx, userID, mug.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, it.Quantity)

	require.NoError(t, s.DeleteCartItem(ctx, userID, mug.ID))
	assert.ErrorIs(t, s.DeleteCartItem(ctx, userID, mug.ID), storage.ErrCartItemNotFound)

	require.NoError(t, s.ClearCart(ctx, userID))
	items, err = s.ListCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestVoucherStorage_Seeded(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	v, err := s.GetVoucher(ctx, "PROMO10ABC")
	require.NoError(t, err)
	assert.Equal(t, models.DiscountPercentage, v.DiscountType)
	assert.Equal(t, int64(10), v.DiscountValue)
	assert.False(t, v.Used)
	assert.Nil(t, v.ExpiresAt)

	_, err = s.GetVoucher(ctx, "NOPE1234")
	assert.ErrorIs(t, err, storage.ErrVoucherNotFound)
}

func TestMaintenanceStorage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	m, err := s.GetMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceOff, m.Mode)

	start := time.Now().Add(time.Hour)
	end := start.Add(2 * time.Hour)
	scheduled, err := models.ScheduledMaintenance(start, end, "upgrade", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.SaveMaintenance(ctx, &scheduled))

	m, err = s.GetMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceScheduled, m.Mode)
	require.NotNil(t, m.Start)
	require.NotNil(t, m.End)
	assert.WithinDuration(t, start, *m.Start, time.Second)
	assert.Equal(t, "upgrade", m.Message)

	// немедленный режим стирает окно
	immediate := models.ImmediateMaintenance("", time.Now())
	require.NoError(t, s.SaveMaintenance(ctx, &immediate))

	m, err = s.GetMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceImmediate, m.Mode)
	assert.Nil(t, m.Start)
	assert.Nil(t, m.End)
}

func newTestOrder(userID string, items ...models.OrderItem) *models.Order {
	now := time.Now()
	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPrice * int64(it.Quantity)
	}
	return &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		ShippingAddress: "1 Main St",
		PaymentMethod:   "card",
		Items:           items,
		Subtotal:        subtotal,
		Total:           subtotal,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestOrderStorage_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	mug := createTestProduct(t, ctx, s, "Mug", 1250, 5)
	require.NoError(t, s.SaveCartItem(ctx, userID, &models.CartItem{ProductID: mug.ID, Quantity: 2, AddedAt: time.Now()}))

	order := newTestOrder(userID, models.OrderItem{ProductID: mug.ID, Name: mug.Name, UnitPrice: mug.Price, Quantity: 2})
	order.VoucherCode = "PROMO10ABC"
	require.NoError(t, s.PlaceOrder(ctx, order, "key-1"))

	p, err := s.GetProduct(ctx, mug.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)

	v, err := s.GetVoucher(ctx, "PROMO10ABC")
	require.NoError(t, err)
	assert.True(t, v.Used)

	cart, err := s.ListCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	byKey, err := s.GetOrderByIdempotencyKey(ctx, userID, "key-1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, byKey.ID)
	require.Len(t, byKey.Items, 1)
	assert.Equal(t, 2, byKey.Items[0].Quantity)

	_, err = s.GetOrderByIdempotencyKey(ctx, userID, "key-2")
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}

func TestOrderStorage_PlaceOrder_Conflicts(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	mug := createTestProduct(t, ctx, s, "Mug", 1250, 1)
	shirt := createTestProduct(t, ctx, s, "Shirt", 1999, 10)

	t.Run("insufficient stock rolls back", func(t *testing.T) {
		order := newTestOrder(userID,
			models.OrderItem{ProductID: shirt.ID, Name: shirt.Name, UnitPrice: shirt.Price, Quantity: 1},
			models.OrderItem{ProductID: mug.ID, Name: mug.Name, UnitPrice: mug.Price, Quantity: 2},
		)
		err := s.PlaceOrder(ctx, order, "conflict-1")
		assert.ErrorIs(t, err, storage.ErrInsufficientStock)

		p, err := s.GetProduct(ctx, shirt.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, p.Stock)

		_, err = s.GetOrder(ctx, order.ID)
		assert.ErrorIs(t, err, storage.ErrOrderNotFound)
	})

	t.Run("used voucher", func(t *testing.T) {
		first := newTestOrder(userID, models.OrderItem{ProductID: shirt.ID, Name: shirt.Name, UnitPrice: shirt.Price, Quantity: 1})
		first.VoucherCode = "WELCOME500"
		require.NoError(t, s.PlaceOrder(ctx, first, "voucher-1"))

		second := newTestOrder(userID, models.OrderItem{ProductID: shirt.ID, Name: shirt.Name, UnitPrice: shirt.Price, Quantity: 1})
		second.VoucherCode = "WELCOME500"
		err := s.PlaceOrder(ctx, second, "voucher-2")
		assert.ErrorIs(t, err, storage.ErrVoucherUsed)

		p, err := s.GetProduct(ctx, shirt.ID)
		require.NoError(t, err)
		assert.Equal(t, 9, p.Stock)
	})
}

func TestOrderStorage_ListAndUpdateStatus(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createTestUser(t, ctx, s)
	bob := createTestUser(t, ctx, s)
	mug := createTestProduct(t, ctx, s, "Mug", 100, 10)

	item := models.OrderItem{ProductID: mug.ID, Name: mug.Name, UnitPrice: mug.Price, Quantity: 1}
	aliceOrder := newTestOrder(alice, item)
	require.NoError(t, s.PlaceOrder(ctx, aliceOrder, "a"))
	require.NoError(t, s.PlaceOrder(ctx, newTestOrder(bob, item), "b"))

	mine, err := s.ListOrders(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, aliceOrder.ID, mine[0].ID)
	assert.Len(t, mine[0].Items, 1)

	all, err := s.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := s.UpdateOrderStatus(ctx, aliceOrder.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	_, err = s.UpdateOrderStatus(ctx, "missing", models.OrderStatusShipped)
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}
