package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/client/cache"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/pkg/api"
)

var errOffline = errors.New("offline")

func productsFrom(list ...models.Product) *ProductsMock {
	byID := make(map[string]models.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	return &ProductsMock{
		LookupFunc: func(ctx context.Context, id string) (models.Product, error) {
			p, ok := byID[id]
			if !ok {
				return models.Product{}, errors.New("product not found")
			}
			return p, nil
		},
	}
}

// echoRemote сохраняет строки так же, как gateway: количество суммируется
func echoRemote() *RemoteMock {
	var mu sync.Mutex
	rows := map[string]int{}
	return &RemoteMock{
		AddCartItemFunc: func(ctx context.Context, req api.AddCartItemRequest) (*models.CartItem, error) {
			mu.Lock()
			defer mu.Unlock()
			rows[req.ProductID] += req.Quantity
			return &models.CartItem{ProductID: req.ProductID, Quantity: rows[req.ProductID], Product: models.Product{ID: req.ProductID, Price: 1000, Stock: 10}}, nil
		},
		UpdateCartItemFunc: func(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
			mu.Lock()
			defer mu.Unlock()
			rows[productID] = quantity
			return &models.CartItem{ProductID: productID, Quantity: quantity, Product: models.Product{ID: productID, Price: 1000, Stock: 10}}, nil
		},
		RemoveCartItemFunc: func(ctx context.Context, productID string) error { return nil },
		ClearCartFunc:      func(ctx context.Context) error { return nil },
	}
}

func TestCart_Totals(t *testing.T) {
	c := New(Options{})
	override := int64(700)
	c.Container().Replace([]cache.Item[models.CartItem]{
		{Key: "p1", Payload: models.CartItem{ProductID: "p1", Quantity: 2, Product: models.Product{Price: 1000}}},
		{Key: "p2", Payload: models.CartItem{ProductID: "p2", Quantity: 3, Product: models.Product{Price: 500}, UnitPrice: &override}},
	})

	assert.Equal(t, 5, c.TotalCount())
	assert.Equal(t, int64(2*1000+3*700), c.TotalValue())

	c.ClearLocal()
	assert.Equal(t, 0, c.TotalCount())
	assert.Equal(t, int64(0), c.TotalValue())
}

func TestCart_AddAndMerge(t *testing.T) {
	remote := echoRemote()
	c := New(Options{Remote: remote, Products: productsFrom(models.Product{ID: "p1", Price: 1000, Stock: 10})})
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "p1", 2))
	require.NoError(t, c.Add(ctx, "p1", 3))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(5000), c.TotalValue())
	require.Len(t, remote.AddCartItemCalls(), 2)
	assert.Equal(t, 3, remote.AddCartItemCalls()[1].Req.Quantity)
}

func TestCart_AddStockChecks(t *testing.T) {
	c := New(Options{Remote: echoRemote(), Products: productsFrom(
		models.Product{ID: "empty", Stock: 0},
		models.Product{ID: "few", Stock: 2},
	)})
	ctx := context.Background()

	assert.ErrorIs(t, c.Add(ctx, "empty", 1), ErrOutOfStock)
	assert.ErrorIs(t, c.Add(ctx, "few", 3), ErrInsufficientStock)
	assert.Error(t, c.Add(ctx, "few", 0))
	assert.Error(t, c.Add(ctx, "missing", 1))
	assert.Equal(t, 0, c.Container().Len())
}

func TestCart_AddRevertsOnRemoteFailure(t *testing.T) {
	remote := echoRemote()
	c := New(Options{Remote: remote, Products: productsFrom(models.Product{ID: "p1", Price: 1000, Stock: 10})})
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "p1", 1))

	remote.AddCartItemFunc = func(ctx context.Context, req api.AddCartItemRequest) (*models.CartItem, error) {
		return nil, errOffline
	}

	// существующая позиция: количество возвращается
	assert.ErrorIs(t, c.Add(ctx, "p1", 2), errOffline)
	it, ok := c.Container().Get("p1")
	require.True(t, ok)
	assert.Equal(t, 1, it.Payload.Quantity)

	// новая позиция исчезает
	c.products = productsFrom(models.Product{ID: "p2", Stock: 5})
	assert.ErrorIs(t, c.Add(ctx, "p2", 1), errOffline)
	_, ok = c.Container().Get("p2")
	assert.False(t, ok)
}

func TestCart_SetQuantity(t *testing.T) {
	remote := echoRemote()
	c := New(Options{Remote: remote, Products: productsFrom(models.Product{ID: "p1", Price: 1000, Stock: 10})})
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, "p1", 1))

	require.NoError(t, c.SetQuantity(ctx, "p1", 4))
	assert.Equal(t, 4, c.TotalCount())

	assert.ErrorIs(t, c.SetQuantity(ctx, "nope", 1), cache.ErrNotFound)

	remote.UpdateCartItemFunc = func(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
		return nil, errOffline
	}
	assert.ErrorIs(t, c.SetQuantity(ctx, "p1", 7), errOffline)
	assert.Equal(t, 4, c.TotalCount())
}

func TestCart_RemoveAndClear(t *testing.T) {
	remote := echoRemote()
	c := New(Options{Remote: remote, Products: productsFrom(
		models.Product{ID: "p1", Price: 1000, Stock: 10},
		models.Product{ID: "p2", Price: 1000, Stock: 10},
	)})
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, "p1", 1))
	require.NoError(t, c.Add(ctx, "p2", 1))

	remote.RemoveCartItemFunc = func(ctx context.Context, productID string) error { return errOffline }
	assert.ErrorIs(t, c.Remove(ctx, "p1"), errOffline)
	assert.Equal(t, 2, c.Container().Len())

	remote.RemoveCartItemFunc = func(ctx context.Context, productID string) error { return nil }
	require.NoError(t, c.Remove(ctx, "p1"))
	assert.Equal(t, []string{"p2"}, c.Container().Keys())
	assert.ErrorIs(t, c.Remove(ctx, "p1"), cache.ErrNotFound)

	remote.ClearCartFunc = func(ctx context.Context) error { return errOffline }
	assert.ErrorIs(t, c.Clear(ctx), errOffline)
	assert.Equal(t, 1, c.Container().Len())

	remote.ClearCartFunc = func(ctx context.Context) error { return nil }
	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Container().Len())
}

func TestCart_SnapshotPersistence(t *testing.T) {
	var saved [][]models.CartItem
	store := &SnapshotStoreMock{
		SaveCartFunc: func(ctx context.Context, items []models.CartItem) error {
			saved = append(saved, items)
			return nil
		},
		LoadCartFunc: func(ctx context.Context) ([]models.CartItem, error) {
			return []models.CartItem{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}, nil
		},
	}
	c := New(Options{Store: store})

	require.NoError(t, c.Restore(context.Background()))
	assert.Equal(t, []string{"p1", "p2"}, c.Container().Keys())
	assert.Equal(t, 3, c.TotalCount())

	require.Len(t, saved, 1)
	assert.Len(t, saved[0], 2)

	c.ClearLocal()
	require.Len(t, saved, 2)
	assert.Empty(t, saved[1])
}

func TestCart_Load(t *testing.T) {
	remote := &RemoteMock{
		ListCartFunc: func(ctx context.Context) ([]models.CartItem, error) {
			return []models.CartItem{{ProductID: "p3", Quantity: 1, Product: models.Product{Price: 250}}}, nil
		},
	}
	c := New(Options{Remote: remote})

	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, int64(250), c.TotalValue())

	remote.ListCartFunc = func(ctx context.Context) ([]models.CartItem, error) { return nil, errOffline }
	assert.ErrorIs(t, c.Load(context.Background()), errOffline)
	assert.Equal(t, 1, c.Container().Len())
}
