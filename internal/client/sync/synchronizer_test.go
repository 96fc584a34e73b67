package sync

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/client/api"
	"github.com/iudanet/marketsync/internal/client/cache"
	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/models"
)

// remoteCatalog имитирует серверный каталог
type remoteCatalog struct {
	products map[string]models.Product
	err      error
	mu       sync.Mutex
}

func newRemoteCatalog(products ...models.Product) *remoteCatalog {
	rc := &remoteCatalog{products: make(map[string]models.Product)}
	for _, p := range products {
		rc.products[p.ID] = p
	}
	return rc
}

func (rc *remoteCatalog) set(p models.Product) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.products[p.ID] = p
}

func (rc *remoteCatalog) delete(id string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.products, id)
}

func (rc *remoteCatalog) fail(err error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.err = err
}

func (rc *remoteCatalog) getter() *ProductGetterMock {
	return &ProductGetterMock{
		GetProductsFunc: func(ctx context.Context, ids []string) ([]models.Product, error) {
			rc.mu.Lock()
			defer rc.mu.Unlock()
			if rc.err != nil {
				return nil, rc.err
			}
			var out []models.Product
			for _, id := range ids {
				if p, ok := rc.products[id]; ok {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
}

func product(id, name string, price int64, stock int) models.Product {
	return models.Product{ID: id, Name: name, Price: price, Stock: stock}
}

func cartContainer(lines ...models.CartItem) *cache.Container[models.CartItem] {
	c := cache.New(cache.Options[models.CartItem]{
		Ordered: true,
		Quantifier: func(item models.CartItem, n int) models.CartItem {
			item.Quantity = n
			return item
		},
	})
	items := make([]cache.Item[models.CartItem], 0, len(lines))
	for _, l := range lines {
		items = append(items, cache.Item[models.CartItem]{Key: l.ProductID, Payload: l})
	}
	c.Replace(items)
	return c
}

func line(p models.Product, qty int) models.CartItem {
	return models.CartItem{ProductID: p.ID, Product: p, Quantity: qty}
}

type cartFixture struct {
	container *cache.Container[models.CartItem]
	remote    *remoteCatalog
	writes    *CartRemoteMock
	notices   *notify.PublisherMock
	sync      *Synchronizer[models.CartItem, models.Product]
}

func newCartFixture(stock StockPolicy, remote *remoteCatalog, lines ...models.CartItem) *cartFixture {
	f := &cartFixture{
		container: cartContainer(lines...),
		remote:    remote,
		writes: &CartRemoteMock{
			RemoveCartItemFunc: func(ctx context.Context, productID string) error { return nil },
			UpdateCartItemFunc: func(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
				return &models.CartItem{ProductID: productID, Quantity: quantity}, nil
			},
		},
		notices: &notify.PublisherMock{PublishFunc: func(n notify.Notice) {}},
	}
	f.sync = New(Config[models.CartItem, models.Product]{
		Name:      "cart",
		Container: f.container,
		Source:    CartProducts(remote.getter()),
		Policy:    CartPolicy{Stock: stock},
		WriteBack: CartWriteBack{Remote: f.writes},
		Publisher: f.notices,
	})
	return f
}

func (f *cartFixture) messages() []string {
	var out []string
	for _, c := range f.notices.PublishCalls() {
		out = append(out, c.N.Message)
	}
	return out
}

func (f *cartFixture) total() int64 {
	var total int64
	for _, it := range f.container.Read() {
		total += it.Payload.LineTotal()
	}
	return total
}

// TestCart_ClampScenario: количество 5 при остатке 2 становится 2 с одним уведомлением,
// повторный проход ничего не делает.
func TestCart_ClampScenario(t *testing.T) {
	phone := product("p1", "Phone", 1000, 10)
	f := newCartFixture(DefaultStockPolicy(), newRemoteCatalog(product("p1", "Phone", 1000, 2)), line(phone, 5))
	ctx := context.Background()

	res, err := f.sync.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Clamped)
	assert.Equal(t, 1, res.Notices)

	it, ok := f.container.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 2, it.Payload.Quantity)
	assert.Equal(t, 2, it.Payload.Product.Stock)
	assert.Equal(t, []string{"Phone: adjusted to available stock"}, f.messages())

	calls := f.writes.UpdateCartItemCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "p1", calls[0].ProductID)
	assert.Equal(t, 2, calls[0].Quantity)

	res, err = f.sync.Reconcile(ctx)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Len(t, f.notices.PublishCalls(), 1)
	assert.Len(t, f.writes.UpdateCartItemCalls(), 1)
}

func TestCart_ReconcileIsIdempotent(t *testing.T) {
	a := product("a", "Alpha", 100, 5)
	b := product("b", "Beta", 200, 5)
	c := product("c", "Gamma", 300, 5)
	remote := newRemoteCatalog(
		product("a", "Alpha", 150, 5), // цена изменилась
		product("b", "Beta", 200, 1),  // остаток меньше количества
		// c исчез
	)
	f := newCartFixture(DefaultStockPolicy(), remote, line(a, 1), line(b, 3), line(c, 1))
	ctx := context.Background()

	first, err := f.sync.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Changes())
	notices := len(f.notices.PublishCalls())
	version := f.container.Version()

	// даже без пропуска по отпечаткам политика больше ничего не решает
	f.sync.Reset()
	second, err := f.sync.Reconcile(ctx)
	require.NoError(t, err)
	assert.False(t, second.Skipped)
	assert.Equal(t, 0, second.Changes())
	assert.Equal(t, 0, second.Notices)
	assert.Equal(t, notices, len(f.notices.PublishCalls()))
	assert.Equal(t, version, f.container.Version())
}

func TestCart_RemovalReasons(t *testing.T) {
	gone := product("gone", "Lamp", 100, 3)
	empty := product("empty", "Chair", 100, 3)
	remote := newRemoteCatalog(product("empty", "Chair", 100, 0))
	f := newCartFixture(DefaultStockPolicy(), remote, line(gone, 1), line(empty, 2))

	res, err := f.sync.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Removed)
	assert.Equal(t, 0, f.container.Len())
	assert.ElementsMatch(t, []string{"Lamp: no longer available", "Chair: out of stock"}, f.messages())

	for _, c := range f.notices.PublishCalls() {
		assert.Equal(t, notify.LevelWarning, c.N.Level)
		assert.Equal(t, "cart", c.N.Domain)
	}
	assert.Len(t, f.writes.RemoveCartItemCalls(), 2)
}

func TestCart_PriceUpdate(t *testing.T) {
	old := product("p1", "Phone", 1000, 5)
	f := newCartFixture(DefaultStockPolicy(), newRemoteCatalog(product("p1", "Phone", 1200, 5)), line(old, 2))

	res, err := f.sync.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, []string{"Phone: price/info updated"}, f.messages())
	assert.Equal(t, int64(2400), f.total())
	assert.Empty(t, f.writes.UpdateCartItemCalls())
}

func TestCart_SilentStockRefresh(t *testing.T) {
	old := product("p1", "Phone", 1000, 5)
	f := newCartFixture(DefaultStockPolicy(), newRemoteCatalog(product("p1", "Phone", 1000, 9)), line(old, 2))

	res, err := f.sync.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 0, res.Notices)
	it, _ := f.container.Get("p1")
	assert.Equal(t, 9, it.Payload.Product.Stock)
}

func TestCart_ClampAlsoRefreshesPriceWithOneNotice(t *testing.T) {
	old := product("p1", "Phone", 1000, 5)
	f := newCartFixture(DefaultStockPolicy(), newRemoteCatalog(product("p1", "Phone", 900, 1)), line(old, 3))

	_, err := f.sync.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Phone: adjusted to available stock"}, f.messages())
	assert.Equal(t, int64(900), f.total())
}

func TestCart_StockPolicyThresholds(t *testing.T) {
	p := product("p1", "Phone", 1000, 5)

	t.Run("remove at or below", func(t *testing.T) {
		f := newCartFixture(StockPolicy{RemoveAtOrBelow: 1, ClampToStock: true}, newRemoteCatalog(product("p1", "Phone", 1000, 1)), line(p, 1))
		_, err := f.sync.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, f.container.Len())
		assert.Equal(t, []string{"Phone: out of stock"}, f.messages())
	})

	t.Run("no clamping", func(t *testing.T) {
		f := newCartFixture(StockPolicy{ClampToStock: false}, newRemoteCatalog(product("p1", "Phone", 1000, 2)), line(p, 3))
		_, err := f.sync.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, f.container.Len())
	})

	t.Run("unit price override survives", func(t *testing.T) {
		override := int64(10)
		l := line(p, 1)
		l.UnitPrice = &override
		f := newCartFixture(DefaultStockPolicy(), newRemoteCatalog(product("p1", "Phone", 2000, 5)), l)
		_, err := f.sync.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(10), f.total())
	})
}

// TestCart_TotalInvariantUnderInterleaving чередует действия пользователя и проходы
func TestCart_TotalInvariantUnderInterleaving(t *testing.T) {
	remote := newRemoteCatalog()
	var lines []models.CartItem
	for i := 0; i < 10; i++ {
		p := product(fmt.Sprintf("p%d", i), fmt.Sprintf("Item %d", i), int64(100*(i+1)), 10)
		remote.set(p)
		lines = append(lines, line(p, 1))
	}
	f := newCartFixture(DefaultStockPolicy(), remote, lines...)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		rnd := rand.New(rand.NewSource(1))
		for i := 0; i < 200; i++ {
			key := fmt.Sprintf("p%d", rnd.Intn(10))
			_ = f.container.Apply(cache.SetQuantity[models.CartItem](key, 1+rnd.Intn(20)))
		}
	}()
	go func() {
		defer wg.Done()
		rnd := rand.New(rand.NewSource(2))
		for i := 0; i < 50; i++ {
			id := fmt.Sprintf("p%d", rnd.Intn(10))
			remote.set(product(id, "Item "+id, int64(50+rnd.Intn(500)), rnd.Intn(8)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := f.sync.Reconcile(ctx)
			if err != nil {
				assert.ErrorIs(t, err, ErrInFlight)
			}
		}
	}()
	wg.Wait()

	f.sync.Reset()
	_, err := f.sync.Reconcile(ctx)
	require.NoError(t, err)

	var want int64
	remote.mu.Lock()
	for _, it := range f.container.Read() {
		p := remote.products[it.Key]
		assert.LessOrEqual(t, it.Payload.Quantity, p.Stock)
		assert.Greater(t, p.Stock, 0)
		want += p.Price * int64(it.Payload.Quantity)
	}
	remote.mu.Unlock()
	assert.Equal(t, want, f.total())
}

func TestSynchronizer_FailureThreshold(t *testing.T) {
	p := product("p1", "Phone", 1000, 5)
	remote := newRemoteCatalog(p)
	f := newCartFixture(DefaultStockPolicy(), remote, line(p, 1))
	ctx := context.Background()

	remote.fail(&api.NetworkError{Op: "get products", Err: errors.New("connection refused")})
	for i := 0; i < 5; i++ {
		_, err := f.sync.Reconcile(ctx)
		require.Error(t, err)
		assert.True(t, api.IsNetwork(err))
	}
	assert.Equal(t, []string{MessageConnectionProblems}, f.messages())
	assert.True(t, f.sync.Connectivity().Offline())
	assert.Equal(t, 1, f.container.Len())
	assert.Equal(t, uint64(1), f.container.Version())

	remote.fail(nil)
	_, err := f.sync.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{MessageConnectionProblems, MessageConnectionRestored}, f.messages())
	assert.False(t, f.sync.Connectivity().Offline())
}

func TestSynchronizer_BelowThresholdIsQuiet(t *testing.T) {
	p := product("p1", "Phone", 1000, 5)
	remote := newRemoteCatalog(p)
	f := newCartFixture(DefaultStockPolicy(), remote, line(p, 1))

	remote.fail(&api.NetworkError{Op: "get products", Err: context.DeadlineExceeded})
	for i := 0; i < DefaultFailureThreshold-1; i++ {
		_, _ = f.sync.Reconcile(context.Background())
	}
	remote.fail(nil)
	_, err := f.sync.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, f.messages())
}

func TestSynchronizer_AuthErrorSurfacesOnce(t *testing.T) {
	p := product("p1", "Phone", 1000, 5)
	remote := newRemoteCatalog(p)
	f := newCartFixture(DefaultStockPolicy(), remote, line(p, 1))

	remote.fail(&api.AuthError{Status: http.StatusUnauthorized, Message: "invalid token"})
	for i := 0; i < 4; i++ {
		_, err := f.sync.Reconcile(context.Background())
		assert.True(t, api.IsAuth(err))
	}

	calls := f.notices.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, notify.LevelError, calls[0].N.Level)
	assert.Equal(t, 0, f.sync.Connectivity().Failures())
}

func TestSynchronizer_BusinessErrorVerbatim(t *testing.T) {
	p := product("p1", "Phone", 1000, 5)
	remote := newRemoteCatalog(p)
	f := newCartFixture(DefaultStockPolicy(), remote, line(p, 1))

	remote.fail(&api.BusinessError{Status: http.StatusConflict, Message: "Catalog is being rebuilt"})
	for i := 0; i < 3; i++ {
		_, err := f.sync.Reconcile(context.Background())
		require.Error(t, err)
	}
	// повторный отказ до успешного прохода не дублирует уведомление
	assert.Equal(t, []string{"Catalog is being rebuilt"}, f.messages())
	assert.Equal(t, 0, f.sync.Connectivity().Failures())

	remote.fail(nil)
	_, err := f.sync.Reconcile(context.Background())
	require.NoError(t, err)
	remote.fail(&api.BusinessError{Status: http.StatusConflict, Message: "Catalog is being rebuilt"})
	_, err = f.sync.Reconcile(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"Catalog is being rebuilt", "Catalog is being rebuilt"}, f.messages())
}

func TestSynchronizer_ServerErrorsCountAsConnectionFailures(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{
			name:        "envelope 503",
			status:      http.StatusServiceUnavailable,
			contentType: "application/json",
			body:        `{"success":false,"error":"upstream unavailable"}`,
		},
		{
			name:        "proxy page 502",
			status:      http.StatusBadGateway,
			contentType: "text/html",
			body:        "<html><body>502 Bad Gateway</body></html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var failing atomic.Bool
			failing.Store(true)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if failing.Load() {
					w.Header().Set("Content-Type", tt.contentType)
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"p1","name":"Phone","price":1000,"stock":5}]}`))
			}))
			defer srv.Close()

			p := product("p1", "Phone", 1000, 5)
			notices := &notify.PublisherMock{PublishFunc: func(n notify.Notice) {}}
			s := New(Config[models.CartItem, models.Product]{
				Name:      "cart",
				Container: cartContainer(line(p, 1)),
				Source:    CartProducts(api.NewClient(srv.URL, api.Options{AnonKey: "anon"})),
				Policy:    CartPolicy{Stock: DefaultStockPolicy()},
				Publisher: notices,
			})

			for i := 0; i < 5; i++ {
				_, err := s.Reconcile(context.Background())
				require.Error(t, err)
				assert.True(t, api.IsTransient(err))
			}

			calls := notices.PublishCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, MessageConnectionProblems, calls[0].N.Message)
			assert.Equal(t, 5, s.Connectivity().Failures())
			assert.True(t, s.Connectivity().Offline())

			failing.Store(false)
			_, err := s.Reconcile(context.Background())
			require.NoError(t, err)
			calls = notices.PublishCalls()
			require.Len(t, calls, 2)
			assert.Equal(t, MessageConnectionRestored, calls[1].N.Message)
		})
	}
}

func TestSynchronizer_InFlightGuard(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var fetches int
	var mu sync.Mutex

	container := cartContainer(line(product("p1", "Phone", 1, 1), 1))
	s := New(Config[models.CartItem, models.Product]{
		Name:      "cart",
		Container: container,
		Policy:    CartPolicy{Stock: DefaultStockPolicy()},
		Source: SourceFunc[models.Product](func(ctx context.Context, keys []string) (map[string]models.Product, error) {
			mu.Lock()
			fetches++
			mu.Unlock()
			close(entered)
			<-release
			return map[string]models.Product{"p1": product("p1", "Phone", 1, 1)}, nil
		}),
	})

	done := make(chan error, 1)
	go func() {
		_, err := s.Reconcile(context.Background())
		done <- err
	}()

	<-entered
	_, err := s.Reconcile(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)

	close(release)
	require.NoError(t, <-done)
	mu.Lock()
	assert.Equal(t, 1, fetches)
	mu.Unlock()
}

func TestSynchronizer_ItemAddedDuringFetchIsKept(t *testing.T) {
	phone := product("p1", "Phone", 1000, 5)
	container := cartContainer(line(phone, 1))

	s := New(Config[models.CartItem, models.Product]{
		Name:      "cart",
		Container: container,
		Policy:    CartPolicy{Stock: DefaultStockPolicy()},
		Source: SourceFunc[models.Product](func(ctx context.Context, keys []string) (map[string]models.Product, error) {
			assert.Equal(t, []string{"p1"}, keys)
			// пользователь добавил товар, пока шел запрос
			require.NoError(t, container.Apply(cache.Add("p2", line(product("p2", "Case", 100, 5), 1))))
			return map[string]models.Product{"p1": phone}, nil
		}),
	})

	res, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Removed)
	assert.Equal(t, []string{"p1", "p2"}, container.Keys())
}

func TestSynchronizer_ContextCanceledIsNotAFailure(t *testing.T) {
	container := cartContainer(line(product("p1", "Phone", 1, 1), 1))
	s := New(Config[models.CartItem, models.Product]{
		Name:      "cart",
		Container: container,
		Policy:    CartPolicy{},
		Source: SourceFunc[models.Product](func(ctx context.Context, keys []string) (map[string]models.Product, error) {
			return nil, &api.NetworkError{Op: "get products", Err: context.Canceled}
		}),
	})

	for i := 0; i < 5; i++ {
		_, _ = s.Reconcile(context.Background())
	}
	assert.Equal(t, 0, s.Connectivity().Failures())
}

func TestSynchronizer_WriteBackErrorDoesNotFailPass(t *testing.T) {
	phone := product("p1", "Phone", 1000, 5)
	f := newCartFixture(DefaultStockPolicy(), newRemoteCatalog(), line(phone, 1))
	f.writes.RemoveCartItemFunc = func(ctx context.Context, productID string) error {
		return errors.New("remote unavailable")
	}

	res, err := f.sync.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Removed)
}

func TestSynchronizer_SharedConnectivity(t *testing.T) {
	notices := &notify.PublisherMock{PublishFunc: func(n notify.Notice) {}}
	conn := NewConnectivity(notices, 2, nil)
	failing := SourceFunc[models.Product](func(ctx context.Context, keys []string) (map[string]models.Product, error) {
		return nil, &api.NetworkError{Op: "x", Err: errors.New("offline")}
	})

	a := New(Config[models.CartItem, models.Product]{Name: "cart", Container: cartContainer(), Policy: CartPolicy{}, Source: failing, Connectivity: conn, Publisher: notices})
	b := New(Config[models.Product, models.Product]{Name: "products", Container: cache.New(cache.Options[models.Product]{}), Policy: ProductsPolicy{}, Source: failing, Connectivity: conn, Publisher: notices})

	_, _ = a.Reconcile(context.Background())
	_, _ = b.Reconcile(context.Background())
	_, _ = a.Reconcile(context.Background())

	require.Len(t, notices.PublishCalls(), 1)
	assert.Equal(t, MessageConnectionProblems, notices.PublishCalls()[0].N.Message)
}

func TestProducts_AdoptAndRemove(t *testing.T) {
	container := cache.New(cache.Options[models.Product]{})
	container.Replace([]cache.Item[models.Product]{
		{Key: "old", Payload: product("old", "Old", 10, 1)},
		{Key: "p1", Payload: product("p1", "Phone", 1000, 5)},
	})

	remote := map[string]models.Product{
		"p1":  product("p1", "Phone", 1000, 3),
		"new": product("new", "New", 50, 2),
	}
	notices := &notify.PublisherMock{PublishFunc: func(n notify.Notice) {}}
	s := New(Config[models.Product, models.Product]{
		Name:      "products",
		Container: container,
		Policy:    ProductsPolicy{},
		Adopter:   ProductsPolicy{},
		Publisher: notices,
		Source: SourceFunc[models.Product](func(ctx context.Context, keys []string) (map[string]models.Product, error) {
			return remote, nil
		}),
	})

	res, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Adopted)
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, []string{"new", "p1"}, container.Keys())

	calls := notices.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Old: no longer available", calls[0].N.Message)

	res, err = s.Reconcile(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

func TestOrders_StatusChange(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	container := cache.New(cache.Options[models.Order]{Ordered: true})
	container.Replace([]cache.Item[models.Order]{{Key: "o1", Payload: models.Order{ID: "o1", Status: models.OrderStatusPaid, UpdatedAt: now}}})

	notices := &notify.PublisherMock{PublishFunc: func(n notify.Notice) {}}
	s := New(Config[models.Order, models.Order]{
		Name:      "orders",
		Container: container,
		Policy:    OrdersPolicy{},
		Adopter:   OrdersPolicy{},
		Publisher: notices,
		Source: SourceFunc[models.Order](func(ctx context.Context, keys []string) (map[string]models.Order, error) {
			return map[string]models.Order{
				"o1": {ID: "o1", Status: models.OrderStatusShipped, UpdatedAt: now.Add(time.Hour)},
				"o2": {ID: "o2", Status: models.OrderStatusPending},
			}, nil
		}),
	})

	res, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Adopted)

	calls := notices.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Order o1: order status updated to shipped", calls[0].N.Message)
	assert.Equal(t, "o1", calls[0].N.Key)
}

func TestNotifications_NewAnnouncedReadSilent(t *testing.T) {
	container := cache.New(cache.Options[models.Notification]{Ordered: true})
	container.Replace([]cache.Item[models.Notification]{{Key: "n1", Payload: models.Notification{ID: "n1", Title: "Hello"}}})

	notices := &notify.PublisherMock{PublishFunc: func(n notify.Notice) {}}
	s := New(Config[models.Notification, models.Notification]{
		Name:      "notifications",
		Container: container,
		Policy:    NotificationsPolicy{},
		Adopter:   NotificationsPolicy{},
		Publisher: notices,
		Source: SourceFunc[models.Notification](func(ctx context.Context, keys []string) (map[string]models.Notification, error) {
			return map[string]models.Notification{
				"n1": {ID: "n1", Title: "Hello", Read: true},
				"n2": {ID: "n2", Title: "Your order shipped"},
				"n3": {ID: "n3", Title: "Old news", Read: true},
			}, nil
		}),
	})

	res, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 2, res.Adopted)

	calls := notices.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Your order shipped: new notification", calls[0].N.Message)
	assert.Equal(t, notify.LevelInfo, calls[0].N.Level)

	n1, _ := container.Get("n1")
	assert.True(t, n1.Payload.Read)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(map[string]string{"a": "1", "b": "2"})
	b := Fingerprint(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, Fingerprint(map[string]string{"a": "1", "b": "3"}))
	assert.NotEqual(t, a, Fingerprint(map[string]string{"a": "12", "b": ""}))
	assert.NotEqual(t, Fingerprint(nil), a)
	assert.Equal(t, Fingerprint(nil), Fingerprint(map[string]string{}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "clamp", Clamp.String())
	assert.Equal(t, "adopt", Adopt.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
