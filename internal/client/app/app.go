// Package app wires the client components together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/client/api"
	"github.com/iudanet/marketsync/internal/client/auth"
	"github.com/iudanet/marketsync/internal/client/cache"
	"github.com/iudanet/marketsync/internal/client/cart"
	"github.com/iudanet/marketsync/internal/client/catalog"
	"github.com/iudanet/marketsync/internal/client/checkout"
	"github.com/iudanet/marketsync/internal/client/maintenance"
	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/client/storage/boltdb"
	"github.com/iudanet/marketsync/internal/client/support"
	clientsync "github.com/iudanet/marketsync/internal/client/sync"
	"github.com/iudanet/marketsync/internal/client/voucher"
	"github.com/iudanet/marketsync/internal/config"
	"github.com/iudanet/marketsync/internal/models"
)

// Domain names used for sync loops, notices and last-sync metadata.
const (
	DomainCart          = "cart"
	DomainProducts      = "products"
	DomainOrders        = "orders"
	DomainNotifications = "notifications"
	DomainMaintenance   = "maintenance"
	DomainPing          = "ping"
)

// Option настраивает App (используется в тестах)
type Option func(*options)

type options struct {
	clock      clockwork.Clock
	httpClient *http.Client
}

// WithClock подменяет часы
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithHTTPClient подменяет HTTP клиент
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// App holds every client component.
type App struct {
	Config *config.Client
	Logger *slog.Logger
	Clock  clockwork.Clock

	Store  *boltdb.Storage
	API    *api.Client
	Auth   *auth.Service
	Notice *notify.Hub

	Catalog       *catalog.Catalog
	Cart          *cart.Cart
	Orders        *cache.Container[models.Order]
	Notifications *cache.Container[models.Notification]

	Connectivity     *clientsync.Connectivity
	CartSync         *clientsync.Synchronizer[models.CartItem, models.Product]
	ProductSync      *clientsync.Synchronizer[models.Product, models.Product]
	OrderSync        *clientsync.Synchronizer[models.Order, models.Order]
	NotificationSync *clientsync.Synchronizer[models.Notification, models.Notification]
	Pinger           *clientsync.Pinger

	Gate     *maintenance.Gate
	Vouchers *voucher.Service
	Checkout *checkout.Service
	Support  *support.Service

	restored map[string]*clientsync.Manual
}

// New opens local storage and builds the component graph.
func New(ctx context.Context, cfg *config.Client, logger *slog.Logger, opts ...Option) (*App, error) {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}

	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Logger: logger, Clock: o.clock, Store: store}
	if err := a.build(ctx, o); err != nil {
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context, o options) error {
	cfg := a.Config
	policy := cfg.Policy

	key, err := auth.SessionKey(ctx, a.Store, cfg.SessionSecret)
	if err != nil {
		return err
	}

	a.Notice = notify.NewHub(a.Logger)

	baseOpts := api.Options{
		Clock:         a.Clock,
		HTTPClient:    o.httpClient,
		AnonKey:       cfg.AnonKey,
		Timeout:       cfg.HTTPTimeout,
		SlowThreshold: cfg.SlowThreshold,
	}
	// auth вызовы анонимные, поэтому у сервиса сессии свой клиент без TokenSource
	a.Auth = auth.NewService(api.NewClient(cfg.APIURL, baseOpts), auth.NewEncryptedStore(a.Store, key), a.Clock, a.Logger)

	clientOpts := baseOpts
	clientOpts.Tokens = a.Auth
	clientOpts.OnSlow = a.slowCall
	a.API = api.NewClient(cfg.APIURL, clientOpts)

	a.Catalog, err = catalog.New(a.API, catalog.DefaultSize)
	if err != nil {
		return err
	}
	a.Cart = cart.New(cart.Options{Remote: a.API, Products: a.Catalog, Store: a.Store, Logger: a.Logger})
	a.Orders = cache.New(cache.Options[models.Order]{Ordered: true, OnCommit: a.saveOrders})
	a.Notifications = cache.New(cache.Options[models.Notification]{Ordered: true, OnCommit: a.saveNotifications})

	a.Connectivity = clientsync.NewConnectivity(a.Notice, policy.FailureThreshold, a.Logger)
	stock := clientsync.StockPolicy{RemoveAtOrBelow: policy.RemoveAtOrBelow, ClampToStock: policy.ClampToStock}

	a.CartSync = clientsync.New(clientsync.Config[models.CartItem, models.Product]{
		Container:    a.Cart.Container(),
		Source:       clientsync.CartProducts(a.API),
		Policy:       clientsync.CartPolicy{Stock: stock},
		WriteBack:    clientsync.CartWriteBack{Remote: a.API},
		Publisher:    a.Notice,
		Connectivity: a.Connectivity,
		Logger:       a.Logger,
		Name:         DomainCart,
	})
	a.ProductSync = clientsync.New(clientsync.Config[models.Product, models.Product]{
		Container:    a.Catalog.Container(),
		Source:       clientsync.AllProducts(a.API),
		Policy:       clientsync.ProductsPolicy{},
		Adopter:      clientsync.ProductsPolicy{},
		Publisher:    a.Notice,
		Connectivity: a.Connectivity,
		Logger:       a.Logger,
		Name:         DomainProducts,
	})
	a.OrderSync = clientsync.New(clientsync.Config[models.Order, models.Order]{
		Container:    a.Orders,
		Source:       clientsync.Orders(a.API),
		Policy:       clientsync.OrdersPolicy{},
		Adopter:      clientsync.OrdersPolicy{},
		Publisher:    a.Notice,
		Connectivity: a.Connectivity,
		Logger:       a.Logger,
		Name:         DomainOrders,
	})
	a.NotificationSync = clientsync.New(clientsync.Config[models.Notification, models.Notification]{
		Container:    a.Notifications,
		Source:       clientsync.Notifications(a.API),
		Policy:       clientsync.NotificationsPolicy{},
		Adopter:      clientsync.NotificationsPolicy{},
		Publisher:    a.Notice,
		Connectivity: a.Connectivity,
		Logger:       a.Logger,
		Name:         DomainNotifications,
	})

	a.restored = map[string]*clientsync.Manual{
		DomainCart:          clientsync.NewManual(),
		DomainProducts:      clientsync.NewManual(),
		DomainOrders:        clientsync.NewManual(),
		DomainNotifications: clientsync.NewManual(),
	}
	manuals := make([]*clientsync.Manual, 0, len(a.restored))
	for _, m := range a.restored {
		manuals = append(manuals, m)
	}
	a.Pinger = clientsync.NewPinger(a.API, a.Connectivity, manuals...)

	a.Gate = maintenance.New(a.API, maintenance.Options{Clock: a.Clock, Publisher: a.Notice, Logger: a.Logger})
	a.Vouchers = voucher.NewService(a.API, a.Notice, a.Logger)
	a.Checkout = checkout.NewService(a.Gate, a.Cart, a.CartSync, a.Vouchers, a.API, a.Notice, a.Logger)
	a.Support = support.NewService(a.API, a.Notice, a.Logger)

	// последняя сохраненная корзина видна до первого прохода
	if err := a.Cart.Restore(ctx); err != nil {
		a.Logger.Warn("Failed to restore cart snapshot", "error", err)
	}
	// иначе каждый запуск заново объявляет все непрочитанные уведомления
	if err := a.restoreHistory(ctx); err != nil {
		a.Logger.Warn("Failed to restore order history", "error", err)
	}
	return nil
}

func (a *App) restoreHistory(ctx context.Context) error {
	orders, err := a.Store.LoadOrders(ctx)
	if err != nil {
		return err
	}
	list, err := a.Store.LoadNotifications(ctx)
	if err != nil {
		return err
	}

	if len(orders) > 0 {
		items := make([]cache.Item[models.Order], 0, len(orders))
		for _, o := range orders {
			items = append(items, cache.Item[models.Order]{Key: o.ID, Payload: o})
		}
		a.Orders.Replace(items)
	}
	if len(list) > 0 {
		items := make([]cache.Item[models.Notification], 0, len(list))
		for _, n := range list {
			items = append(items, cache.Item[models.Notification]{Key: n.ID, Payload: n})
		}
		a.Notifications.Replace(items)
	}
	return nil
}

func (a *App) saveOrders(_ uint64, items []cache.Item[models.Order]) {
	orders := make([]models.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, it.Payload)
	}
	if err := a.Store.SaveOrders(context.Background(), orders); err != nil {
		a.Logger.Warn("failed to save orders", "error", err)
	}
}

func (a *App) saveNotifications(_ uint64, items []cache.Item[models.Notification]) {
	list := make([]models.Notification, 0, len(items))
	for _, it := range items {
		list = append(list, it.Payload)
	}
	if err := a.Store.SaveNotifications(context.Background(), list); err != nil {
		a.Logger.Warn("failed to save notifications", "error", err)
	}
}

// ClearLocal drops every cached record of the signed-in user.
func (a *App) ClearLocal() {
	a.Cart.ClearLocal()
	a.Orders.Clear()
	a.Notifications.Clear()
}

// Close releases local storage.
func (a *App) Close() error {
	return a.Store.Close()
}

// LoggedIn reports whether a session is stored.
func (a *App) LoggedIn(ctx context.Context) bool {
	_, err := a.Auth.Current(ctx)
	return err == nil
}

// Group builds the sync loops. Private domains are only added with a session.
func (a *App) Group(ctx context.Context) *clientsync.Group {
	policy := a.Config.Policy
	g := clientsync.NewGroup(a.Logger)

	g.Add(DomainProducts, a.recorded(DomainProducts, a.ProductSync.Pass),
		clientsync.NewTicker(a.Clock, policy.ProductsInterval), a.restored[DomainProducts])

	if a.LoggedIn(ctx) {
		g.Add(DomainCart, a.recorded(DomainCart, a.CartSync.Pass),
			clientsync.NewTicker(a.Clock, policy.CartInterval), a.restored[DomainCart])
		g.Add(DomainOrders, a.recorded(DomainOrders, a.OrderSync.Pass),
			clientsync.NewTicker(a.Clock, policy.OrdersInterval), a.restored[DomainOrders])
		g.Add(DomainNotifications, a.recorded(DomainNotifications, a.NotificationSync.Pass),
			clientsync.NewTicker(a.Clock, policy.NotificationsInterval), a.restored[DomainNotifications])
	}

	g.Add(DomainPing, a.Pinger.Pass, clientsync.NewTicker(a.Clock, policy.PingInterval))
	g.Go(DomainMaintenance, func(ctx context.Context) error {
		return a.Gate.Watch(ctx, policy.MaintenanceInterval)
	})
	return g
}

// SyncOnce refreshes the maintenance state and runs one pass of every domain.
func (a *App) SyncOnce(ctx context.Context) error {
	var errs []error
	if err := a.Gate.Refresh(ctx); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", DomainMaintenance, err))
	}
	if a.LoggedIn(ctx) {
		if err := a.Cart.Load(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", DomainCart, err))
		}
	}
	if err := a.Group(ctx).PassAll(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LastSync returns the time of the last successful pass of domain.
func (a *App) LastSync(ctx context.Context, domain string) (time.Time, error) {
	return a.Store.GetLastSync(ctx, domain)
}

func (a *App) recorded(domain string, pass func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		err := pass(ctx)
		if err != nil && !errors.Is(err, clientsync.ErrInFlight) {
			return err
		}
		if err == nil {
			if err := a.Store.SaveLastSync(ctx, domain, a.Clock.Now()); err != nil {
				a.Logger.Warn("Failed to save last sync time", "domain", domain, "error", err)
			}
		}
		return nil
	}
}

func (a *App) slowCall(op string, elapsed time.Duration) {
	a.Logger.Warn("Slow remote call", "op", op, "elapsed", elapsed)
	a.Notice.Publish(notify.Notice{
		Level:   notify.LevelInfo,
		Domain:  DomainPing,
		Message: "The server is responding slowly",
	})
}
