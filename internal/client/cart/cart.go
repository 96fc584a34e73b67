// Package cart is the shopper's cart: a cache container of cart items with
// optimistic mutators that persist to the remote store.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/marketsync/internal/client/cache"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

var (
	// ErrEmpty is returned when an operation needs a non-empty cart
	ErrEmpty = errors.New("cart is empty")

	// ErrOutOfStock is returned when adding a product without stock
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrInsufficientStock is returned when the requested quantity exceeds stock
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
)

//go:generate moq -out remote_mock.go . Remote
//go:generate moq -out products_mock.go . Products
//go:generate moq -out snapshot_store_mock.go . SnapshotStore

// Remote persists cart rows.
type Remote interface {
	ListCart(ctx context.Context) ([]models.CartItem, error)
	AddCartItem(ctx context.Context, req api.AddCartItemRequest) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, productID string, quantity int) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error
}

// Products resolves the product a new cart line refers to.
type Products interface {
	Lookup(ctx context.Context, id string) (models.Product, error)
}

// SnapshotStore keeps the last committed cart on disk.
type SnapshotStore interface {
	SaveCart(ctx context.Context, items []models.CartItem) error
	LoadCart(ctx context.Context) ([]models.CartItem, error)
}

// Cart представляет корзину покупателя
type Cart struct {
	items    *cache.Container[models.CartItem]
	remote   Remote
	products Products
	store    SnapshotStore
	logger   *slog.Logger
	now      func() time.Time
}

// Options зависимости корзины
type Options struct {
	Remote   Remote
	Products Products
	Store    SnapshotStore // может быть nil
	Logger   *slog.Logger
	Now      func() time.Time
}

// New создает корзину
func New(opts Options) *Cart {
	c := &Cart{
		remote:   opts.Remote,
		products: opts.Products,
		store:    opts.Store,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.items = cache.New(cache.Options[models.CartItem]{
		Ordered:    true,
		Quantifier: WithQuantity,
		OnCommit:   c.persist,
	})
	return c
}

// WithQuantity returns item with its requested quantity set to n.
func WithQuantity(item models.CartItem, n int) models.CartItem {
	item.Quantity = n
	return item
}

// Container returns the cart container driven by the synchronizer.
func (c *Cart) Container() *cache.Container[models.CartItem] {
	return c.items
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	snap := c.items.Read()
	out := make([]models.CartItem, 0, len(snap))
	for _, it := range snap {
		out = append(out, it.Payload)
	}
	return out
}

// TotalCount returns the sum of quantities.
func (c *Cart) TotalCount() int {
	total := 0
	for _, it := range c.items.Read() {
		total += it.Payload.Quantity
	}
	return total
}

// TotalValue returns the sum of line totals, each using the unit price
// override when present.
func (c *Cart) TotalValue() int64 {
	var total int64
	for _, it := range c.items.Read() {
		total += it.Payload.LineTotal()
	}
	return total
}

// Restore fills the cart from the local snapshot store.
func (c *Cart) Restore(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	saved, err := c.store.LoadCart(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart snapshot: %w", err)
	}
	c.items.Replace(toItems(saved))
	return nil
}

// Load replaces the cart with the remote one.
func (c *Cart) Load(ctx context.Context) error {
	remote, err := c.remote.ListCart(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	c.items.Replace(toItems(remote))
	return nil
}

// Add puts quantity units of a product into the cart. The local cart changes
// first; when the remote call fails the change is reverted and the error returned.
func (c *Cart) Add(ctx context.Context, productID string, quantity int) error {
	if err := validation.ValidateQuantity(quantity); err != nil {
		return err
	}

	product, err := c.products.Lookup(ctx, productID)
	if err != nil {
		return err
	}
	if product.Stock <= 0 {
		return ErrOutOfStock
	}

	prev, existed := c.items.Get(productID)
	total := quantity
	if existed {
		total += prev.Payload.Quantity
	}
	if err := validation.ValidateQuantity(total); err != nil {
		return err
	}
	if total > product.Stock {
		return fmt.Errorf("%w: %d available", ErrInsufficientStock, product.Stock)
	}

	var m cache.Mutation[models.CartItem]
	if existed {
		m = cache.SetQuantity[models.CartItem](productID, total)
	} else {
		m = cache.Add(productID, models.CartItem{ProductID: productID, Product: product, Quantity: total, AddedAt: c.now()})
	}
	if err := c.items.Apply(m); err != nil {
		return err
	}

	saved, err := c.remote.AddCartItem(ctx, api.AddCartItemRequest{ProductID: productID, Quantity: quantity})
	if err != nil {
		c.revert(productID, prev, existed)
		return err
	}
	c.adopt(*saved)
	return nil
}

// SetQuantity changes the quantity of a cart line.
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if err := validation.ValidateQuantity(quantity); err != nil {
		return err
	}
	prev, ok := c.items.Get(productID)
	if !ok {
		return fmt.Errorf("%s: %w", productID, cache.ErrNotFound)
	}
	if err := c.items.Apply(cache.SetQuantity[models.CartItem](productID, quantity)); err != nil {
		return err
	}

	saved, err := c.remote.UpdateCartItem(ctx, productID, quantity)
	if err != nil {
		c.revert(productID, prev, true)
		return err
	}
	c.adopt(*saved)
	return nil
}

// Remove deletes a cart line.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	prev, ok := c.items.Get(productID)
	if !ok {
		return fmt.Errorf("%s: %w", productID, cache.ErrNotFound)
	}
	if err := c.items.Apply(cache.Remove[models.CartItem](productID)); err != nil {
		return err
	}

	if err := c.remote.RemoveCartItem(ctx, productID); err != nil {
		if restoreErr := c.items.Apply(cache.Add(productID, prev.Payload)); restoreErr != nil {
			c.logger.Warn("failed to restore cart line", "product_id", productID, "error", restoreErr)
		}
		return err
	}
	return nil
}

// Clear empties the cart locally and remotely.
func (c *Cart) Clear(ctx context.Context) error {
	prev := c.items.Read()
	c.items.Clear()

	if err := c.remote.ClearCart(ctx); err != nil {
		c.items.Replace(prev)
		return err
	}
	return nil
}

// ClearLocal empties the cart without touching the remote store (logout).
func (c *Cart) ClearLocal() {
	c.items.Clear()
}

// revert откатывает оптимистичное изменение позиции
func (c *Cart) revert(productID string, prev cache.Item[models.CartItem], existed bool) {
	var err error
	_, present := c.items.Get(productID)
	switch {
	case existed && present:
		err = c.items.Apply(cache.ReplacePayload(productID, prev.Payload))
	case existed:
		err = c.items.Apply(cache.Add(productID, prev.Payload))
	case present:
		err = c.items.Apply(cache.Remove[models.CartItem](productID))
	}
	if err != nil {
		c.logger.Warn("failed to revert cart line", "product_id", productID, "error", err)
	}
}

// adopt заменяет локальную строку серверной версией
func (c *Cart) adopt(saved models.CartItem) {
	if saved.ProductID == "" {
		return
	}
	if _, ok := c.items.Get(saved.ProductID); !ok {
		return
	}
	if err := c.items.Apply(cache.ReplacePayload(saved.ProductID, saved)); err != nil {
		c.logger.Warn("failed to adopt saved cart line", "product_id", saved.ProductID, "error", err)
	}
}

func (c *Cart) persist(_ uint64, items []cache.Item[models.CartItem]) {
	if c.store == nil {
		return
	}
	lines := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.Payload)
	}
	if err := c.store.SaveCart(context.Background(), lines); err != nil {
		c.logger.Warn("failed to save cart snapshot", "error", err)
	}
}

func toItems(lines []models.CartItem) []cache.Item[models.CartItem] {
	out := make([]cache.Item[models.CartItem], 0, len(lines))
	for _, l := range lines {
		out = append(out, cache.Item[models.CartItem]{Key: l.ProductID, Payload: l})
	}
	return out
}
