// Package catalog keeps the product list and a bounded lookup cache of
// individual products.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/iudanet/marketsync/internal/client/cache"
	"github.com/iudanet/marketsync/internal/models"
)

// DefaultSize размер LRU по умолчанию
const DefaultSize = 512

// ErrNotFound is returned by Lookup for an unknown product.
var ErrNotFound = errors.New("product not found")

//go:generate moq -out fetcher_mock.go . Fetcher

// Fetcher loads authoritative product records.
type Fetcher interface {
	GetProducts(ctx context.Context, ids []string) ([]models.Product, error)
}

// Catalog is the products domain cache.
type Catalog struct {
	items   *cache.Container[models.Product]
	recent  *lru.Cache[string, models.Product]
	fetcher Fetcher
	known   map[string]struct{} // ключи контейнера на момент последнего коммита
	mu      sync.Mutex
}

// New создает каталог с LRU заданного размера
func New(fetcher Fetcher, size int) (*Catalog, error) {
	if size <= 0 {
		size = DefaultSize
	}
	recent, err := lru.New[string, models.Product](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create product lru: %w", err)
	}

	c := &Catalog{recent: recent, fetcher: fetcher, known: make(map[string]struct{})}
	c.items = cache.New(cache.Options[models.Product]{OnCommit: c.onCommit})
	return c, nil
}

// Container returns the products container driven by the synchronizer.
func (c *Catalog) Container() *cache.Container[models.Product] {
	return c.items
}

// Products returns the cached list, optionally filtered by category (case-insensitive).
func (c *Catalog) Products(category string) []models.Product {
	items := c.items.Read()
	out := make([]models.Product, 0, len(items))
	for _, it := range items {
		if category != "" && !strings.EqualFold(it.Payload.Category, category) {
			continue
		}
		out = append(out, it.Payload)
	}
	return out
}

// Lookup resolves one product: the synchronized list first, then the LRU,
// then the remote store. Remote hits are kept in the LRU.
func (c *Catalog) Lookup(ctx context.Context, id string) (models.Product, error) {
	if it, ok := c.items.Get(id); ok {
		return it.Payload, nil
	}
	if p, ok := c.recent.Get(id); ok {
		return p, nil
	}
	if c.fetcher == nil {
		return models.Product{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	products, err := c.fetcher.GetProducts(ctx, []string{id})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	for _, p := range products {
		if p.ID == id {
			c.recent.Add(id, p)
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Cached reports how many products the LRU currently holds.
func (c *Catalog) Cached() int {
	return c.recent.Len()
}

// onCommit держит LRU согласованным с контейнером: обновляет изменённые
// товары и выбрасывает удалённые.
func (c *Catalog) onCommit(_ uint64, items []cache.Item[models.Product]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(map[string]struct{}, len(items))
	for _, it := range items {
		next[it.Key] = struct{}{}
		if c.recent.Contains(it.Key) {
			c.recent.Add(it.Key, it.Payload)
		}
	}
	for k := range c.known {
		if _, ok := next[k]; !ok {
			c.recent.Remove(k)
		}
	}
	c.known = next
}
