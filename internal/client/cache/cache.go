// Package cache holds the in-memory, per-domain view of remote records.
//
// A Container is the single owner of its items. Readers get snapshots,
// writers go through Apply or Replace, and every committed write bumps the
// container version and signals subscribers once.
package cache

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrNotFound is returned when a mutation targets a key that is not cached
	ErrNotFound = errors.New("item not found")

	// ErrExists is returned by Add for a key that is already cached
	ErrExists = errors.New("item already exists")

	// ErrNoQuantifier is returned by SetQuantity on a container without a Quantifier
	ErrNoQuantifier = errors.New("container does not support quantities")

	// ErrInvalidQuantity is returned by SetQuantity for n < 1
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Item is one cached record.
type Item[T any] struct {
	Payload T
	Key     string
	Version uint64 // версия коммита, в котором элемент менялся последний раз
}

// Quantifier returns payload with its requested quantity set to n.
type Quantifier[T any] func(payload T, n int) T

// Options настройки контейнера
type Options[T any] struct {
	Quantifier Quantifier[T]
	// OnCommit получает снимок после каждой зафиксированной записи.
	// Вызовы упорядочены так же, как записи. Вызывать методы контейнера из хука нельзя.
	OnCommit func(version uint64, items []Item[T])
	// Ordered: порядок вставки (корзина, заказы); иначе по возрастанию ключа
	Ordered bool
}

// Container is a concurrency-safe keyed collection.
type Container[T any] struct {
	items   map[string]Item[T]
	subs    map[int]chan struct{}
	opts    Options[T]
	order   []string
	version uint64
	nextSub int
	mu      sync.RWMutex
	hookMu  sync.Mutex
	subMu   sync.Mutex
}

// New создает пустой контейнер
func New[T any](opts Options[T]) *Container[T] {
	return &Container[T]{
		items: make(map[string]Item[T]),
		subs:  make(map[int]chan struct{}),
		opts:  opts,
	}
}

// Read returns a snapshot of all items.
func (c *Container[T]) Read() []Item[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

// Get returns the item stored under key.
func (c *Container[T]) Get(key string) (Item[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[key]
	return it, ok
}

// Len returns the number of cached items.
func (c *Container[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version returns the version of the last committed write.
func (c *Container[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Keys returns the cached keys in read order.
func (c *Container[T]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.opts.Ordered {
		return slices.Clone(c.order)
	}
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Apply commits mutations atomically: either all of them are applied under a
// single lock, or none is and the first error is returned. An empty call is a no-op.
func (c *Container[T]) Apply(mutations ...Mutation[T]) error {
	return c.ApplyFunc(func([]Item[T]) []Mutation[T] { return mutations })
}

// ApplyFunc computes mutations from the current snapshot and commits them
// under the same lock, so nothing can change between reading and writing.
// fn must not call back into the container.
func (c *Container[T]) ApplyFunc(fn func(items []Item[T]) []Mutation[T]) error {
	c.mu.Lock()
	mutations := fn(c.snapshot())
	if len(mutations) == 0 {
		c.mu.Unlock()
		return nil
	}

	items := make(map[string]Item[T], len(c.items))
	for k, v := range c.items {
		items[k] = v
	}
	order := slices.Clone(c.order)
	version := c.version + 1

	for _, m := range mutations {
		var err error
		items, order, err = c.apply(items, order, m, version)
		if err != nil {
			c.mu.Unlock()
			return err
		}
	}

	c.items = items
	c.order = order
	c.commitLocked(version)
	return nil
}

// Replace swaps the whole content for items, keeping their order.
// Duplicate keys keep the last payload.
func (c *Container[T]) Replace(items []Item[T]) {
	c.mu.Lock()

	version := c.version + 1
	next := make(map[string]Item[T], len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		if _, dup := next[it.Key]; !dup {
			order = append(order, it.Key)
		}
		it.Version = version
		next[it.Key] = it
	}

	c.items = next
	c.order = order
	c.commitLocked(version)
}

// Clear removes every item.
func (c *Container[T]) Clear() {
	c.Replace(nil)
}

// Subscribe registers a change listener. Signals are coalesced: a slow
// listener sees at most one pending signal and should re-read the snapshot.
func (c *Container[T]) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
			close(ch)
		})
	}
}

// commitLocked is called with mu held and releases it.
func (c *Container[T]) commitLocked(version uint64) {
	c.version = version
	var snap []Item[T]
	if c.opts.OnCommit != nil {
		snap = c.snapshot()
	}

	c.hookMu.Lock()
	c.mu.Unlock()
	if c.opts.OnCommit != nil {
		c.opts.OnCommit(version, snap)
	}
	c.hookMu.Unlock()

	c.subMu.Lock()
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	c.subMu.Unlock()
}

func (c *Container[T]) snapshot() []Item[T] {
	out := make([]Item[T], 0, len(c.items))
	if c.opts.Ordered {
		for _, k := range c.order {
			out = append(out, c.items[k])
		}
		return out
	}
	for _, it := range c.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b Item[T]) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return out
}

func (c *Container[T]) apply(items map[string]Item[T], order []string, m Mutation[T], version uint64) (map[string]Item[T], []string, error) {
	it, exists := items[m.key]

	switch m.kind {
	case mutationAdd:
		if exists {
			return nil, nil, fmt.Errorf("add %q: %w", m.key, ErrExists)
		}
		items[m.key] = Item[T]{Key: m.key, Payload: m.payload, Version: version}
		order = append(order, m.key)

	case mutationRemove:
		if !exists {
			return nil, nil, fmt.Errorf("remove %q: %w", m.key, ErrNotFound)
		}
		delete(items, m.key)
		order = slices.DeleteFunc(order, func(k string) bool { return k == m.key })

	case mutationSetQuantity:
		if c.opts.Quantifier == nil {
			return nil, nil, ErrNoQuantifier
		}
		if m.quantity < 1 {
			return nil, nil, fmt.Errorf("set quantity %q: %w", m.key, ErrInvalidQuantity)
		}
		if !exists {
			return nil, nil, fmt.Errorf("set quantity %q: %w", m.key, ErrNotFound)
		}
		it.Payload = c.opts.Quantifier(it.Payload, m.quantity)
		it.Version = version
		items[m.key] = it

	case mutationReplacePayload:
		if !exists {
			return nil, nil, fmt.Errorf("replace %q: %w", m.key, ErrNotFound)
		}
		it.Payload = m.payload
		it.Version = version
		items[m.key] = it
	}

	return items, order, nil
}
