package sync

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Trigger delivers reconciliation requests. Start blocks until ctx is done
// and calls fire for every request.
type Trigger interface {
	Start(ctx context.Context, fire func())
}

// Ticker fires on a fixed interval.
type Ticker struct {
	clock    clockwork.Clock
	interval time.Duration
}

// NewTicker создает интервальный триггер. nil clock означает реальные часы.
func NewTicker(clock clockwork.Clock, interval time.Duration) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Ticker{clock: clock, interval: interval}
}

// Start implements Trigger.
func (t *Ticker) Start(ctx context.Context, fire func()) {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			fire()
		}
	}
}

// Manual fires on demand: network restored, app foregrounded, user pull.
type Manual struct {
	subs map[int]chan struct{}
	next int
	mu   sync.Mutex
}

// NewManual создает ручной триггер
func NewManual() *Manual {
	return &Manual{subs: make(map[int]chan struct{})}
}

// Fire requests a pass from every loop the trigger is started in.
// Requests made while a pass is pending are coalesced.
func (m *Manual) Fire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Start implements Trigger.
func (m *Manual) Start(ctx context.Context, fire func()) {
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	id := m.next
	m.next++
	m.subs[id] = ch
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			fire()
		}
	}
}

// Loop runs pass once, then once per trigger request until ctx is done.
// Requests arriving during a pass collapse into one follow-up pass. Pass
// errors are the caller's business (they are already published) and do not
// stop the loop. All triggers are stopped before Loop returns.
func Loop(ctx context.Context, pass func(ctx context.Context) error, triggers ...Trigger) error {
	wake := make(chan struct{}, 1)
	fire := func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	for _, t := range triggers {
		wg.Add(1)
		go func(t Trigger) {
			defer wg.Done()
			t.Start(ctx, fire)
		}(t)
	}

	_ = pass(ctx)
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-wake:
			_ = pass(ctx)
		}
	}
}
