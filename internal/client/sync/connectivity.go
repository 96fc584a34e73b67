package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/iudanet/marketsync/internal/client/notify"
)

// DefaultFailureThreshold число подряд неудачных запросов до баннера о проблемах со связью
const DefaultFailureThreshold = 3

// Notice texts for connectivity changes.
const (
	MessageConnectionProblems = "connection problems"
	MessageConnectionRestored = "connection restored"
)

// Connectivity counts consecutive transport failures across everything that
// reports to it. Crossing the threshold publishes one warning; the first
// success afterwards publishes one recovery notice and runs OnRestore callbacks.
type Connectivity struct {
	publisher notify.Publisher
	logger    *slog.Logger
	onRestore []func()
	threshold int
	failures  int
	offline   bool
	mu        sync.Mutex
}

// NewConnectivity создает счетчик связности
func NewConnectivity(publisher notify.Publisher, threshold int, logger *slog.Logger) *Connectivity {
	if publisher == nil {
		publisher = notify.Discard
	}
	if threshold < 1 {
		threshold = DefaultFailureThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Connectivity{publisher: publisher, threshold: threshold, logger: logger}
}

// OnRestore registers fn to run on every offline to online transition.
func (c *Connectivity) OnRestore(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRestore = append(c.onRestore, fn)
}

// Failure records a transport failure. Cancellation of the caller's context is ignored.
func (c *Connectivity) Failure(domain string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}

	c.mu.Lock()
	c.failures++
	crossed := !c.offline && c.failures >= c.threshold
	if crossed {
		c.offline = true
	}
	failures := c.failures
	c.mu.Unlock()

	c.logger.Warn("Remote call failed", "domain", domain, "consecutive_failures", failures, "error", err)
	if crossed {
		c.publisher.Publish(notify.Notice{Level: notify.LevelWarning, Domain: domain, Message: MessageConnectionProblems})
	}
}

// Success resets the failure count.
func (c *Connectivity) Success(domain string) {
	c.mu.Lock()
	restored := c.offline
	c.offline = false
	c.failures = 0
	callbacks := c.onRestore
	c.mu.Unlock()

	if !restored {
		return
	}
	c.logger.Info("Connection restored", "domain", domain)
	c.publisher.Publish(notify.Notice{Level: notify.LevelSuccess, Domain: domain, Message: MessageConnectionRestored})
	for _, fn := range callbacks {
		fn()
	}
}

// Offline reports whether the failure threshold has been reached.
func (c *Connectivity) Offline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offline
}

// Failures returns the current consecutive failure count.
func (c *Connectivity) Failures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}
