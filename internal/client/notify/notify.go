// Package notify carries user-facing notices from services and synchronizers
// to whatever presents them.
package notify

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/marketsync/internal/client/api"
)

// Level важность уведомления
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one transient message for the user.
type Notice struct {
	At      time.Time
	Level   Level
	Domain  string // cart, products, orders, ...
	Key     string // ключ элемента, если уведомление о конкретной записи
	Message string
}

//go:generate moq -out publisher_mock.go . Publisher

// Publisher accepts notices. Implementations must not block the caller for long.
type Publisher interface {
	Publish(n Notice)
}

// Discard drops every notice.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Notice) {}

// Hub fans notices out to subscribers. A subscriber that does not keep up
// loses notices rather than stalling the publisher.
type Hub struct {
	logger *slog.Logger
	subs   map[int]chan Notice
	mu     sync.Mutex
	nextID int
}

// NewHub создает Hub
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{logger: logger, subs: make(map[int]chan Notice)}
}

// Publish implements Publisher.
func (h *Hub) Publish(n Notice) {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	h.logger.Debug("notice", "level", n.Level, "domain", n.Domain, "key", n.Key, "message", n.Message)

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		select {
		case ch <- n:
		default:
			h.logger.Warn("notice dropped, subscriber is slow", "subscriber", id, "message", n.Message)
		}
	}
}

// Subscribe registers a listener with the given buffer size. The returned
// function unsubscribes and closes the channel; it is safe to call twice.
func (h *Hub) Subscribe(buffer int) (<-chan Notice, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Notice, buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// UserMessager is implemented by errors that already carry text for the user.
type UserMessager interface {
	UserMessage() string
}

// Describe turns an error from the client stack into text for the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var um UserMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}

	var ne *api.NetworkError
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return "The server did not respond in time. Please try again."
		}
		return "Connection problems. Please check your network and try again."
	}

	var ae *api.AuthError
	if errors.As(err, &ae) {
		return "Your session has expired or is not authorized. Please log in again."
	}

	var be *api.BusinessError
	if errors.As(err, &be) {
		if be.Unparsed {
			return "The server is temporarily unavailable. Please try again later."
		}
		return be.Message
	}

	return err.Error()
}

// LevelFor maps an error to the level used when it is published.
func LevelFor(err error) Level {
	if api.IsTransient(err) {
		return LevelWarning
	}
	return LevelError
}

// Error publishes err as a notice for domain.
func Error(p Publisher, domain string, err error) {
	p.Publish(Notice{Level: LevelFor(err), Domain: domain, Message: Describe(err)})
}
