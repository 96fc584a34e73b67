// Package maintenance implements the client side of the maintenance switch:
// it follows the remote settings, evaluates the effective state against the
// clock and refuses guarded actions while maintenance is active.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/pkg/api"
)

// ErrInvalidWindow is returned by Schedule when start is not before end.
var ErrInvalidWindow = models.ErrInvalidWindow

// Guarded actions.
const (
	ActionCheckout = "checkout"
	ActionPayment  = "payment"
	ActionOrder    = "order"
)

// BlockedError is returned by Check while maintenance is active.
type BlockedError struct {
	Action  string
	Message string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s is blocked by maintenance: %s", e.Action, e.Message)
}

// UserMessage returns the maintenance message configured by the administrator.
func (e *BlockedError) UserMessage() string {
	return e.Message
}

// IsBlocked reports whether err is a maintenance refusal.
func IsBlocked(err error) bool {
	var be *BlockedError
	return errors.As(err, &be)
}

//go:generate moq -out remote_mock.go . Remote

// Remote reads and writes the maintenance settings.
type Remote interface {
	GetMaintenance(ctx context.Context) (*models.Maintenance, error)
	SetMaintenance(ctx context.Context, req api.MaintenanceRequest) (*models.Maintenance, error)
}

// Options зависимости Gate
type Options struct {
	Clock     clockwork.Clock
	Publisher notify.Publisher
	Logger    *slog.Logger
}

// Gate holds the last known settings and the state derived from them.
type Gate struct {
	remote    Remote
	clock     clockwork.Clock
	publisher notify.Publisher
	logger    *slog.Logger
	settings  models.Maintenance
	state     models.MaintenanceState
	mu        sync.Mutex
}

// New создает Gate в состоянии Normal
func New(remote Remote, opts Options) *Gate {
	g := &Gate{
		remote:    remote,
		clock:     opts.Clock,
		publisher: opts.Publisher,
		logger:    opts.Logger,
		settings:  models.Maintenance{Mode: models.MaintenanceOff},
		state:     models.StateNormal,
	}
	if g.clock == nil {
		g.clock = clockwork.NewRealClock()
	}
	if g.publisher == nil {
		g.publisher = notify.Discard
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Settings returns the last known settings.
func (g *Gate) Settings() models.Maintenance {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings
}

// State evaluates the effective state now, publishing a notice if it changed.
func (g *Gate) State() models.MaintenanceState {
	return g.evaluate()
}

// Check refuses action while maintenance is active.
func (g *Gate) Check(action string) error {
	if g.evaluate() != models.StateActive {
		return nil
	}
	return &BlockedError{Action: action, Message: g.Settings().DisplayMessage()}
}

// Refresh loads the remote settings. On failure the previous settings stay
// in force and the state is still re-evaluated against the clock.
func (g *Gate) Refresh(ctx context.Context) error {
	m, err := g.remote.GetMaintenance(ctx)
	if err != nil {
		g.evaluate()
		return fmt.Errorf("failed to get maintenance settings: %w", err)
	}
	g.apply(*m)
	return nil
}

// Watch refreshes immediately and then on every tick until ctx is done.
func (g *Gate) Watch(ctx context.Context, interval time.Duration) error {
	if err := g.Refresh(ctx); err != nil {
		g.logger.Warn("Maintenance refresh failed", "error", err)
	}

	ticker := g.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if err := g.Refresh(ctx); err != nil {
				g.logger.Warn("Maintenance refresh failed", "error", err)
			}
		}
	}
}

// EnableImmediate turns maintenance on now. Any schedule is dropped.
func (g *Gate) EnableImmediate(ctx context.Context, message string) error {
	return g.set(ctx, api.MaintenanceRequest{Mode: models.MaintenanceImmediate, Message: message})
}

// Schedule sets a maintenance window. Immediate mode is dropped.
func (g *Gate) Schedule(ctx context.Context, start, end time.Time, message string) error {
	if _, err := models.ScheduledMaintenance(start, end, message, g.clock.Now()); err != nil {
		return err
	}
	return g.set(ctx, api.MaintenanceRequest{Mode: models.MaintenanceScheduled, Start: &start, End: &end, Message: message})
}

// Disable turns maintenance off.
func (g *Gate) Disable(ctx context.Context) error {
	return g.set(ctx, api.MaintenanceRequest{Mode: models.MaintenanceOff})
}

func (g *Gate) set(ctx context.Context, req api.MaintenanceRequest) error {
	m, err := g.remote.SetMaintenance(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to set maintenance mode: %w", err)
	}
	g.apply(*m)
	g.logger.Info("Maintenance settings changed", "mode", m.Mode)
	return nil
}

func (g *Gate) apply(m models.Maintenance) {
	g.mu.Lock()
	g.settings = m
	g.mu.Unlock()
	g.evaluate()
}

// evaluate пересчитывает состояние и публикует уведомление о переходе
func (g *Gate) evaluate() models.MaintenanceState {
	g.mu.Lock()
	prev := g.state
	next := g.settings.StateAt(g.clock.Now())
	g.state = next
	settings := g.settings
	g.mu.Unlock()

	if prev != next {
		g.logger.Info("Maintenance state changed", "from", prev, "to", next)
		g.publisher.Publish(transitionNotice(prev, next, settings))
	}
	return next
}

func transitionNotice(prev, next models.MaintenanceState, m models.Maintenance) notify.Notice {
	n := notify.Notice{Domain: "maintenance"}
	switch next {
	case models.StateActive:
		n.Level = notify.LevelWarning
		n.Message = m.DisplayMessage()
	case models.StateScheduledPending:
		n.Level = notify.LevelInfo
		n.Message = fmt.Sprintf("Maintenance scheduled from %s to %s",
			m.Start.Format(time.RFC3339), m.End.Format(time.RFC3339))
	default:
		n.Level = notify.LevelSuccess
		if prev == models.StateScheduledPending {
			n.Message = "Scheduled maintenance cancelled"
		} else {
			n.Message = "Maintenance finished, the store is open again"
		}
	}
	return n
}
