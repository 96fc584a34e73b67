package sync

import (
	"context"

	"github.com/iudanet/marketsync/pkg/api"
)

//go:generate moq -out health_checker_mock.go . HealthChecker

// HealthChecker calls the gateway health endpoint.
type HealthChecker interface {
	Ping(ctx context.Context) (*api.HealthResponse, error)
}

// Pinger probes connectivity and, on the offline to online transition,
// fires the given manual triggers so every domain reconciles right away.
type Pinger struct {
	checker HealthChecker
	conn    *Connectivity
}

// NewPinger создает пингер, связанный со счетчиком связности
func NewPinger(checker HealthChecker, conn *Connectivity, restored ...*Manual) *Pinger {
	conn.OnRestore(func() {
		for _, m := range restored {
			m.Fire()
		}
	})
	return &Pinger{checker: checker, conn: conn}
}

// Pass performs one probe.
func (p *Pinger) Pass(ctx context.Context) error {
	if _, err := p.checker.Ping(ctx); err != nil {
		p.conn.Failure("ping", err)
		return err
	}
	p.conn.Success("ping")
	return nil
}
