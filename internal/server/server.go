package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/marketsync/internal/server/storage"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	janitorInterval   = time.Hour
)

// Server runs the gateway HTTP listener and its background jobs.
type Server struct {
	http   *http.Server
	router *Router
	tokens storage.TokenStorage
	clock  clockwork.Clock
	logger *slog.Logger
}

// New создает сервер шлюза на addr
func New(addr string, cfg RouterConfig) *Server {
	router := NewRouter(cfg)
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router: router,
		tokens: cfg.Store,
		clock:  clock,
		logger: cfg.Logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.router.Stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Gateway listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info("Shutting down gateway")
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		RunTokenJanitor(ctx, s.tokens, s.clock, janitorInterval, s.logger)
		return nil
	})

	return g.Wait()
}

// RunTokenJanitor удаляет просроченные refresh tokens раз в interval, пока ctx жив
func RunTokenJanitor(ctx context.Context, tokens storage.TokenStorage, clock clockwork.Clock, interval time.Duration, logger *slog.Logger) {
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			n, err := tokens.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Warn("Failed to delete expired refresh tokens", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("Expired refresh tokens deleted", "count", n)
			}
		}
	}
}
