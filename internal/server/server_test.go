package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/models"
)

type sweepingTokens struct {
	swept chan struct{}
	err   error
}

func (s *sweepingTokens) SaveRefreshToken(context.Context, *models.RefreshToken) error { return nil }

func (s *sweepingTokens) GetRefreshToken(context.Context, string) (*models.RefreshToken, error) {
	return nil, nil
}

func (s *sweepingTokens) DeleteRefreshToken(context.Context, string) error { return nil }

func (s *sweepingTokens) DeleteExpiredTokens(context.Context) (int, error) {
	s.swept <- struct{}{}
	if s.err != nil {
		return 0, s.err
	}
	return 2, nil
}

func TestRunTokenJanitor(t *testing.T) {
	tests := []struct {
		err  error
		name string
	}{
		{name: "tokens deleted"},
		// ошибка хранилища не останавливает цикл
		{name: "storage error", err: errors.New("disk I/O error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &sweepingTokens{swept: make(chan struct{}, 1), err: tt.err}
			clock := clockwork.NewFakeClock()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				defer close(done)
				RunTokenJanitor(ctx, tokens, clock, time.Hour, logger)
			}()

			for range 2 {
				clock.BlockUntil(1)
				clock.Advance(time.Hour)
				select {
				case <-tokens.swept:
				case <-time.After(time.Second):
					require.FailNow(t, "janitor did not sweep")
				}
			}

			cancel()
			select {
			case <-done:
			case <-time.After(time.Second):
				require.FailNow(t, "janitor did not stop")
			}
			assert.Empty(t, tokens.swept)
		})
	}
}
