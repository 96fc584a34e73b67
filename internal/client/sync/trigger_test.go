package sync

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/client/api"
	"github.com/iudanet/marketsync/internal/client/notify"
	pkgapi "github.com/iudanet/marketsync/pkg/api"
)

func countingPass(passes chan<- struct{}) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		passes <- struct{}{}
		return nil
	}
}

func waitPass(t *testing.T, passes <-chan struct{}) {
	t.Helper()
	select {
	case <-passes:
	case <-time.After(2 * time.Second):
		t.Fatal("pass did not happen")
	}
}

func manualStarted(m *Manual) func() bool {
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return len(m.subs) > 0
	}
}

func TestLoop_TickerDrivesPasses(t *testing.T) {
	clock := clockwork.NewFakeClock()
	passes := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Loop(ctx, countingPass(passes), NewTicker(clock, 10*time.Second)) }()

	// первый проход сразу при старте
	waitPass(t, passes)

	clock.BlockUntil(1)
	clock.Advance(10 * time.Second)
	waitPass(t, passes)

	clock.Advance(10 * time.Second)
	waitPass(t, passes)

	cancel()
	require.NoError(t, <-done)
}

func TestLoop_ManualTrigger(t *testing.T) {
	manual := NewManual()
	passes := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Loop(ctx, countingPass(passes), manual) }()

	waitPass(t, passes)
	require.Eventually(t, manualStarted(manual), time.Second, time.Millisecond)

	manual.Fire()
	waitPass(t, passes)

	cancel()
	require.NoError(t, <-done)
	assert.False(t, manualStarted(manual)())
}

func TestLoop_DeadlineIsReturned(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Loop(ctx, func(ctx context.Context) error { return errors.New("ignored") })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGroup_RunAndPassAll(t *testing.T) {
	var a, b atomic.Int32
	g := NewGroup(nil)
	g.Add("a", func(ctx context.Context) error { a.Add(1); return nil })
	g.Add("b", func(ctx context.Context) error { b.Add(1); return errors.New("b failed") })
	g.Go("watch", func(ctx context.Context) error { <-ctx.Done(); return ctx.Err() })

	assert.Equal(t, []string{"a", "b", "watch"}, g.Names())

	err := g.PassAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b failed")
	assert.Equal(t, int32(1), a.Load())
	assert.Equal(t, int32(1), b.Load())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	require.Eventually(t, func() bool { return a.Load() == 2 && b.Load() == 2 }, time.Second, time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestGroup_JobErrorStopsGroup(t *testing.T) {
	g := NewGroup(nil)
	g.Go("broken", func(ctx context.Context) error { return errors.New("boom") })
	g.Go("watch", func(ctx context.Context) error { <-ctx.Done(); return ctx.Err() })

	err := g.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken: boom")
}

func TestPinger_RestoreFiresManualTriggers(t *testing.T) {
	notices := &notify.PublisherMock{PublishFunc: func(n notify.Notice) {}}
	conn := NewConnectivity(notices, 2, nil)
	restored := NewManual()

	var online atomic.Bool
	checker := &HealthCheckerMock{
		PingFunc: func(ctx context.Context) (*pkgapi.HealthResponse, error) {
			if online.Load() {
				return &pkgapi.HealthResponse{Status: "ok"}, nil
			}
			return nil, &api.NetworkError{Op: "ping", Err: errors.New("offline")}
		},
	}
	pinger := NewPinger(checker, conn, restored)

	fired := make(chan struct{}, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go restored.Start(ctx, func() { fired <- struct{}{} })
	require.Eventually(t, manualStarted(restored), time.Second, time.Millisecond)

	assert.Error(t, pinger.Pass(ctx))
	assert.Error(t, pinger.Pass(ctx))
	assert.True(t, conn.Offline())
	assert.Empty(t, fired)

	online.Store(true)
	require.NoError(t, pinger.Pass(ctx))
	waitPass(t, fired)

	// уже online: повторный успех ничего не запускает
	require.NoError(t, pinger.Pass(ctx))
	assert.Empty(t, fired)

	var messages []string
	for _, c := range notices.PublishCalls() {
		messages = append(messages, c.N.Message)
	}
	assert.Equal(t, []string{MessageConnectionProblems, MessageConnectionRestored}, messages)
	assert.Len(t, checker.PingCalls(), 4)
}
