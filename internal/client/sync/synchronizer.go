// Package sync reconciles cached domain state with the remote store.
//
// A Synchronizer owns one container. On every pass it fetches the
// authoritative records for the cached keys, asks its Policy for a Decision
// per item, applies all decisions in one commit and publishes one notice per
// visible change. Passes are skipped when neither side changed since the
// previous one.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/iudanet/marketsync/internal/client/api"
	"github.com/iudanet/marketsync/internal/client/cache"
	"github.com/iudanet/marketsync/internal/client/notify"
)

// ErrInFlight is returned when a pass is requested while another one runs.
var ErrInFlight = errors.New("reconciliation already in progress")

// Source fetches the authoritative records for keys. Keys missing from the
// result are treated as gone. A source may return records for other keys too.
type Source[R any] interface {
	Fetch(ctx context.Context, keys []string) (map[string]R, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[R any] func(ctx context.Context, keys []string) (map[string]R, error)

// Fetch implements Source.
func (f SourceFunc[R]) Fetch(ctx context.Context, keys []string) (map[string]R, error) {
	return f(ctx, keys)
}

// Policy decides how a cached item follows its remote record.
type Policy[T, R any] interface {
	Decide(item cache.Item[T], remote R, found bool) Decision[T]
	LocalFingerprint(item cache.Item[T]) string
	RemoteFingerprint(key string, remote R) string
}

// Adopter turns a remote-only record into a cached item.
type Adopter[T, R any] interface {
	Adopt(key string, remote R) (Decision[T], bool)
}

// WriteBack persists applied decisions to the remote store.
type WriteBack[T any] interface {
	Persist(ctx context.Context, d Decision[T]) error
}

// Config описывает синхронизатор одного домена
type Config[T, R any] struct {
	Container    *cache.Container[T]
	Source       Source[R]
	Policy       Policy[T, R]
	Adopter      Adopter[T, R]     // может быть nil
	WriteBack    WriteBack[T]      // может быть nil
	Publisher    notify.Publisher  // может быть nil
	Connectivity *Connectivity     // общий счетчик; при nil создается собственный
	Logger       *slog.Logger
	Name         string
	// FailureThreshold используется только для собственного счетчика
	FailureThreshold int
}

// Result сводка одного прохода
type Result struct {
	Kept    int
	Updated int
	Removed int
	Clamped int
	Adopted int
	Notices int
	Skipped bool // отпечатки не изменились, решения не принимались
}

// Changes returns the number of applied non-keep decisions.
func (r Result) Changes() int {
	return r.Updated + r.Removed + r.Clamped + r.Adopted
}

// Synchronizer reconciles one container.
type Synchronizer[T, R any] struct {
	container *cache.Container[T]
	source    Source[R]
	policy    Policy[T, R]
	adopter   Adopter[T, R]
	writeBack WriteBack[T]
	publisher notify.Publisher
	conn      *Connectivity
	logger    *slog.Logger
	name      string

	// отпечатки после последнего успешного прохода
	prevLocal  uint64
	prevRemote uint64

	havePrev atomic.Bool
	running  atomic.Bool

	// уведомление об ошибке показывается один раз до следующего успешного прохода
	authNotified   atomic.Bool
	rejectNotified atomic.Bool
}

// New создает синхронизатор
func New[T, R any](cfg Config[T, R]) *Synchronizer[T, R] {
	s := &Synchronizer[T, R]{
		container: cfg.Container,
		source:    cfg.Source,
		policy:    cfg.Policy,
		adopter:   cfg.Adopter,
		writeBack: cfg.WriteBack,
		publisher: cfg.Publisher,
		conn:      cfg.Connectivity,
		logger:    cfg.Logger,
		name:      cfg.Name,
	}
	if s.publisher == nil {
		s.publisher = notify.Discard
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("domain", s.name)
	if s.conn == nil {
		s.conn = NewConnectivity(s.publisher, cfg.FailureThreshold, s.logger)
	}
	return s
}

// Name returns the domain name.
func (s *Synchronizer[T, R]) Name() string { return s.name }

// Connectivity returns the failure counter this synchronizer reports to.
func (s *Synchronizer[T, R]) Connectivity() *Connectivity { return s.conn }

// Pass runs Reconcile and drops the summary.
func (s *Synchronizer[T, R]) Pass(ctx context.Context) error {
	_, err := s.Reconcile(ctx)
	return err
}

// Run reconciles once, then on every trigger until ctx is done.
func (s *Synchronizer[T, R]) Run(ctx context.Context, triggers ...Trigger) error {
	return Loop(ctx, s.Pass, triggers...)
}

// Reconcile performs one pass. A failed fetch leaves the container untouched.
func (s *Synchronizer[T, R]) Reconcile(ctx context.Context) (*Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer s.running.Store(false)

	snap := s.container.Read()
	keys := make([]string, 0, len(snap))
	for _, it := range snap {
		keys = append(keys, it.Key)
	}
	localFP := s.localFingerprint(snap)

	remote, err := s.source.Fetch(ctx, keys)
	if err != nil {
		s.fail(err)
		return nil, fmt.Errorf("%s: fetch failed: %w", s.name, err)
	}
	s.authNotified.Store(false)
	s.rejectNotified.Store(false)
	s.conn.Success(s.name)

	remoteFP := s.remoteFingerprint(remote)
	if s.havePrev.Load() && localFP == s.prevLocal && remoteFP == s.prevRemote {
		s.logger.Debug("Reconciliation skipped, nothing changed")
		return &Result{Skipped: true}, nil
	}

	requested := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		requested[k] = struct{}{}
	}

	var (
		decisions []Decision[T]
		result    Result
	)
	err = s.container.ApplyFunc(func(items []cache.Item[T]) []cache.Mutation[T] {
		decisions, result = s.decide(items, remote, requested)
		mutations := make([]cache.Mutation[T], 0, len(decisions))
		for _, d := range decisions {
			mutations = append(mutations, mutationFor(d))
		}
		return mutations
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to apply decisions: %w", s.name, err)
	}

	for _, d := range decisions {
		if !d.Silent {
			s.publisher.Publish(notify.Notice{Level: levelFor(d.Kind), Domain: s.name, Key: d.Key, Message: d.Message()})
			result.Notices++
		}
	}
	s.persist(ctx, decisions)

	s.prevLocal = s.localFingerprint(s.container.Read())
	s.prevRemote = remoteFP
	s.havePrev.Store(true)

	s.logger.Debug("Reconciliation finished",
		"kept", result.Kept, "updated", result.Updated, "removed", result.Removed,
		"clamped", result.Clamped, "adopted", result.Adopted)
	return &result, nil
}

// Reset forgets the recorded fingerprints so the next pass always decides.
func (s *Synchronizer[T, R]) Reset() {
	s.havePrev.Store(false)
}

func (s *Synchronizer[T, R]) decide(items []cache.Item[T], remote map[string]R, requested map[string]struct{}) ([]Decision[T], Result) {
	var (
		decisions []Decision[T]
		result    Result
	)
	cached := make(map[string]struct{}, len(items))

	for _, it := range items {
		cached[it.Key] = struct{}{}
		// элемент появился после запроса, его судьба решится на следующем проходе
		if _, ok := requested[it.Key]; !ok {
			result.Kept++
			continue
		}
		r, found := remote[it.Key]
		d := s.policy.Decide(it, r, found)
		d.Key = it.Key
		if d.Kind == Keep {
			result.Kept++
			continue
		}
		count(&result, d.Kind)
		decisions = append(decisions, d)
	}

	if s.adopter == nil {
		return decisions, result
	}

	remoteKeys := make([]string, 0, len(remote))
	for k := range remote {
		remoteKeys = append(remoteKeys, k)
	}
	slices.Sort(remoteKeys)

	for _, k := range remoteKeys {
		if _, ok := cached[k]; ok {
			continue
		}
		// удален пользователем во время запроса
		if _, ok := requested[k]; ok {
			continue
		}
		d, ok := s.adopter.Adopt(k, remote[k])
		if !ok {
			continue
		}
		d.Key = k
		d.Kind = Adopt
		result.Adopted++
		decisions = append(decisions, d)
	}
	return decisions, result
}

func (s *Synchronizer[T, R]) fail(err error) {
	switch {
	case api.IsAuth(err):
		if !s.authNotified.Swap(true) {
			notify.Error(s.publisher, s.name, err)
		}
		s.logger.Warn("Reconciliation unauthorized", "error", err)
	case api.IsTransient(err):
		s.conn.Failure(s.name, err)
	case api.IsBusiness(err):
		if !s.rejectNotified.Swap(true) {
			notify.Error(s.publisher, s.name, err)
		}
		s.logger.Warn("Reconciliation rejected", "error", err)
	default:
		s.conn.Failure(s.name, err)
	}
}

func (s *Synchronizer[T, R]) persist(ctx context.Context, decisions []Decision[T]) {
	if s.writeBack == nil {
		return
	}
	for _, d := range decisions {
		if err := s.writeBack.Persist(ctx, d); err != nil {
			s.logger.Warn("Failed to write back decision", "key", d.Key, "kind", d.Kind.String(), "error", err)
		}
	}
}

func (s *Synchronizer[T, R]) localFingerprint(items []cache.Item[T]) uint64 {
	tokens := make(map[string]string, len(items))
	for _, it := range items {
		tokens[it.Key] = s.policy.LocalFingerprint(it)
	}
	return Fingerprint(tokens)
}

func (s *Synchronizer[T, R]) remoteFingerprint(remote map[string]R) uint64 {
	tokens := make(map[string]string, len(remote))
	for k, r := range remote {
		tokens[k] = s.policy.RemoteFingerprint(k, r)
	}
	return Fingerprint(tokens)
}

func mutationFor[T any](d Decision[T]) cache.Mutation[T] {
	switch d.Kind {
	case Remove:
		return cache.Remove[T](d.Key)
	case Adopt:
		return cache.Add(d.Key, d.Payload)
	default:
		return cache.ReplacePayload(d.Key, d.Payload)
	}
}

func count(r *Result, k Kind) {
	switch k {
	case Update:
		r.Updated++
	case Remove:
		r.Removed++
	case Clamp:
		r.Clamped++
	case Adopt:
		r.Adopted++
	}
}

func levelFor(k Kind) notify.Level {
	switch k {
	case Remove, Clamp:
		return notify.LevelWarning
	}
	return notify.LevelInfo
}
