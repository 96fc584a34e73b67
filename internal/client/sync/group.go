package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Group runs several domain loops side by side. There is no ordering
// between domains.
type Group struct {
	logger *slog.Logger
	jobs   []job
}

type job struct {
	pass     func(ctx context.Context) error
	run      func(ctx context.Context) error
	name     string
	triggers []Trigger
}

// NewGroup создает пустую группу
func NewGroup(logger *slog.Logger) *Group {
	if logger == nil {
		logger = slog.Default()
	}
	return &Group{logger: logger}
}

// Add registers a pass driven by triggers.
func (g *Group) Add(name string, pass func(ctx context.Context) error, triggers ...Trigger) {
	g.jobs = append(g.jobs, job{name: name, pass: pass, triggers: triggers})
}

// Go registers a loop that manages its own schedule.
func (g *Group) Go(name string, run func(ctx context.Context) error) {
	g.jobs = append(g.jobs, job{name: name, run: run})
}

// Names returns the registered job names in registration order.
func (g *Group) Names() []string {
	names := make([]string, 0, len(g.jobs))
	for _, j := range g.jobs {
		names = append(names, j.name)
	}
	return names
}

// Run starts every job and waits until ctx is done or a job fails.
func (g *Group) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, j := range g.jobs {
		eg.Go(func() error {
			g.logger.Debug("Starting sync loop", "domain", j.name)
			var err error
			if j.run != nil {
				err = j.run(ctx)
			} else {
				err = Loop(ctx, j.pass, j.triggers...)
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

// PassAll runs one pass of every triggered job concurrently and joins the errors.
func (g *Group) PassAll(ctx context.Context) error {
	var eg errgroup.Group
	errs := make([]error, len(g.jobs))
	for i, j := range g.jobs {
		if j.pass == nil {
			continue
		}
		eg.Go(func() error {
			errs[i] = j.pass(ctx)
			return nil
		})
	}
	_ = eg.Wait()
	return errors.Join(errs...)
}
