package mcell

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plin1112/mcell/internal/logging"
	"github.com/plin1112/mcell/internal/transport"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
	"github.com/plin1112/mcell/pkg/release"
)

// Simulation is the high-level entry point of the release and transport
// core. It is driven by a single stepping goroutine.
type Simulation struct {
	cfg       *domain.Config
	space     *transport.Space
	store     ports.SiteStore
	mechanism ports.ReleaseMechanism
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	pageLimit int
	steps     int
}

// Option defines a functional option for configuring the Simulation.
type Option func(*Simulation)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulation) {
		s.hooks = hooks
	}
}

// WithReleaseMechanism injects the collaborator that performs delayed
// releases during playback.
func WithReleaseMechanism(m ports.ReleaseMechanism) Option {
	return func(s *Simulation) {
		s.mechanism = m
	}
}

// WithSiteStore records the descriptor of every certified site in store.
func WithSiteStore(store ports.SiteStore) Option {
	return func(s *Simulation) {
		s.store = store
	}
}

// WithPageLimit bounds the transport pages each partition queue may hold.
func WithPageLimit(n int) Option {
	return func(s *Simulation) {
		s.pageLimit = n
	}
}

// New creates a simulation around cfg.
func New(cfg *domain.Config, opts ...Option) *Simulation {
	s := &Simulation{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	spaceOpts := []transport.Option{
		transport.WithLogger(s.logger),
		transport.WithLifecycleHooks(s.hooks),
	}
	if s.mechanism != nil {
		spaceOpts = append(spaceOpts, transport.WithReleaseMechanism(s.mechanism))
	}
	if s.pageLimit > 0 {
		spaceOpts = append(spaceOpts, transport.WithQueueOptions(transport.WithPageLimit(s.pageLimit)))
	}
	s.space = transport.NewSpace(spaceOpts...)
	return s
}

// Config returns the shared configuration context.
func (s *Simulation) Config() *domain.Config {
	return s.cfg
}

// AddPartition registers a storage partition backed by pool and returns its
// index. Subvolumes name their partition by this index.
func (s *Simulation) AddPartition(name string, pool ports.Allocator[domain.Molecule]) int {
	return s.space.AddPartition(name, pool)
}

// Partition returns the partition at index i.
func (s *Simulation) Partition(i int) (*transport.Partition, bool) {
	return s.space.Partition(i)
}

// Partitions returns the number of registered partitions.
func (s *Simulation) Partitions() int {
	return s.space.Len()
}

// Certify validates a fully populated release site and, when a site store is
// configured, records its descriptor.
func (s *Simulation) Certify(ctx context.Context, site *domain.ReleaseSite) error {
	if err := release.Validate(site); err != nil {
		return err
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, release.Describe(site)); err != nil {
		return fmt.Errorf("failed to record release site '%s': %w", site.Name, err)
	}
	return nil
}

// EndStep plays back the outbound queue of every partition in index order.
// The first error is fatal to the run and stops playback.
func (s *Simulation) EndStep(ctx context.Context) error {
	s.steps++
	for i := 0; i < s.space.Len(); i++ {
		if err := s.space.PlaybackPartition(ctx, i); err != nil {
			s.logger.ErrorContext(ctx, "end of step failed", "step", s.steps, "partition", i, "error", err)
			return fmt.Errorf("step %d: %w", s.steps, err)
		}
	}
	return nil
}

// Steps returns the number of EndStep calls so far.
func (s *Simulation) Steps() int {
	return s.steps
}
