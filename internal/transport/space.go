package transport

import (
	"log/slog"

	"github.com/plin1112/mcell/internal/logging"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
)

// Partition owns the molecule storage of a group of subvolumes together with
// its transport queues.
type Partition struct {
	Name string
	Pool ports.Allocator[domain.Molecule]
	// Outbound collects molecules leaving this partition during a step.
	Outbound *Queue
	// Inbound receives molecules materialised here by playback.
	Inbound *Queue
}

// Space is the partition table that playback resolves subvolumes against.
type Space struct {
	partitions []*Partition
	mechanism  ports.ReleaseMechanism
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	queueOpts  []QueueOption
}

// Option configures a Space.
type Option func(*Space)

// WithLogger sets the logger used for playback diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Space) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Space) {
		s.hooks = hooks
	}
}

// WithReleaseMechanism sets the collaborator that performs delayed releases.
func WithReleaseMechanism(m ports.ReleaseMechanism) Option {
	return func(s *Space) {
		s.mechanism = m
	}
}

// WithQueueOptions applies opts to the queues of every partition added later.
func WithQueueOptions(opts ...QueueOption) Option {
	return func(s *Space) {
		s.queueOpts = append(s.queueOpts, opts...)
	}
}

// NewSpace creates an empty partition table.
func NewSpace(opts ...Option) *Space {
	s := &Space{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// AddPartition registers a partition backed by pool and returns its index.
// Subvolumes and molecules refer to partitions by this index.
func (s *Space) AddPartition(name string, pool ports.Allocator[domain.Molecule]) int {
	s.partitions = append(s.partitions, &Partition{
		Name:     name,
		Pool:     pool,
		Outbound: NewQueue(s.queueOpts...),
		Inbound:  NewQueue(s.queueOpts...),
	})
	return len(s.partitions) - 1
}

// Partition returns the partition at index i.
func (s *Space) Partition(i int) (*Partition, bool) {
	if i < 0 || i >= len(s.partitions) {
		return nil, false
	}
	return s.partitions[i], true
}

// Len returns the number of registered partitions.
func (s *Space) Len() int {
	return len(s.partitions)
}
