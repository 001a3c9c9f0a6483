package memory

import (
	"fmt"
	"sync"

	"github.com/plin1112/mcell/pkg/domain"
)

// Pool implements ports.Allocator with a free list.
// A limit of zero means unbounded.
// Safe for concurrent use.
type Pool[T any] struct {
	mu    sync.Mutex
	name  string
	free  []*T
	live  int
	limit int
}

// NewPool creates a pool that hands out at most limit live values.
func NewPool[T any](name string, limit int) *Pool[T] {
	return &Pool[T]{name: name, limit: limit}
}

// Acquire returns zeroed storage.
func (p *Pool[T]) Acquire() (*T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.limit > 0 && p.live >= p.limit {
		return nil, fmt.Errorf("pool %q exhausted (%d live): %w", p.name, p.live, domain.ErrAllocation)
	}
	p.live++

	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free = p.free[:n-1]
		var zero T
		*v = zero
		return v, nil
	}
	return new(T), nil
}

// Release returns storage to the free list.
func (p *Pool[T]) Release(v *T) {
	if v == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.live--
	p.free = append(p.free, v)
}

// Live returns the number of values handed out and not yet released.
func (p *Pool[T]) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}
