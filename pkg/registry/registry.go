package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
)

// Registry routes delayed releases to the mechanism registered for the
// firing site. It implements ports.ReleaseMechanism and is safe for
// concurrent registration.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]ports.ReleaseMechanism
	fallback ports.ReleaseMechanism
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]ports.ReleaseMechanism),
	}
}

// Register binds a mechanism to a release site name.
// If the site already has one, it is overwritten.
func (r *Registry) Register(site string, m ports.ReleaseMechanism) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[site] = m
}

// RegisterFunc binds a plain function to a release site name.
func (r *Registry) RegisterFunc(site string, fn func(context.Context, *domain.ReleaseEvent) error) {
	r.Register(site, ports.ReleaseFunc(fn))
}

// SetFallback sets the mechanism used for sites with no registration.
func (r *Registry) SetFallback(m ports.ReleaseMechanism) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = m
}

// Sites lists the registered site names.
func (r *Registry) Sites() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// PerformRelease dispatches event to the mechanism of event.Site.
// Returns an error if neither the site nor a fallback is registered.
func (r *Registry) PerformRelease(ctx context.Context, event *domain.ReleaseEvent) error {
	if event == nil || event.Site == nil {
		return fmt.Errorf("release event without site")
	}

	r.mu.RLock()
	m, ok := r.handlers[event.Site.Name]
	if !ok {
		m = r.fallback
	}
	r.mu.RUnlock()

	if m == nil {
		return fmt.Errorf("no release mechanism for site '%s'", event.Site.Name)
	}
	return m.PerformRelease(ctx, event)
}
