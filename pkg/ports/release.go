package ports

import (
	"context"

	"github.com/plin1112/mcell/pkg/domain"
)

// ReleaseMechanism materialises the molecules described by a release event.
// It is implemented by the diffusion/reaction kernel.
type ReleaseMechanism interface {
	PerformRelease(ctx context.Context, event *domain.ReleaseEvent) error
}

// ReleaseFunc adapts a plain function to ReleaseMechanism.
type ReleaseFunc func(ctx context.Context, event *domain.ReleaseEvent) error

// PerformRelease calls f.
func (f ReleaseFunc) PerformRelease(ctx context.Context, event *domain.ReleaseEvent) error {
	return f(ctx, event)
}
