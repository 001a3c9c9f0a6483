package observability

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/plin1112/mcell/pkg/domain"
)

// LogHooks returns hooks that write playback activity to logger.
// Per-molecule transports are logged at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRelease: func(ctx context.Context, e *domain.ReleaseEvent) {
			logger.InfoContext(ctx, "delayed release", "site", siteLabel(e), "event_time", e.EventTime)
		},
		OnReleaseFailure: func(ctx context.Context, e *domain.ReleaseEvent, err error) {
			logger.ErrorContext(ctx, "delayed release failed", "site", siteLabel(e), "error", err)
		},
		OnTransport: func(ctx context.Context, e *domain.TransportEvent) {
			logger.DebugContext(ctx, "molecule transported", "from", e.From, "to", e.To)
		},
		OnPlayback: func(ctx context.Context, e *domain.PlaybackEvent) {
			logger.InfoContext(ctx, "playback",
				"partition", e.Partition,
				"releases", e.Releases,
				"transported", e.Transported,
				"pages", e.Pages,
				"duration", e.Duration)
		},
	}
}

func itoa(i int) string { return strconv.Itoa(i) }
