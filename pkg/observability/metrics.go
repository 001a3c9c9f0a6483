package observability

import (
	"context"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by playback hooks.
type Metrics struct {
	Transported     *prometheus.CounterVec
	Releases        *prometheus.CounterVec
	ReleaseFailures *prometheus.CounterVec
	Pages           *prometheus.HistogramVec
	Duration        *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transported: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcell_molecules_transported_total",
				Help: "Molecules materialised in a destination partition",
			},
			[]string{"from", "to"},
		),
		Releases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcell_delayed_releases_total",
				Help: "Reaction-triggered releases performed during playback",
			},
			[]string{"site"},
		),
		ReleaseFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcell_delayed_release_failures_total",
				Help: "Reaction-triggered releases the release mechanism rejected",
			},
			[]string{"site"},
		),
		Pages: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mcell_playback_pages",
				Help:    "Transport pages drained per playback",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"partition"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "mcell_playback_duration_seconds",
				Help: "Duration of end-of-step queue playback",
			},
			[]string{"partition"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Transported, m.Releases, m.ReleaseFailures, m.Pages, m.Duration)
	}
	return m
}

// Hooks returns lifecycle hooks that update m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRelease: func(_ context.Context, e *domain.ReleaseEvent) {
			m.Releases.WithLabelValues(siteLabel(e)).Inc()
		},
		OnReleaseFailure: func(_ context.Context, e *domain.ReleaseEvent, _ error) {
			m.ReleaseFailures.WithLabelValues(siteLabel(e)).Inc()
		},
		OnTransport: func(_ context.Context, e *domain.TransportEvent) {
			m.Transported.WithLabelValues(itoa(e.From), itoa(e.To)).Inc()
		},
		OnPlayback: func(_ context.Context, e *domain.PlaybackEvent) {
			m.Pages.WithLabelValues(e.Partition).Observe(float64(e.Pages))
			m.Duration.WithLabelValues(e.Partition).Observe(e.Duration.Seconds())
		},
	}
}

// Chain merges hook sets; every non-nil callback runs in argument order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		out.OnRelease = chain2(out.OnRelease, h.OnRelease)
		out.OnTransport = chain2(out.OnTransport, h.OnTransport)
		out.OnPlayback = chain2(out.OnPlayback, h.OnPlayback)
		if prev, next := out.OnReleaseFailure, h.OnReleaseFailure; next != nil {
			if prev == nil {
				out.OnReleaseFailure = next
			} else {
				out.OnReleaseFailure = func(ctx context.Context, e *domain.ReleaseEvent, err error) {
					prev(ctx, e, err)
					next(ctx, e, err)
				}
			}
		}
	}
	return out
}

func chain2[E any](prev, next func(context.Context, E)) func(context.Context, E) {
	switch {
	case next == nil:
		return prev
	case prev == nil:
		return next
	}
	return func(ctx context.Context, e E) {
		prev(ctx, e)
		next(ctx, e)
	}
}

func siteLabel(e *domain.ReleaseEvent) string {
	if e == nil || e.Site == nil {
		return ""
	}
	return e.Site.Name
}
