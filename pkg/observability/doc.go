/*
Package observability exports playback activity as Prometheus metrics.

Metrics are fed through domain.LifecycleHooks, so any component that accepts
hooks can be instrumented without depending on Prometheus:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	sim := mcell.New(cfg, mcell.WithLifecycleHooks(metrics.Hooks()))
*/
package observability
