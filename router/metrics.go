package router

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcome label values.
const (
	outcomeMatched      = "matched"
	outcomeHeadFallback = "head_fallback"
	outcomeNotFound     = "not_found"
)

// routerMetrics contains Prometheus metrics for route lookups.
type routerMetrics struct {
	lookups *prometheus.CounterVec
	paths   prometheus.Gauge
}

var (
	routerMetricsInstance *routerMetrics
	routerMetricsOnce     sync.Once
)

// getRouterMetrics returns the singleton router metrics instance.
func getRouterMetrics() *routerMetrics {
	routerMetricsOnce.Do(func() {
		routerMetricsInstance = &routerMetrics{
			lookups: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pathtree",
					Subsystem: "router",
					Name:      "lookups_total",
					Help:      "Total number of route lookups by outcome",
				},
				[]string{"outcome"},
			),
			paths: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "pathtree",
					Subsystem: "router",
					Name:      "paths",
					Help:      "Number of distinct path templates in the last built route table",
				},
			),
		}
	})
	return routerMetricsInstance
}
