// Package metrics defines and registers all custom Prometheus metrics for the
// natal chart API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package load; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "natal"

// ── Chart metrics ─────────────────────────────────────────────────────────────

// ChartsComputedTotal counts chart computations that ran to completion.
// Labels:
//   - outcome: "ok" (all bodies resolved), "partial" (at least one per-body
//     soft failure), or "cached"
var ChartsComputedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charts_computed_total",
		Help:      "Total number of chart computations completed, by outcome.",
	},
	[]string{"outcome"},
)

// ChartErrorsTotal counts request-fatal chart failures.
// Label:
//   - kind: domain error kind (e.g. "date_out_of_range", "location_not_found")
var ChartErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chart_errors_total",
		Help:      "Total number of chart computations aborted with a fatal error.",
	},
	[]string{"kind"},
)

// ChartComputationDuration measures one full chart pipeline run.
var ChartComputationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chart_computation_duration_seconds",
		Help:      "Duration of chart computation from validated input to assembled chart.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Collaborator metrics ──────────────────────────────────────────────────────

// BodyCalculationErrorsTotal counts per-body soft failures from the ephemeris.
// Label:
//   - body: the chart body whose position could not be computed (e.g. "Pluto")
var BodyCalculationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "body_calculation_errors_total",
		Help:      "Total number of per-body ephemeris failures recorded as soft errors.",
	},
	[]string{"body"},
)

// ProviderErrorsTotal counts failed calls to external collaborators.
// Labels:
//   - provider: "geocoding" or "ephemeris"
//   - reason: short failure class (e.g. "timeout", "not_found", "bad_payload")
var ProviderErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_errors_total",
		Help:      "Total number of failed external provider calls, by provider and reason.",
	},
	[]string{"provider", "reason"},
)

// AspectsDetectedTotal counts classified aspects across all charts.
// Label:
//   - kind: aspect classification (e.g. "trine")
var AspectsDetectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aspects_detected_total",
		Help:      "Total number of aspects detected, by classification.",
	},
	[]string{"kind"},
)
