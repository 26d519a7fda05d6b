// Package metrics provides Prometheus instrumentation for patch runs.
//
// The CLI is a one-shot job, so instead of exposing /metrics it pushes the
// registry to a Pushgateway when PUSHGATEWAY_URL is set:
//
//	metrics.Subscribe(events)
//	// ... run patches ...
//	metrics.Push(ctx, config.PushgatewayURL(), "catalogpatch")
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/shashiranjanraj/catalogpatch/pkg/event"
)

var (
	// PatchesTotal counts patch executions by kind and outcome.
	PatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogpatch",
			Subsystem: "patch",
			Name:      "runs_total",
			Help:      "Total number of patch executions.",
		},
		[]string{"kind", "status"}, // "schema" | "data", "applied" | "failed"
	)

	// PatchDuration tracks how long each patch takes.
	PatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalogpatch",
			Subsystem: "patch",
			Name:      "duration_seconds",
			Help:      "Duration of patch executions in seconds.",
			Buckets:   []float64{.01, .05, .1, .5, 1, 5, 30, 120},
		},
		[]string{"kind"},
	)

	// RecordsWritten counts catalog and inventory rows written by patches.
	RecordsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogpatch",
			Subsystem: "catalog",
			Name:      "records_written_total",
			Help:      "Total catalog and inventory records written.",
		},
		[]string{"entity"}, // "product" | "source_item" | "category_link"
	)
)

// DefaultRegistry holds every catalogpatch collector.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(
		PatchesTotal,
		PatchDuration,
		RecordsWritten,
	)
}

// RecordPatch records a patch outcome.
func RecordPatch(kind, status string, d time.Duration) {
	PatchesTotal.WithLabelValues(kind, status).Inc()
	PatchDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// Subscribe updates the collectors from dispatcher events.
func Subscribe(d *event.Dispatcher) {
	d.Listen(event.PatchApplied, func(_ context.Context, payload any) {
		if p, ok := payload.(event.PatchPayload); ok {
			RecordPatch(p.Kind, "applied", p.Duration)
		}
	})
	d.Listen(event.PatchFailed, func(_ context.Context, payload any) {
		if p, ok := payload.(event.PatchPayload); ok {
			RecordPatch(p.Kind, "failed", p.Duration)
		}
	})
	d.Listen(event.ProductSaved, func(context.Context, any) {
		RecordsWritten.WithLabelValues("product").Inc()
	})
	d.Listen(event.SourceItemsSaved, func(_ context.Context, payload any) {
		if p, ok := payload.(event.SourceItemsPayload); ok {
			RecordsWritten.WithLabelValues("source_item").Add(float64(p.Count))
		}
	})
	d.Listen(event.CategoryLinksAssigned, func(_ context.Context, payload any) {
		if p, ok := payload.(event.CategoryLinksPayload); ok {
			RecordsWritten.WithLabelValues("category_link").Add(float64(len(p.CategoryIDs)))
		}
	})
}

// Push sends DefaultRegistry to the Pushgateway at url under job.
func Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(DefaultRegistry).PushContext(ctx); err != nil {
		return fmt.Errorf("metrics: push to %s: %w", url, err)
	}
	return nil
}
