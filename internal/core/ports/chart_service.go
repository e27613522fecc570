package ports

import (
	"context"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

// ComputeChartInput carries all data needed to compute a natal chart.
type ComputeChartInput struct {
	// Name is the subject's display name, echoed back in the chart.
	Name string
	// BirthDate in YYYY-MM-DD.
	BirthDate string
	// BirthTime in HH:MM (24-hour).
	BirthTime string
	// Location is free text, Arabic or Latin script.
	Location string
}

// ChartService defines the chart computation use case.
type ChartService interface {
	ComputeChart(ctx context.Context, input ComputeChartInput) (*domain.Chart, error)
}

// ChartCache is an optional read-through cache for assembled charts. It is
// never required for correctness; a miss or a cache failure simply means the
// chart is recomputed. Get returns a chart owned by the caller, detached from
// the cache's own storage.
type ChartCache interface {
	Get(ctx context.Context, key string) (*domain.Chart, bool)
	Set(ctx context.Context, key string, chart *domain.Chart)
}
