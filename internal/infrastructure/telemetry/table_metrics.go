package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Table query modes
const (
	ModeQuery   = "query"
	ModeSession = "session"
)

// TableMetrics records how the table screens are used.
type TableMetrics struct {
	queries        *Counter
	filteredRows   *Histogram
	queryDuration  *Histogram
	sessionsOpened *Counter
}

// NewTableMetrics creates the instruments on meter
func NewTableMetrics(meter metric.Meter) (*TableMetrics, error) {
	queries, err := NewCounter(meter, "table_queries_total", "Table projections computed", "{query}")
	if err != nil {
		return nil, err
	}
	filtered, err := NewHistogram(meter, HistogramOpts{
		Name:        "table_filtered_rows",
		Description: "Rows left after search and filters",
		Unit:        "{row}",
		Boundaries:  RowCountBuckets,
	})
	if err != nil {
		return nil, err
	}
	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "table_query_duration_seconds",
		Description: "Time to load records and compute a projection",
		Unit:        "s",
		Boundaries:  SmallDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	sessions, err := NewCounter(meter, "table_sessions_opened_total", "Stateful view sessions created", "{session}")
	if err != nil {
		return nil, err
	}

	return &TableMetrics{
		queries:        queries,
		filteredRows:   filtered,
		queryDuration:  duration,
		sessionsOpened: sessions,
	}, nil
}

// RecordQuery records one computed projection
func (m *TableMetrics) RecordQuery(ctx context.Context, screen, mode string, filtered int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{AttrScreen.String(screen), AttrMode.String(mode)}
	m.queries.Inc(ctx, attrs...)
	m.filteredRows.Record(ctx, float64(filtered), attrs...)
	m.queryDuration.RecordDuration(ctx, elapsed, attrs...)
}

// RecordSessionOpened records a new view session
func (m *TableMetrics) RecordSessionOpened(ctx context.Context, screen string) {
	if m == nil {
		return
	}
	m.sessionsOpened.Inc(ctx, AttrScreen.String(screen))
}
