package aggregators

import (
	"access-log-analyzer/internal/shared/metrics"
)

// metricRecordsTotal counts every record accepted by a ReportAggregator.
//
// The status_class label is one of "2xx", "3xx", "4xx", "5xx" or "other".
// A 101 response is counted with status_class="other" and still adds to the
// day's request total.
var (
	metricRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
		[]string{"status_class"},
	)
)

// metricDaysCreatedTotal counts day entries created, i.e. the first record seen for each day key.
var (
	metricDaysCreatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "days_created_total",
		},
	)
)
