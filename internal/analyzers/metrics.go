package analyzers

import (
	"access-log-analyzer/internal/shared/metrics"
)

const resultParsed = "parsed"

// metricLinesTotal counts lines read by an analysis pass.
//
// The result label is "parsed" for lines that reached the aggregator, or the
// LineReason of a skipped line ("no_match", "bad_encoding", "too_long").
var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "lines_total",
		},
		[]string{"result"},
	)
)
