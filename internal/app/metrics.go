package app

import (
	"access-log-analyzer/internal/shared/metrics"
)

// metricRunsTotal counts finished runs by outcome. error_code is empty for a
// successful run and the ServiceError code otherwise.
var (
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
