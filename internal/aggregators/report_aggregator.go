package aggregators

import (
	"access-log-analyzer/internal/models"
)

// ReportAggregator accumulates per-day status counters for a single pass.
type ReportAggregator interface {
	// Record counts one request for day. The first record of a day appends a
	// new entry; later ones update it in place.
	Record(day, status string) error
	// Seal sums the per-day counters into a Report. It succeeds exactly once;
	// any Record or Seal afterwards fails with ErrAggregatorSealed.
	Seal() (models.Report, error)
	// Days is the number of distinct day keys recorded so far.
	Days() int
}

type reportAggregator struct {
	index  map[string]int
	daily  []*models.DailyStats
	sealed bool
}

func NewReportAggregator() ReportAggregator {
	return &reportAggregator{index: make(map[string]int)}
}

func (a *reportAggregator) Record(day, status string) error {
	if a.sealed {
		return errInternalAggregatorSealed(day)
	}

	i, ok := a.index[day]
	if !ok {
		i = len(a.daily)
		a.index[day] = i
		a.daily = append(a.daily, models.NewDailyStats(day))
		metricDaysCreatedTotal.Inc()
	}

	class := models.ClassifyStatus(status)
	a.daily[i].Add(class)
	metricRecordsTotal.WithLabelValues(string(class)).Inc()

	return nil
}

func (a *reportAggregator) Seal() (models.Report, error) {
	if a.sealed {
		return models.Report{}, errInternalAggregatorSealFailed()
	}
	a.sealed = true

	daily := make([]models.DailyStats, len(a.daily))
	for i, d := range a.daily {
		daily[i] = *d
	}

	return models.NewReport(daily), nil
}

func (a *reportAggregator) Days() int {
	return len(a.daily)
}
