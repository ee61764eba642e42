package models

// Report is the sealed aggregate of one pass over a log file.
// Daily is in the order days were first observed, not sorted by date.
// Every total is the exact sum of the matching per-day counter.
type Report struct {
	Daily          []DailyStats `json:"daily"`
	TotalRequests  int64        `json:"totalRequests"`
	Total2xx       int64        `json:"total2xx"`
	Total3xx       int64        `json:"total3xx"`
	Total4xx       int64        `json:"total4xx"`
	Total5xx       int64        `json:"total5xx"`
	TotalOther     int64        `json:"totalOther"`
	TotalErrorRate float64      `json:"totalErrorRate"`
}

// NewReport sums the given days into a Report. The slice is copied.
func NewReport(daily []DailyStats) Report {
	report := Report{Daily: make([]DailyStats, len(daily))}
	copy(report.Daily, daily)

	for _, day := range report.Daily {
		report.TotalRequests += day.Requests
		report.Total2xx += day.Count2xx
		report.Total3xx += day.Count3xx
		report.Total4xx += day.Count4xx
		report.Total5xx += day.Count5xx
		report.TotalOther += day.CountOther
	}
	report.TotalErrorRate = ErrorRate(report.Total4xx+report.Total5xx, report.TotalRequests)

	return report
}
