package models

// DailyStats holds the request counters of one day key.
//
// Requests always equals Count2xx + Count3xx + Count4xx + Count5xx + CountOther.
// ErrorRate is (Count4xx + Count5xx) / Requests, and 0 when Requests is 0.
//
// Example JSON:
//
//	{
//	  "date": "24/Jun/2025",
//	  "requests": 10,
//	  "count2xx": 6,
//	  "count3xx": 1,
//	  "count4xx": 2,
//	  "count5xx": 1,
//	  "countOther": 0,
//	  "errorRate": 0.3
//	}
type DailyStats struct {
	Date       string  `json:"date"`
	Requests   int64   `json:"requests"`
	Count2xx   int64   `json:"count2xx"`
	Count3xx   int64   `json:"count3xx"`
	Count4xx   int64   `json:"count4xx"`
	Count5xx   int64   `json:"count5xx"`
	CountOther int64   `json:"countOther"`
	ErrorRate  float64 `json:"errorRate"`
}

func NewDailyStats(date string) *DailyStats {
	return &DailyStats{Date: date}
}

// Add counts one request of the given class and refreshes ErrorRate.
func (d *DailyStats) Add(class StatusClass) {
	d.Requests++
	switch class {
	case Status2xx:
		d.Count2xx++
	case Status3xx:
		d.Count3xx++
	case Status4xx:
		d.Count4xx++
	case Status5xx:
		d.Count5xx++
	default:
		d.CountOther++
	}
	d.ErrorRate = ErrorRate(d.Count4xx+d.Count5xx, d.Requests)
}

// ErrorRate returns errors/requests, or 0 when requests is 0.
func ErrorRate(errors, requests int64) float64 {
	if requests == 0 {
		return 0
	}
	return float64(errors) / float64(requests)
}
