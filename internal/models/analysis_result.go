package models

import "time"

// LogRecord is what the line parser extracts from one access-log line.
type LogRecord struct {
	Day       string
	Status    string
	UserAgent string
}

// UserAgentCount is the number of requests sent by one user-agent family.
type UserAgentCount struct {
	Name     string `json:"name"`
	Requests int64  `json:"requests"`
}

// PassStats describes the pass itself rather than the traffic in the file.
type PassStats struct {
	LinesRead        int64         `json:"linesRead"`
	LinesParsed      int64         `json:"linesParsed"`
	LinesNoMatch     int64         `json:"linesNoMatch"`
	LinesBadEncoding int64         `json:"linesBadEncoding"`
	LinesTooLong     int64         `json:"linesTooLong"`
	Elapsed          time.Duration `json:"elapsedNs"`
}

// LinesSkipped is the number of lines that did not reach the aggregator.
func (p PassStats) LinesSkipped() int64 {
	return p.LinesNoMatch + p.LinesBadEncoding + p.LinesTooLong
}

// LinesPerSecond is the read throughput of the pass, 0 when no time elapsed.
func (p PassStats) LinesPerSecond() float64 {
	if p.Elapsed <= 0 {
		return 0
	}
	return float64(p.LinesRead) / p.Elapsed.Seconds()
}

// AnalysisResult bundles what the reporting layer renders after a pass.
type AnalysisResult struct {
	Report        Report           `json:"report"`
	TopUserAgents []UserAgentCount `json:"topUserAgents"`
	Pass          PassStats        `json:"pass"`
}
