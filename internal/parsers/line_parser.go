package parsers

import (
	"regexp"
	"strings"

	"access-log-analyzer/internal/models"
)

// accessLogPattern matches
//
//	<client> - - [<timestamp>] "<request-line>" <status> <bytes> "-" "<user-agent>" <response-time>
//
// Groups: 1 timestamp, 2 status, 3 user agent.
const accessLogPattern = `^\S+ - - \[([^\]]*)\] "[^"]*" (\d{3}) \S+ "-" "([^"]*)" \S+$`

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse returns the record of one line, or false when the line does not
	// have the access-log shape. It never fails on malformed input.
	Parse(line string) (models.LogRecord, bool)
}

type accessLogParser struct {
	re *regexp.Regexp
}

// NewAccessLogParser compiles the access-log pattern once; the parser is
// immutable afterwards and safe to share.
func NewAccessLogParser() LineParser {
	return &accessLogParser{re: regexp.MustCompile(accessLogPattern)}
}

func (p *accessLogParser) Parse(line string) (models.LogRecord, bool) {
	matches := p.re.FindStringSubmatch(line)
	if matches == nil {
		return models.LogRecord{}, false
	}

	return models.LogRecord{
		Day:       ExtractDay(matches[1]),
		Status:    matches[2],
		UserAgent: matches[3],
	}, true
}

// ExtractDay returns the day key of a timestamp: everything before the first
// ':' with a leading '[' removed. "24/Jun/2025:08:14:32 +0000" -> "24/Jun/2025".
// A timestamp without ':' is returned whole (minus the bracket).
func ExtractDay(timestamp string) string {
	day, _, _ := strings.Cut(timestamp, ":")
	return strings.TrimLeft(day, "[")
}
