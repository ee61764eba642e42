package reports

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"access-log-analyzer/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var rule = strings.Repeat("=", 50)

// TextRenderer prints the human-readable summary. Headings are styled when w
// is a color-capable terminal and plain otherwise.
type TextRenderer struct {
	showPerformance bool
}

func NewTextRenderer(showPerformance bool) *TextRenderer {
	return &TextRenderer{showPerformance: showPerformance}
}

type textStyles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	errRate lipgloss.Style
	muted   lipgloss.Style
	plain   lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		heading: r.NewStyle().Bold(true),
		errRate: r.NewStyle().Foreground(lipgloss.Color("196")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		plain:   r.NewStyle(),
	}
}

func (t *TextRenderer) Render(w io.Writer, result *models.AnalysisResult) error {
	if result == nil {
		return errors.New("nothing to render")
	}

	s := newTextStyles(w)
	report := result.Report
	var b bytes.Buffer

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, s.title.Render("📊 LOG ANALYSIS SUMMARY"))
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, s.heading.Render("📈 OVERALL STATISTICS:"))
	fmt.Fprintf(&b, "  • Total Requests: %d\n", report.TotalRequests)
	fmt.Fprintf(&b, "  • 2xx Responses:  %d\n", report.Total2xx)
	fmt.Fprintf(&b, "  • 3xx Responses:  %d\n", report.Total3xx)
	fmt.Fprintf(&b, "  • 4xx Responses:  %d\n", report.Total4xx)
	fmt.Fprintf(&b, "  • 5xx Responses:  %d\n", report.Total5xx)
	fmt.Fprintf(&b, "  • Other:          %d\n", report.TotalOther)
	fmt.Fprintf(&b, "  • Error Rate:     %s\n", rateStyle(s, report.TotalErrorRate).Render(percent(report.TotalErrorRate)))

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, s.heading.Render("📅 DAILY BREAKDOWN:"))
	if len(report.Daily) == 0 {
		fmt.Fprintln(&b, s.muted.Render("  No daily results available"))
	}
	for i, day := range report.Daily {
		fmt.Fprintf(&b, "  Day %d: %s\n", i+1, day.Date)
		fmt.Fprintf(&b, "    └─ Requests: %d | 2xx: %d | 3xx: %d | 4xx: %d | 5xx: %d | Other: %d | Error Rate: %s\n",
			day.Requests, day.Count2xx, day.Count3xx, day.Count4xx, day.Count5xx, day.CountOther,
			rateStyle(s, day.ErrorRate).Render(percent(day.ErrorRate)))
	}

	if len(result.TopUserAgents) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, s.heading.Render("🧭 TOP USER AGENTS:"))
		for i, ua := range result.TopUserAgents {
			fmt.Fprintf(&b, "  %d. %s: %d\n", i+1, ua.Name, ua.Requests)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)

	if t.showPerformance {
		pass := result.Pass
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, s.heading.Render("=== PERFORMANCE METRICS ==="))
		fmt.Fprintf(&b, "Total lines processed: %d\n", pass.LinesRead)
		fmt.Fprintf(&b, "Lines parsed: %d\n", pass.LinesParsed)
		fmt.Fprintf(&b, "Lines skipped: %d\n", pass.LinesSkipped())
		fmt.Fprintf(&b, "Total execution time: %.3fms\n", float64(pass.Elapsed.Microseconds())/1000)
		fmt.Fprintf(&b, "Lines per second: %.0f\n", pass.LinesPerSecond())
	}

	_, err := w.Write(b.Bytes())
	return err
}

func rateStyle(s textStyles, rate float64) lipgloss.Style {
	if rate > 0 {
		return s.errRate
	}
	return s.plain
}

// percent formats a 0..1 ratio with two decimals, e.g. 0.6667 -> "66.67%".
func percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
