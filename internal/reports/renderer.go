package reports

import (
	"fmt"
	"io"

	"access-log-analyzer/internal/models"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes a finished analysis to w.
type Renderer interface {
	Render(w io.Writer, result *models.AnalysisResult) error
}

// NewRenderer returns the renderer for format. showPerformance only affects
// the text renderer; the JSON document always carries the pass statistics.
func NewRenderer(format string, showPerformance bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewTextRenderer(showPerformance), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}
