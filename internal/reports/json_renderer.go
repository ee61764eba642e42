package reports

import (
	"encoding/json"
	"errors"
	"io"

	"access-log-analyzer/internal/models"
)

// JSONRenderer writes the whole result as one indented JSON document.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (j *JSONRenderer) Render(w io.Writer, result *models.AnalysisResult) error {
	if result == nil {
		return errors.New("nothing to render")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
