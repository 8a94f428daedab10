package surface

import (
	"encoding/json"
	"io"

	"github.com/riskscope/riskscope/pkg/ranking"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// JSONRenderer marshals results to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.Assessment) error {
	return encode(w, result)
}

func (r *JSONRenderer) RenderTable(w io.Writer, table ranking.Table) error {
	return encode(w, table)
}

func (r *JSONRenderer) RenderFeatures(w io.Writer, features []ranking.FeatureImportance, dataset ranking.DatasetSummary) error {
	return encode(w, struct {
		Features []ranking.FeatureImportance `json:"features"`
		Dataset  ranking.DatasetSummary      `json:"dataset"`
	}{features, dataset})
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
